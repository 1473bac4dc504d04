package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"athar_commerce/internal/service" // Business logic
)

// CreateOrderHandler places an order for the authenticated caller.
func CreateOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			jsonError(c, http.StatusUnauthorized, "Authorization required")
			return
		}
		var req service.OrderInput
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		order, err := orders.Create(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		jsonOK(c, http.StatusCreated, orderJSON(order), "Order created")
	}
}

// MyOrdersHandler lists the caller's orders, newest first.
func MyOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			jsonError(c, http.StatusUnauthorized, "Authorization required")
			return
		}
		list, err := orders.ListMine(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		payload := make([]gin.H, len(list))
		for i := range list {
			payload[i] = orderJSON(&list[i])
		}
		jsonOK(c, http.StatusOK, payload, "")
	}
}

// ListOrdersHandler lists every order, newest first (admin only).
func ListOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		payload := make([]gin.H, len(list))
		for i := range list {
			payload[i] = orderJSON(&list[i])
		}
		jsonOK(c, http.StatusOK, payload, "")
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatusHandler sets an order's status (admin only). Any status
// may move to any other.
func UpdateOrderStatusHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "id")
		if !ok {
			return
		}
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
			jsonError(c, http.StatusBadRequest, "Status is required")
			return
		}
		order, err := orders.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		jsonOK(c, http.StatusOK, orderJSON(order), "Order status updated")
	}
}
