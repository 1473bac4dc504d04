package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal" // Fixed-point money
	"github.com/sirupsen/logrus"    // Logging library

	"athar_commerce/internal/domain"     // Domain models
	"athar_commerce/internal/repository" // Data access
)

// defaultPaymentMethod is used when the request leaves payment_method blank.
const defaultPaymentMethod = "cash_on_delivery"

// OrderService implements order placement and administration.
type OrderService struct {
	orders repository.OrderRepository
	tx     repository.TxManager
}

// NewOrderService wires order logic over the order repository and the
// transaction manager used for atomic placement.
func NewOrderService(orders repository.OrderRepository, tx repository.TxManager) *OrderService {
	return &OrderService{orders: orders, tx: tx}
}

// OrderItemInput is one requested line item.
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// ShippingInput is the shipping snapshot captured on the order.
type ShippingInput struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	Street string `json:"street"`
	Notes  string `json:"notes"`
}

// OrderInput is the payload for Create.
type OrderInput struct {
	Items         []OrderItemInput `json:"items"`
	Shipping      ShippingInput    `json:"shipping"`
	PaymentMethod string           `json:"payment_method"`
}

// Create places an order atomically: every product row is locked, stock is
// checked and decremented, prices are snapshotted and the order with its
// items is inserted — all in one transaction. Any failure rolls back every
// stock decrement.
func (s *OrderService) Create(ctx context.Context, userID uint, in OrderInput) (*domain.Order, error) {
	var msgs []string
	if len(in.Items) == 0 {
		msgs = append(msgs, "order must have at least one item")
	}
	if in.Shipping.Name == "" {
		msgs = append(msgs, "shipping name is required")
	}
	if in.Shipping.Phone == "" {
		msgs = append(msgs, "shipping phone is required")
	}
	if in.Shipping.City == "" {
		msgs = append(msgs, "shipping city is required")
	}
	if in.Shipping.Street == "" {
		msgs = append(msgs, "shipping street is required")
	}
	if len(msgs) > 0 {
		return nil, validationError(msgs...)
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	var order *domain.Order
	err := s.tx.Transaction(ctx, func(tx repository.Repositories) error {
		total := decimal.Zero
		items := make([]domain.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			if item.Quantity <= 0 {
				return validationError(fmt.Sprintf("quantity for product %d must be greater than 0", item.ProductID))
			}
			// Lock the row so a concurrent order cannot pass the same
			// stock check; see ProductRepository.GetForUpdate.
			product, err := tx.Products().GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return validationError(fmt.Sprintf("product %d not found", item.ProductID))
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for %s", ErrInsufficientStock, product.NameEN)
			}
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(lineTotal)
			items = append(items, domain.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price, // Price snapshot, immutable after this
				LineTotal: lineTotal,
			})
			if err := tx.Products().DecrementStock(ctx, product.ID, item.Quantity); err != nil {
				return err
			}
		}

		order = &domain.Order{
			UserID:         userID,
			Status:         domain.OrderStatusPending,
			Total:          total,
			PaymentMethod:  paymentMethod,
			ShippingName:   in.Shipping.Name,
			ShippingPhone:  in.Shipping.Phone,
			ShippingCity:   in.Shipping.City,
			ShippingStreet: in.Shipping.Street,
			ShippingNotes:  in.Shipping.Notes,
			Items:          items,
		}
		return tx.Orders().Create(ctx, order)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"items":   len(in.Items),
			"error":   err.Error(),
		}).Warn("Order placement failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"order_id": order.ID,
		"total":    order.Total.StringFixed(2),
		"items":    len(order.Items),
	}).Info("Order placed")
	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ListAll returns every order, newest first. Callers must already be
// authorized as admin.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus sets an order's status. Membership in the status set is
// validated; transitions themselves are unconstrained (any status may move
// to any other).
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: must be one of pending, paid, shipped, delivered, cancelled", ErrInvalidStatus)
	}
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   status,
	}).Info("Order status updated")
	return order, nil
}
