package api

import (
	"encoding/json" // Cached payload passthrough
	"net/http"      // HTTP status codes
	"strconv"       // String conversion
	"time"          // Cache TTLs

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Price bound parsing

	"athar_commerce/internal/repository" // Product filters
	"athar_commerce/internal/service"    // Business logic
	"athar_commerce/internal/utils"      // Redis cache
)

// catalogCacheTTL bounds staleness of cached catalog reads.
const catalogCacheTTL = 60 * time.Second

func categoriesCacheKey(lang string) string { return "categories:" + lang }

func productCacheKey(id uint, lang string) string {
	return "product:" + strconv.FormatUint(uint64(id), 10) + ":" + lang
}

// productCacheKeys lists both language variants for invalidation.
func productCacheKeys(id uint) []string {
	return []string{productCacheKey(id, "en"), productCacheKey(id, "ar")}
}

// ListCategoriesHandler returns all categories localized by ?lang, served
// from Redis when possible.
func ListCategoriesHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		lang := c.DefaultQuery("lang", "en")
		cacheKey := categoriesCacheKey(lang)

		var cached json.RawMessage
		if found, err := cache.Get(ctx, cacheKey, &cached); err == nil && found {
			jsonOK(c, http.StatusOK, cached, "")
			return
		}

		categories, err := catalog.ListCategories(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		payload := make([]gin.H, len(categories))
		for i := range categories {
			payload[i] = categoryJSON(&categories[i], lang)
		}
		_ = cache.Set(ctx, cacheKey, payload, catalogCacheTTL)
		jsonOK(c, http.StatusOK, payload, "")
	}
}

// CreateCategoryHandler creates a category (admin only, enforced by route
// middleware) and invalidates the cached category lists.
func CreateCategoryHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CategoryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		category, err := catalog.CreateCategory(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = cache.Delete(c.Request.Context(), categoriesCacheKey("en"), categoriesCacheKey("ar"))
		jsonOK(c, http.StatusCreated, categoryJSON(category, "en"), "Category created")
	}
}

// ListProductsHandler returns products matching the query filters. Filters
// compose with AND; each is optional.
func ListProductsHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.DefaultQuery("lang", "en")
		filter := repository.ProductFilter{
			Search: c.Query("search"),
			Sort:   c.DefaultQuery("sort", repository.SortNewest),
		}
		if v := c.Query("category"); v != "" {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				jsonError(c, http.StatusBadRequest, "Invalid category filter", "category must be a number")
				return
			}
			filter.CategoryID = uint(id)
		}
		if v := c.Query("minPrice"); v != "" {
			min, err := decimal.NewFromString(v)
			if err != nil {
				jsonError(c, http.StatusBadRequest, "Invalid price filter", "minPrice must be a number")
				return
			}
			filter.MinPrice = &min
		}
		if v := c.Query("maxPrice"); v != "" {
			max, err := decimal.NewFromString(v)
			if err != nil {
				jsonError(c, http.StatusBadRequest, "Invalid price filter", "maxPrice must be a number")
				return
			}
			filter.MaxPrice = &max
		}
		filter.Featured = c.Query("featured") == "true"

		products, err := catalog.ListProducts(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		payload := make([]gin.H, len(products))
		for i := range products {
			payload[i] = productJSON(&products[i], lang)
		}
		jsonOK(c, http.StatusOK, payload, "")
	}
}

// GetProductHandler returns one product, served from Redis when possible.
func GetProductHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "id")
		if !ok {
			return
		}
		ctx := c.Request.Context()
		lang := c.DefaultQuery("lang", "en")
		cacheKey := productCacheKey(id, lang)

		var cached json.RawMessage
		if found, err := cache.Get(ctx, cacheKey, &cached); err == nil && found {
			jsonOK(c, http.StatusOK, cached, "")
			return
		}

		product, err := catalog.GetProduct(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		payload := productJSON(product, lang)
		_ = cache.Set(ctx, cacheKey, payload, catalogCacheTTL)
		jsonOK(c, http.StatusOK, payload, "")
	}
}

// CreateProductHandler creates a product (admin only).
func CreateProductHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ProductInput
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		product, err := catalog.CreateProduct(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		jsonOK(c, http.StatusCreated, productJSON(product, "en"), "Product created")
	}
}

// UpdateProductHandler applies a partial product update (admin only) and
// invalidates the cached product.
func UpdateProductHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "id")
		if !ok {
			return
		}
		var req service.ProductUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		product, err := catalog.UpdateProduct(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = cache.Delete(c.Request.Context(), productCacheKeys(id)...)
		jsonOK(c, http.StatusOK, productJSON(product, "en"), "Product updated")
	}
}

// DeleteProductHandler removes a product, its images and their files (admin
// only).
func DeleteProductHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "id")
		if !ok {
			return
		}
		if err := catalog.DeleteProduct(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		_ = cache.Delete(c.Request.Context(), productCacheKeys(id)...)
		jsonOK(c, http.StatusOK, nil, "Product deleted")
	}
}

// UploadProductImageHandler accepts a multipart image upload (admin only).
func UploadProductImageHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "id")
		if !ok {
			return
		}
		fileHeader, err := c.FormFile("image")
		if err != nil {
			jsonError(c, http.StatusBadRequest, "No image file provided")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer file.Close()

		image, err := catalog.UploadImage(c.Request.Context(), id, fileHeader.Filename, c.PostForm("alt_text"), file)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = cache.Delete(c.Request.Context(), productCacheKeys(id)...)
		jsonOK(c, http.StatusCreated, imageJSON(image), "Image uploaded")
	}
}

// DeleteProductImageHandler removes an image record and its file (admin
// only).
func DeleteProductImageHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := uintParam(c, "id")
		if !ok {
			return
		}
		imageID, ok := uintParam(c, "imageId")
		if !ok {
			return
		}
		if err := catalog.DeleteImage(c.Request.Context(), productID, imageID); err != nil {
			respondError(c, err)
			return
		}
		_ = cache.Delete(c.Request.Context(), productCacheKeys(productID)...)
		jsonOK(c, http.StatusOK, nil, "Image deleted")
	}
}

// uintParam parses a numeric path parameter, writing a 400 on failure.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(v), true
}
