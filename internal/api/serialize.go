package api

import (
	"github.com/gin-gonic/gin" // gin.H response maps

	"athar_commerce/internal/domain" // Domain models
)

// Response payload builders. Shapes carry both raw bilingual fields and a
// localized convenience field per the requested language.

func userJSON(u *domain.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

func categoryJSON(cat *domain.Category, lang string) gin.H {
	return gin.H{
		"id":      cat.ID,
		"name":    cat.Name(lang),
		"name_en": cat.NameEN,
		"name_ar": cat.NameAR,
		"slug":    cat.Slug,
	}
}

func imageJSON(img *domain.ProductImage) gin.H {
	return gin.H{
		"id":         img.ID,
		"product_id": img.ProductID,
		"url":        img.URL,
		"alt_text":   img.AltText,
	}
}

func productJSON(p *domain.Product, lang string) gin.H {
	images := make([]gin.H, len(p.Images))
	for i := range p.Images {
		images[i] = imageJSON(&p.Images[i])
	}
	var category gin.H
	if p.Category.ID != 0 {
		category = categoryJSON(&p.Category, lang)
	}
	return gin.H{
		"id":              p.ID,
		"name":            localized(lang, p.NameEN, p.NameAR),
		"name_en":         p.NameEN,
		"name_ar":         p.NameAR,
		"description":     localized(lang, p.DescriptionEN, p.DescriptionAR),
		"description_en":  p.DescriptionEN,
		"description_ar":  p.DescriptionAR,
		"price":           p.Price.InexactFloat64(),
		"stock":           p.Stock,
		"sku":             p.SKU,
		"category_id":     p.CategoryID,
		"category":        category,
		"ingredients":     localized(lang, p.IngredientsEN, p.IngredientsAR),
		"ingredients_en":  p.IngredientsEN,
		"ingredients_ar":  p.IngredientsAR,
		"usage":           localized(lang, p.UsageEN, p.UsageAR),
		"usage_en":        p.UsageEN,
		"usage_ar":        p.UsageAR,
		"is_featured":     p.IsFeatured,
		"images":          images,
		"created_at":      p.CreatedAt,
	}
}

func orderItemJSON(item *domain.OrderItem) gin.H {
	var product gin.H
	if item.Product.ID != 0 {
		product = productJSON(&item.Product, "en")
	}
	return gin.H{
		"id":         item.ID,
		"order_id":   item.OrderID,
		"product_id": item.ProductID,
		"product":    product,
		"quantity":   item.Quantity,
		"unit_price": item.UnitPrice.InexactFloat64(),
		"line_total": item.LineTotal.InexactFloat64(),
	}
}

func orderJSON(o *domain.Order) gin.H {
	items := make([]gin.H, len(o.Items))
	for i := range o.Items {
		items[i] = orderItemJSON(&o.Items[i])
	}
	return gin.H{
		"id":              o.ID,
		"user_id":         o.UserID,
		"status":          o.Status,
		"total":           o.Total.InexactFloat64(),
		"payment_method":  o.PaymentMethod,
		"shipping_name":   o.ShippingName,
		"shipping_phone":  o.ShippingPhone,
		"shipping_city":   o.ShippingCity,
		"shipping_street": o.ShippingStreet,
		"shipping_notes":  o.ShippingNotes,
		"items":           items,
		"created_at":      o.CreatedAt,
	}
}

// localized picks the English or Arabic variant; anything other than "en"
// resolves to Arabic, matching category/product localization everywhere.
func localized(lang, en, ar string) string {
	if lang == "en" {
		return en
	}
	return ar
}
