package main

import (
	"context"

	"athar_commerce/internal/config"     // Configuration
	"athar_commerce/internal/domain"     // Domain models
	"athar_commerce/internal/repository" // Data access

	"github.com/shopspring/decimal" // Prices
	"github.com/sirupsen/logrus"    // Logging
	"golang.org/x/crypto/bcrypt"    // Password hashing
	"gorm.io/driver/mysql"          // MySQL driver for GORM
	"gorm.io/gorm"                  // GORM ORM library
)

// Seeds the database with a demo admin, a demo customer and a small bilingual
// catalog. Safe to re-run: it exits early when the admin already exists.
func main() {
	cfg := config.LoadConfig()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	ctx := context.Background()
	store := repository.NewStore(db)

	if existing, err := store.Users().GetByEmail(ctx, "admin@athar.com"); err != nil {
		logrus.Fatalf("failed to check for admin user: %v", err)
	} else if existing != nil {
		logrus.Info("Database already seeded, nothing to do.")
		return
	}

	if err := store.Transaction(ctx, func(tx repository.Repositories) error {
		for _, u := range []struct {
			name, email, password, role string
		}{
			{"Admin User", "admin@athar.com", "admin123", domain.RoleAdmin},
			{"Test Customer", "customer@athar.com", "customer123", domain.RoleCustomer},
		} {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := &domain.User{Name: u.name, Email: u.email, PasswordHash: string(hash), Role: u.role}
			if err := tx.Users().Create(ctx, user); err != nil {
				return err
			}
		}

		categories := map[string]*domain.Category{}
		for _, c := range []domain.Category{
			{NameEN: "Body Care", NameAR: "العناية بالجسم", Slug: "body-care"},
			{NameEN: "Scrubs", NameAR: "مقشرات", Slug: "scrubs"},
			{NameEN: "Oils", NameAR: "زيوت", Slug: "oils"},
			{NameEN: "Splashes", NameAR: "رشاشات", Slug: "splashes"},
		} {
			category := c
			if err := tx.Categories().Create(ctx, &category); err != nil {
				return err
			}
			categories[category.Slug] = &category
		}

		products := []struct {
			product      domain.Product
			categorySlug string
		}{
			{
				product: domain.Product{
					NameEN:        "Hydrating Body Scrub",
					NameAR:        "مقشر الجسم المرطب",
					DescriptionEN: "A luxurious body scrub enriched with natural ingredients to exfoliate and hydrate your skin.",
					DescriptionAR: "مقشر جسم فاخر غني بالمكونات الطبيعية لتقشير وترطيب بشرتك.",
					IngredientsEN: "Sugar, Coconut Oil, Shea Butter, Vitamin E, Natural Fragrance",
					IngredientsAR: "سكر، زيت جوز الهند، زبدة الشيا، فيتامين E، عطر طبيعي",
					UsageEN:       "Apply to wet skin in circular motions. Rinse thoroughly. Use 2-3 times per week.",
					UsageAR:       "ضع على البشرة الرطبة بحركات دائرية. اشطف جيداً. استخدم 2-3 مرات في الأسبوع.",
					Price:         decimal.NewFromFloat(45.00),
					Stock:         50,
					SKU:           "ATH-BS-001",
					IsFeatured:    true,
				},
				categorySlug: "scrubs",
			},
			{
				product: domain.Product{
					NameEN:        "Body Splash - Fresh",
					NameAR:        "رشاش الجسم - منعش",
					DescriptionEN: "A refreshing body splash with a light, invigorating fragrance. Perfect for daily use.",
					DescriptionAR: "رشاش جسم منعش برائحة خفيفة ومنشطة. مثالي للاستخدام اليومي.",
					IngredientsEN: "Purified Water, Aloe Vera, Witch Hazel, Natural Fragrance, Glycerin",
					IngredientsAR: "ماء منقى، الصبار، عشبة الويتش هازل، عطر طبيعي، الجلسرين",
					UsageEN:       "Spray on clean skin after shower or throughout the day.",
					UsageAR:       "رش على البشرة النظيفة بعد الاستحمام أو طوال اليوم.",
					Price:         decimal.NewFromFloat(35.00),
					Stock:         60,
					SKU:           "ATH-BSP-001",
					IsFeatured:    true,
				},
				categorySlug: "splashes",
			},
			{
				product: domain.Product{
					NameEN:        "Nourishing Body Oil",
					NameAR:        "زيت الجسم المغذي",
					DescriptionEN: "A luxurious blend of nourishing oils that deeply moisturizes and softens your skin.",
					DescriptionAR: "مزيج فاخر من الزيوت المغذية التي ترطب وتنعم بشرتك بعمق.",
					IngredientsEN: "Jojoba Oil, Argan Oil, Sweet Almond Oil, Vitamin E, Lavender Essential Oil",
					IngredientsAR: "زيت الجوجوبا، زيت الأرغان، زيت اللوز الحلو، فيتامين E، زيت اللافندر العطري",
					UsageEN:       "Apply to slightly damp skin after shower. Massage gently until absorbed.",
					UsageAR:       "ضع على البشرة الرطبة قليلاً بعد الاستحمام. دلك برفق حتى الامتصاص.",
					Price:         decimal.NewFromFloat(55.00),
					Stock:         40,
					SKU:           "ATH-BO-001",
					IsFeatured:    true,
				},
				categorySlug: "oils",
			},
		}
		for _, p := range products {
			product := p.product
			product.CategoryID = categories[p.categorySlug].ID
			if err := tx.Products().Create(ctx, &product); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}

	logrus.Info("Seeding completed.")
}
