package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"athar_commerce/internal/domain"
	"athar_commerce/internal/repository"
)

// memStore is an in-memory stand-in for repository.Store. Transaction
// snapshots all state and restores it when fn fails, mimicking a rollback.
type memStore struct {
	users      map[uint]*domain.User
	categories map[uint]*domain.Category
	products   map[uint]*domain.Product
	images     map[uint]*domain.ProductImage
	orders     map[uint]*domain.Order
	nextID     uint
	now        time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[uint]*domain.User),
		categories: make(map[uint]*domain.Category),
		products:   make(map[uint]*domain.Product),
		images:     make(map[uint]*domain.ProductImage),
		orders:     make(map[uint]*domain.Order),
		now:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) id() uint { s.nextID++; return s.nextID }

// tick returns strictly increasing timestamps so newest-first ordering is
// deterministic.
func (s *memStore) tick() time.Time { s.now = s.now.Add(time.Minute); return s.now }

func (s *memStore) Users() repository.UserRepository         { return &memUsers{s} }
func (s *memStore) Categories() repository.CategoryRepository { return &memCategories{s} }
func (s *memStore) Products() repository.ProductRepository   { return &memProducts{s} }
func (s *memStore) Images() repository.ImageRepository       { return &memImages{s} }
func (s *memStore) Orders() repository.OrderRepository       { return &memOrders{s} }

func (s *memStore) Transaction(ctx context.Context, fn func(tx repository.Repositories) error) error {
	users := cloneMap(s.users)
	categories := cloneMap(s.categories)
	products := cloneMap(s.products)
	images := cloneMap(s.images)
	orders := cloneMap(s.orders)
	nextID := s.nextID
	if err := fn(s); err != nil {
		s.users, s.categories, s.products, s.images, s.orders = users, categories, products, images, orders
		s.nextID = nextID
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](m map[K]*V) map[K]*V {
	out := make(map[K]*V, len(m))
	for k, v := range m {
		c := *v
		out[k] = &c
	}
	return out
}

// Fixture helpers

func (s *memStore) addUser(name, email, hash, role string) *domain.User {
	u := &domain.User{ID: s.id(), Name: name, Email: email, PasswordHash: hash, Role: role, CreatedAt: s.tick()}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addCategory(nameEN, nameAR, slug string) *domain.Category {
	c := &domain.Category{ID: s.id(), NameEN: nameEN, NameAR: nameAR, Slug: slug}
	s.categories[c.ID] = c
	return c
}

func (s *memStore) addProduct(name, price string, stock int, categoryID uint) *domain.Product {
	p := &domain.Product{
		ID:         s.id(),
		NameEN:     name,
		NameAR:     name,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		SKU:        "SKU-" + name,
		CategoryID: categoryID,
		CreatedAt:  s.tick(),
	}
	s.products[p.ID] = p
	return p
}

// memUsers

type memUsers struct{ s *memStore }

func (r *memUsers) Create(_ context.Context, user *domain.User) error {
	user.ID = r.s.id()
	user.CreatedAt = r.s.tick()
	r.s.users[user.ID] = user
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id uint) (*domain.User, error) {
	return r.s.users[id], nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// memCategories

type memCategories struct{ s *memStore }

func (r *memCategories) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategories) GetByID(_ context.Context, id uint) (*domain.Category, error) {
	return r.s.categories[id], nil
}

func (r *memCategories) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, c := range r.s.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCategories) Create(_ context.Context, category *domain.Category) error {
	category.ID = r.s.id()
	r.s.categories[category.ID] = category
	return nil
}

// memProducts

type memProducts struct{ s *memStore }

func (r *memProducts) List(_ context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.s.products {
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.NameEN), needle) &&
				!strings.Contains(strings.ToLower(p.NameAR), needle) &&
				!strings.Contains(strings.ToLower(p.DescriptionEN), needle) &&
				!strings.Contains(strings.ToLower(p.DescriptionAR), needle) {
				continue
			}
		}
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.Featured && !p.IsFeatured {
			continue
		}
		out = append(out, *p)
	}
	switch filter.Sort {
	case repository.SortPriceAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case repository.SortPriceDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (r *memProducts) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	// Mirror the eager loading the GORM repository does
	p.Images = nil
	for _, img := range r.s.images {
		if img.ProductID == id {
			p.Images = append(p.Images, *img)
		}
	}
	sort.Slice(p.Images, func(i, j int) bool { return p.Images[i].ID < p.Images[j].ID })
	if c, ok := r.s.categories[p.CategoryID]; ok {
		p.Category = *c
	}
	return p, nil
}

func (r *memProducts) GetBySKU(_ context.Context, sku string) (*domain.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProducts) GetForUpdate(_ context.Context, id uint) (*domain.Product, error) {
	return r.s.products[id], nil
}

func (r *memProducts) Create(_ context.Context, product *domain.Product) error {
	product.ID = r.s.id()
	product.CreatedAt = r.s.tick()
	r.s.products[product.ID] = product
	return nil
}

func (r *memProducts) Save(_ context.Context, product *domain.Product) error {
	r.s.products[product.ID] = product
	return nil
}

func (r *memProducts) Delete(_ context.Context, product *domain.Product) error {
	delete(r.s.products, product.ID)
	for id, img := range r.s.images {
		if img.ProductID == product.ID {
			delete(r.s.images, id)
		}
	}
	return nil
}

func (r *memProducts) DecrementStock(_ context.Context, id uint, quantity int) error {
	r.s.products[id].Stock -= quantity
	return nil
}

// memImages

type memImages struct{ s *memStore }

func (r *memImages) Create(_ context.Context, image *domain.ProductImage) error {
	image.ID = r.s.id()
	r.s.images[image.ID] = image
	return nil
}

func (r *memImages) Get(_ context.Context, productID, imageID uint) (*domain.ProductImage, error) {
	img, ok := r.s.images[imageID]
	if !ok || img.ProductID != productID {
		return nil, nil
	}
	return img, nil
}

func (r *memImages) Delete(_ context.Context, image *domain.ProductImage) error {
	delete(r.s.images, image.ID)
	return nil
}

// memOrders

type memOrders struct{ s *memStore }

func (r *memOrders) Create(_ context.Context, order *domain.Order) error {
	order.ID = r.s.id()
	order.CreatedAt = r.s.tick()
	for i := range order.Items {
		order.Items[i].ID = r.s.id()
		order.Items[i].OrderID = order.ID
	}
	r.s.orders[order.ID] = order
	return nil
}

func (r *memOrders) GetByID(_ context.Context, id uint) (*domain.Order, error) {
	return r.s.orders[id], nil
}

func (r *memOrders) ListByUser(_ context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrders) ListAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrders) UpdateStatus(_ context.Context, id uint, status string) error {
	r.s.orders[id].Status = status
	return nil
}

// fakeFiles is an in-memory storage.FileStore.
type fakeFiles struct {
	saved   map[string][]byte
	removed []string
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{saved: make(map[string][]byte)}
}

func (f *fakeFiles) Save(name string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.saved[name] = b
	return nil
}

func (f *fakeFiles) Remove(name string) error {
	delete(f.saved, name)
	f.removed = append(f.removed, name)
	return nil
}
