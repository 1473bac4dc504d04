package repository

import (
	"context"

	"gorm.io/gorm" // GORM ORM library
)

// Repositories bundles the per-entity repositories. Services depend on this
// interface (or on individual repositories) instead of a raw DB handle.
type Repositories interface {
	Users() UserRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Images() ImageRepository
	Orders() OrderRepository
}

// TxManager runs a function inside a single database transaction. The
// Repositories passed to fn are bound to that transaction; if fn returns an
// error every write made through them is rolled back.
type TxManager interface {
	Transaction(ctx context.Context, fn func(tx Repositories) error) error
}

// Store is the GORM-backed implementation of Repositories and TxManager.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a GORM connection (or transaction handle).
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() UserRepository         { return &userRepository{db: s.db} }
func (s *Store) Categories() CategoryRepository { return &categoryRepository{db: s.db} }
func (s *Store) Products() ProductRepository   { return &productRepository{db: s.db} }
func (s *Store) Images() ImageRepository       { return &imageRepository{db: s.db} }
func (s *Store) Orders() OrderRepository       { return &orderRepository{db: s.db} }

// Transaction executes fn atomically. fn receives a Store bound to the
// transaction, so nested repository calls share its isolation scope.
func (s *Store) Transaction(ctx context.Context, fn func(tx Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
