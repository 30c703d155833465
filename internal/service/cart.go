package service

import (
	"context"

	"github.com/google/uuid"

	"go-commerce-api/internal/domain"
	"go-commerce-api/pkg/utils"
)

type CartService struct {
	carts    domain.CartRepository
	users    domain.UserRepository
	products domain.ProductRepository
}

func NewCartService(carts domain.CartRepository, users domain.UserRepository, products domain.ProductRepository) *CartService {
	return &CartService{carts: carts, users: users, products: products}
}

func (s *CartService) resolveUser(userID string) (*domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrMalformedID
	}
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *CartService) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if _, err := s.resolveUser(userID); err != nil {
		return nil, err
	}
	return s.carts.ListByUser(userID)
}

// AddItem merges into an existing (user, product) line or creates one.
// The line keeps the display name given at add time.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int, name string) (*domain.CartItem, error) {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if _, err := s.resolveUser(userID); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(productID); err != nil {
		return nil, domain.ErrMalformedID
	}
	p, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if name == "" {
		name = p.Name
	}
	return s.carts.AddOrMerge(&domain.CartItem{
		ID:        utils.NewID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Name:      name,
	})
}

// RemoveItem deletes unconditionally; a missing id is a silent success.
func (s *CartService) RemoveItem(ctx context.Context, itemID string) error {
	if _, err := uuid.Parse(itemID); err != nil {
		return domain.ErrMalformedID
	}
	return s.carts.DeleteByID(itemID)
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if _, err := s.resolveUser(userID); err != nil {
		return err
	}
	return s.carts.DeleteByUser(userID)
}

// UpdateQuantity sets the new quantity, or deletes the line when the new
// quantity is zero or below. A nil item with nil error means "removed".
func (s *CartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, domain.ErrMalformedID
	}
	item, err := s.carts.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if quantity <= 0 {
		if err := s.carts.DeleteByID(itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	item.Quantity = quantity
	if err := s.carts.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}
