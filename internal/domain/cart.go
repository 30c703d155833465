package domain

import "time"

// CartItem keeps the product name it was added with; the catalog row
// can change or disappear without touching the cart line.
type CartItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"cartItemId"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID string    `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CartItem) TableName() string { return "cart_items" }

type CartRepository interface {
	// AddOrMerge inserts a line for (user, product) or bumps its quantity
	// if one already exists. Returns the resulting line.
	AddOrMerge(item *CartItem) (*CartItem, error)
	FindByID(id string) (*CartItem, error)
	ListByUser(userID string) ([]CartItem, error)
	Save(item *CartItem) error
	DeleteByID(id string) error
	DeleteByUser(userID string) error
}
