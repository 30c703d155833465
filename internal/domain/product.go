package domain

import "time"

type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"productId"`
	Name        string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"size:255;not null" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"imageURL"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id string) (*Product, error)
	FindByName(name string) (*Product, error)
	SearchByName(name string) ([]Product, error)
	List() ([]Product, error)
	Update(p *Product) error
	DeleteByID(id string) error
}
