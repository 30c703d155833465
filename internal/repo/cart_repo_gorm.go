package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-commerce-api/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

// AddOrMerge relies on the (user_id, product_id) unique index: concurrent
// adds for the same pair end up as one merged row instead of duplicates.
func (r *CartRepo) AddOrMerge(item *domain.CartItem) (*domain.CartItem, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
	if err != nil {
		return nil, err
	}
	// re-read: on conflict the merged row keeps its original id
	var out domain.CartItem
	if err := r.db.First(&out, "user_id = ? AND product_id = ?", item.UserID, item.ProductID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CartRepo) FindByID(id string) (*domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.First(&it, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &it, err
}

func (r *CartRepo) ListByUser(userID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&items).Error
	return items, err
}

func (r *CartRepo) Save(item *domain.CartItem) error {
	return r.db.Save(item).Error
}

func (r *CartRepo) DeleteByID(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.CartItem{}).Error
}

func (r *CartRepo) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
}
