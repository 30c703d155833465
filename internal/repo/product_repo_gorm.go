package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-commerce-api/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) FindByName(name string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) SearchByName(name string) ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.Where("name LIKE ?", "%"+name+"%").Order("name").Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) Update(p *domain.Product) error {
	if err := r.db.Save(p).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProductRepo) DeleteByID(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Product{}).Error
}
