package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-commerce-api/internal/core/cache"
	"go-commerce-api/internal/domain"
	"go-commerce-api/pkg/utils"
)

const (
	cacheKeyProductsAll  = "products:all"
	cacheKeyProductByID  = "products:id:"
	productCacheDefaults = 60 * time.Second
)

type ProductService struct {
	products domain.ProductRepository
	cache    *cache.Cache // nil disables caching
	cacheTTL time.Duration
}

func NewProductService(products domain.ProductRepository, c *cache.Cache, ttl time.Duration) *ProductService {
	if ttl <= 0 {
		ttl = productCacheDefaults
	}
	return &ProductService{products: products, cache: c, cacheTTL: ttl}
}

func (s *ProductService) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := &domain.Product{
		ID:          utils.NewID(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, p.ID)
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache == nil {
		return s.products.List()
	}
	return cache.GetOrLoadJSON(s.cache, ctx, cacheKeyProductsAll, s.cacheTTL,
		func(ctx context.Context) ([]domain.Product, error) {
			return s.products.List()
		})
}

// Get returns ErrMalformedID for an unparsable id and ErrNotFound for an
// unknown one; the boundary maps those to 400 and 404.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	load := func(ctx context.Context) (*domain.Product, error) {
		p, err := s.products.FindByID(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		return p, nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, cacheKeyProductByID+id, s.cacheTTL, load)
}

func (s *ProductService) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	return s.products.SearchByName(name)
}

func (s *ProductService) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	in := domain.ProductInput{Name: p.Name, Price: p.Price, Description: p.Description, ImageURL: p.ImageURL}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.products.Update(p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, p.ID)
	return p, nil
}

// Delete is id-keyed. Deleting an id that does not exist is a no-op
// success, same as removing a cart line that is already gone.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrMalformedID
	}
	if err := s.products.DeleteByID(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, cacheKeyProductsAll, cacheKeyProductByID+id)
}
