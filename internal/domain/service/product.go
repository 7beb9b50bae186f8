package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type ProductStorage interface {
	List(ctx context.Context, clubID int64) ([]entity.Product, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product, clubID int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

type ProductService struct {
	storage ProductStorage
}

func NewProductService(storage ProductStorage) *ProductService {
	return &ProductService{
		storage: storage,
	}
}

func (s *ProductService) List(ctx context.Context, clubID int64) ([]entity.Product, error) {
	return s.storage.List(ctx, clubID)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return s.storage.Get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, product *entity.Product, clubID int64) (*entity.Product, error) {
	return s.storage.Create(ctx, product, clubID)
}

func (s *ProductService) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	return s.storage.Update(ctx, product)
}

func (s *ProductService) Activate(ctx context.Context, id int64) error {
	return s.storage.Activate(ctx, id)
}

func (s *ProductService) Deactivate(ctx context.Context, id int64) error {
	return s.storage.Deactivate(ctx, id)
}
