package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type ProductStorage struct {
	client *Client
}

func NewProductStorage(client *Client) *ProductStorage {
	return &ProductStorage{
		client: client,
	}
}

func (s *ProductStorage) List(ctx context.Context, clubID int64) ([]entity.Product, error) {
	params := url.Values{}
	if clubID > 0 {
		params.Set("clubId", strconv.FormatInt(clubID, 10))
	}
	var products []entity.Product
	err := s.client.Get(ctx, "/productos", params, &products)
	return products, err
}

func (s *ProductStorage) Get(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	err := s.client.Get(ctx, "/productos/"+strconv.FormatInt(id, 10), nil, &product)
	return &product, err
}

// Create associates the product with the hub of the given club; the backend
// resolves clubId -> hub.
func (s *ProductStorage) Create(ctx context.Context, product *entity.Product, clubID int64) (*entity.Product, error) {
	params := url.Values{}
	params.Set("clubId", strconv.FormatInt(clubID, 10))
	var created entity.Product
	err := s.client.Post(ctx, "/productos", params, product, &created)
	return &created, err
}

func (s *ProductStorage) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var updated entity.Product
	err := s.client.Put(ctx, "/productos/"+strconv.FormatInt(product.ID, 10), nil, product, &updated)
	return &updated, err
}

func (s *ProductStorage) Activate(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/productos/"+strconv.FormatInt(id, 10)+"/activar", nil, nil, nil)
}

func (s *ProductStorage) Deactivate(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/productos/"+strconv.FormatInt(id, 10)+"/desactivar", nil, nil, nil)
}
