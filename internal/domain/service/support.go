package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type SupportStorage interface {
	List(ctx context.Context) ([]entity.SupportTicket, error)
	Get(ctx context.Context, id int64) (*entity.SupportTicket, error)
	Respond(ctx context.Context, id int64, response string) error
	SetStatus(ctx context.Context, id int64, status entity.TicketStatus) error
}

type SupportService struct {
	storage SupportStorage
}

func NewSupportService(storage SupportStorage) *SupportService {
	return &SupportService{
		storage: storage,
	}
}

func (s *SupportService) List(ctx context.Context) ([]entity.SupportTicket, error) {
	return s.storage.List(ctx)
}

func (s *SupportService) Get(ctx context.Context, id int64) (*entity.SupportTicket, error) {
	return s.storage.Get(ctx, id)
}

func (s *SupportService) Respond(ctx context.Context, id int64, response string) error {
	return s.storage.Respond(ctx, id, response)
}

func (s *SupportService) SetStatus(ctx context.Context, id int64, status entity.TicketStatus) error {
	return s.storage.SetStatus(ctx, id, status)
}
