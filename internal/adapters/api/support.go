package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type SupportStorage struct {
	client *Client
}

func NewSupportStorage(client *Client) *SupportStorage {
	return &SupportStorage{
		client: client,
	}
}

func (s *SupportStorage) List(ctx context.Context) ([]entity.SupportTicket, error) {
	var tickets []entity.SupportTicket
	err := s.client.Get(ctx, "/soporte-tickets", nil, &tickets)
	return tickets, err
}

func (s *SupportStorage) Get(ctx context.Context, id int64) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	err := s.client.Get(ctx, "/soporte-tickets/"+strconv.FormatInt(id, 10), nil, &ticket)
	return &ticket, err
}

func (s *SupportStorage) Respond(ctx context.Context, id int64, response string) error {
	body := struct {
		Response string `json:"respuesta"`
	}{Response: response}
	return s.client.Patch(ctx, "/soporte-tickets/"+strconv.FormatInt(id, 10)+"/responder", nil, body, nil)
}

func (s *SupportStorage) SetStatus(ctx context.Context, id int64, status entity.TicketStatus) error {
	params := url.Values{}
	params.Set("estado", string(status))
	return s.client.Patch(ctx, "/soporte-tickets/"+strconv.FormatInt(id, 10)+"/estado", params, nil, nil)
}
