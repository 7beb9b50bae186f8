package api

import (
	"context"
	"net/url"
	"strconv"
)

type ReportStorage struct {
	client *Client
}

func NewReportStorage(client *Client) *ReportStorage {
	return &ReportStorage{
		client: client,
	}
}

// ExportPDF streams a server-rendered report. Dates are "2006-01-02";
// clubID 0 means no club filter. The payload is forwarded untouched.
func (s *ReportStorage) ExportPDF(ctx context.Context, kind, dateFrom, dateTo string, clubID int64) ([]byte, error) {
	params := url.Values{}
	params.Set("fechaInicio", dateFrom)
	params.Set("fechaFin", dateTo)
	if clubID > 0 {
		params.Set("clubId", strconv.FormatInt(clubID, 10))
	}
	return s.client.GetBinary(ctx, "/reportes/"+kind+"/pdf", params)
}
