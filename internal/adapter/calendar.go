package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/brain-sync/internal/config"
	"github.com/MKhiriev/brain-sync/internal/logger"
	"github.com/MKhiriev/brain-sync/internal/utils"
	"github.com/MKhiriev/brain-sync/models"
)

type googleCalendarAdapter struct {
	client *utils.HTTPClient
	retry  *retrier

	logger *logger.Logger
}

// NewGoogleCalendarAdapter constructs the REST implementation of
// [CalendarAPI] against cfg.CalendarBaseURL, sharing the retry schedule and
// timeout settings with the tasks adapter.
func NewGoogleCalendarAdapter(cfg config.Adapter, log *logger.Logger) (CalendarAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.CalendarBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &googleCalendarAdapter{
		client: client,
		retry:  newRetrier(cfg.RetryDelays),
		logger: log,
	}, nil
}

type eventTime struct {
	DateTime string `json:"dateTime"`
}

type createEventRequest struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

// CreateEvent implements [CalendarAPI]. Items without a start time are
// rejected before any request is made; the export engine routes such items
// to a plain task instead of calling here.
func (g *googleCalendarAdapter) CreateEvent(ctx context.Context, token string, item models.SortedItem) error {
	if item.Start == "" {
		return errors.New("create event: missing start time")
	}

	end := item.End
	if end == "" {
		start, err := time.Parse(time.RFC3339, item.Start)
		if err != nil {
			return fmt.Errorf("create event: invalid start time: %w", err)
		}
		end = start.Add(time.Hour).Format(time.RFC3339)
	}

	body := createEventRequest{
		Summary:     normalizeText(item.Text),
		Description: "Created from BrainSync AI sort event suggestion.",
		Start:       eventTime{DateTime: item.Start},
		End:         eventTime{DateTime: end},
	}

	err := g.retry.do(ctx, func() error {
		resp, err := g.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+token).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post("/calendars/primary/events")
		return mapAPIError(resp, err)
	})
	if err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}

	return nil
}
