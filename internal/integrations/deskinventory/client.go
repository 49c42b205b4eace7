package deskinventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
)

// Client клиент для работы с сервисом инвентаря столов
type Client struct {
	baseURL    string
	httpClient *http.Client
	bookings   DeskBookingRepository
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса инвентаря
func NewClient(baseURL string, timeout time.Duration, bookings DeskBookingRepository, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		bookings: bookings,
		log:      log,
	}
}

// GetAvailableDesks получает свободные на дату столы и убирает из них уже забронированные у нас.
// Порядок столов сохраняется таким, каким его вернул сервис
func (c *Client) GetAvailableDesks(ctx context.Context, date time.Time) ([]*domain.Desk, error) {
	endpoint := fmt.Sprintf("%s/internal/desks/available?date=%s",
		c.baseURL, url.QueryEscape(date.Format(domain.DateFormat)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("DeskInventory: unexpected status %d for date=%s", resp.StatusCode, date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload []Desk
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	booked, err := c.bookings.GetBookedDeskIDs(ctx, date)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[int64]struct{}, len(booked))
	for _, id := range booked {
		bookedSet[id] = struct{}{}
	}

	// null в ответе трактуем как отсутствие свободных столов
	desks := make([]*domain.Desk, 0, len(payload))
	for _, d := range payload {
		if _, ok := bookedSet[d.ID]; ok {
			continue
		}
		desks = append(desks, &domain.Desk{ID: d.ID})
	}

	return desks, nil
}
