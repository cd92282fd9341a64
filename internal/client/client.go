// Package client implements the booking flow against the HTTP API: fetch
// the catalog, derive destination choices, compute the price, submit a
// booking. Session state is explicit; nothing here reads ambient storage.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ebus/internal/domain/models"
)

// Session identifies the booked-for user. It is handed to every call
// that needs one rather than stored globally.
type Session struct {
	UserID string
	Token  string
}

// APIError is a non-2xx response decoded from the server's error payload.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// BookingInput is the create payload. UserID is only sent on the legacy
// path; authenticated calls rely on the bearer token.
type BookingInput struct {
	UserID        string `json:"userId,omitempty"`
	RouteID       string `json:"routeId"`
	Date          string `json:"date"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

func (c *Client) FetchRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if err := c.do(ctx, http.MethodGet, "/api/routes", "", nil, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp); err != nil {
		return Session{}, err
	}
	return Session{UserID: resp.User.ID, Token: resp.Token}, nil
}

func (c *Client) CreateBooking(ctx context.Context, sess Session, in BookingInput) (models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", sess.Token, in, &booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (c *Client) MyBookings(ctx context.Context, sess Session) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", sess.Token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
