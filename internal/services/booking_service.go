package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ebus/internal/domain"
	"ebus/internal/domain/models"
	"ebus/internal/repositories"
	"ebus/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingService validates a reservation request against the catalog and
// persists it. This is the only component with real business logic.
type BookingService struct {
	Bookings  repositories.BookingRepo
	Routes    repositories.RouteRepo
	RequestID string
}

// CreateRequest carries one booking request. UserID comes from the auth
// layer and is treated as a trusted opaque reference.
type CreateRequest struct {
	UserID        string
	RouteID       string
	Date          string
	Quantity      int
	PaymentMethod string
}

// Create validates and persists a booking with status Pending. The total
// price is derived from the catalog, never taken from the caller.
//
// There is no duplicate detection or idempotency key: submitting the same
// request twice creates two bookings.
func (s BookingService) Create(ctx context.Context, req CreateRequest) (models.Booking, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return models.Booking{}, domain.ValidationError{Field: "userId", Msg: "required"}
	}
	if req.Quantity < 1 {
		return models.Booking{}, domain.ValidationError{Field: "quantity", Msg: "must be at least 1"}
	}
	routeID := strings.TrimSpace(req.RouteID)
	if routeID == "" {
		return models.Booking{}, domain.ValidationError{Field: "routeId", Msg: "required"}
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}

	route, err := s.Routes.FindByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, domain.NotFoundError{Resource: "route", Err: err}
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to resolve route", Err: err}
	}

	booking := models.Booking{
		RouteID:       route.ID,
		Date:          date,
		Quantity:      req.Quantity,
		Status:        models.StatusPending,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Price:         route.Price * float64(req.Quantity),
		CreatedAt:     utils.NowUTC(),
	}
	if booking.UserID, err = parseRef(userID); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "userId", Msg: "invalid reference", Err: err}
	}

	created, err := s.Bookings.Insert(ctx, booking)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to save booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%s route=%s->%s qty=%d", created.ID.Hex(), route.Origin, route.Destination, created.Quantity))
	return created, nil
}

// ListForUser returns the user's bookings ordered by travel date.
func (s BookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ValidationError{Field: "userId", Msg: "required"}
	}
	bookings, err := s.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	return bookings, nil
}

// GetForUser returns one booking, hiding other users' bookings behind the
// same not-found answer as a missing id.
func (s BookingService) GetForUser(ctx context.Context, id, userID string) (models.Booking, error) {
	b, err := s.Bookings.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if b.UserID.Hex() != userID {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}
