package client

import (
	"context"
	"errors"
	"time"

	"ebus/internal/domain/models"
	"ebus/internal/utils"
)

// FallbackRoutes backs the degraded catalog mode. It is the same seed
// set the server inserts at startup: one source of truth, not a second
// hand-maintained list.
var FallbackRoutes = models.DefaultRoutes

// Catalog is the loaded route list plus the mode it was obtained in.
// Degraded means the server could not supply routes and ids are absent,
// so bookings cannot be submitted from it.
type Catalog struct {
	Routes   []models.Route
	Degraded bool
}

var (
	ErrPastDate      = errors.New("travel date must not be in the past")
	ErrNoDestination = errors.New("no destination selected")
	ErrDegraded      = errors.New("catalog is in degraded mode; cannot submit bookings")
)

// BookingFlow drives one user session through catalog load, destination
// selection and submission.
type BookingFlow struct {
	API     *Client
	Session Session

	catalog Catalog
}

// LoadCatalog fetches routes from the server. On transport failure or an
// empty catalog it switches to the named degraded mode instead of
// silently substituting literals.
func (f *BookingFlow) LoadCatalog(ctx context.Context) (Catalog, error) {
	routes, err := f.API.FetchRoutes(ctx)
	if err != nil || len(routes) == 0 {
		f.catalog = Catalog{Routes: FallbackRoutes, Degraded: true}
		return f.catalog, err
	}
	f.catalog = Catalog{Routes: routes}
	return f.catalog, nil
}

// Destinations lists the valid choices for an origin from the loaded
// catalog.
func (f *BookingFlow) Destinations(origin string) []DestinationOption {
	return DestinationsFor(origin, f.catalog.Routes)
}

// Quote computes the total for a destination choice and quantity.
func (f *BookingFlow) Quote(opt DestinationOption, quantity int) float64 {
	return TotalPrice(opt.Price, quantity)
}

// Submit validates the selection client-side and posts the booking. The
// travel date must not precede today; the server does not re-check this.
func (f *BookingFlow) Submit(ctx context.Context, origin, destination, date string, quantity int, paymentMethod string) (models.Booking, error) {
	if f.catalog.Degraded {
		return models.Booking{}, ErrDegraded
	}
	if quantity < 1 {
		return models.Booking{}, errors.New("quantity must be at least 1")
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return models.Booking{}, err
	}
	today, _ := utils.ParseDate(utils.FormatDate(time.Now()))
	if day.Before(today) {
		return models.Booking{}, ErrPastDate
	}

	var selected *DestinationOption
	for _, opt := range f.Destinations(origin) {
		if opt.City == destination {
			o := opt
			selected = &o
			break
		}
	}
	if selected == nil {
		return models.Booking{}, ErrNoDestination
	}

	return f.API.CreateBooking(ctx, f.Session, BookingInput{
		RouteID:       selected.RouteID,
		Date:          date,
		Quantity:      quantity,
		PaymentMethod: paymentMethod,
	})
}
