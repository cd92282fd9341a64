package client

import "ebus/internal/domain/models"

// DestinationOption is one selectable destination for a chosen origin.
type DestinationOption struct {
	RouteID string  `json:"routeId"`
	City    string  `json:"city"`
	Price   float64 `json:"price"`
}

// DestinationsFor derives the valid destination choices for an origin:
// catalog entries whose origin matches and whose destination differs
// from it, in catalog order. The first entry is the default selection.
func DestinationsFor(origin string, routes []models.Route) []DestinationOption {
	out := []DestinationOption{}
	for _, r := range routes {
		if r.Origin != origin || r.Destination == origin {
			continue
		}
		out = append(out, DestinationOption{
			RouteID: r.ID.Hex(),
			City:    r.Destination,
			Price:   r.Price,
		})
	}
	return out
}

// DefaultDestination returns the first option by catalog order.
func DefaultDestination(opts []DestinationOption) (DestinationOption, bool) {
	if len(opts) == 0 {
		return DestinationOption{}, false
	}
	return opts[0], true
}

// TotalPrice is price x quantity; 0 when nothing is selected or the
// quantity is not positive.
func TotalPrice(price float64, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return price * float64(quantity)
}
