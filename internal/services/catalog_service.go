package services

import (
	"context"
	"fmt"

	"ebus/internal/domain"
	"ebus/internal/domain/models"
	"ebus/internal/repositories"
	"ebus/internal/utils"
)

// CatalogService serves the authoritative list of sellable routes.
// The catalog is read-only from the booking flow's perspective; the
// startup seed is its only mutation.
type CatalogService struct {
	Routes    repositories.RouteRepo
	RequestID string
}

func (s CatalogService) ListRoutes(ctx context.Context) ([]models.Route, error) {
	routes, err := s.Routes.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load routes", Err: err}
	}
	return routes, nil
}

// validateRoute enforces the catalog schema: only Addis Ababa departures
// to one of the five served cities, priced above zero.
func validateRoute(r models.Route) error {
	if !contains(models.AllowedOrigins, r.Origin) {
		return domain.ValidationError{Field: "origin", Msg: fmt.Sprintf("origin %q is not served", r.Origin)}
	}
	if !contains(models.AllowedDestinations, r.Destination) {
		return domain.ValidationError{Field: "destination", Msg: fmt.Sprintf("destination %q is not served", r.Destination)}
	}
	if r.Origin == r.Destination {
		return domain.ValidationError{Field: "destination", Msg: "origin and destination must differ"}
	}
	if r.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "price must be positive"}
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// SeedIfEmpty inserts defaults only when the catalog holds zero routes.
// Idempotent; called once from main before the listener starts, so no
// request can observe a half-seeded catalog through this process.
// Every seeded route must pass the schema enums; one bad entry rejects
// the whole batch and leaves the catalog untouched.
func (s CatalogService) SeedIfEmpty(ctx context.Context, defaults []models.Route) error {
	count, err := s.Routes.Count(ctx)
	if err != nil {
		return domain.InternalError{Msg: "failed to count routes", Err: err}
	}
	if count > 0 {
		return nil
	}
	for _, r := range defaults {
		if err := validateRoute(r); err != nil {
			return err
		}
	}
	if err := s.Routes.InsertMany(ctx, defaults); err != nil {
		return domain.InternalError{Msg: "failed to seed routes", Err: err}
	}
	utils.LogEvent(s.RequestID, "catalog", "seed", fmt.Sprintf("inserted %d default routes", len(defaults)))
	return nil
}
