package repositories

import (
	"context"
	"sort"
	"sync"

	"ebus/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory implementations of the store interfaces. They back the tests
// so no service or handler test needs a running MongoDB.

type MemoryRouteRepo struct {
	mu     sync.RWMutex
	routes []models.Route
}

func NewMemoryRouteRepo() *MemoryRouteRepo {
	return &MemoryRouteRepo{}
}

func (r *MemoryRouteRepo) List(ctx context.Context) ([]models.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Route, len(r.routes))
	copy(out, r.routes)
	return out, nil
}

func (r *MemoryRouteRepo) FindByID(ctx context.Context, id string) (models.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.routes {
		if rt.ID.Hex() == id {
			return rt, nil
		}
	}
	return models.Route{}, mongo.ErrNoDocuments
}

func (r *MemoryRouteRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.routes)), nil
}

func (r *MemoryRouteRepo) InsertMany(ctx context.Context, routes []models.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range routes {
		if rt.ID.IsZero() {
			rt.ID = primitive.NewObjectID()
		}
		r.routes = append(r.routes, rt)
	}
	return nil
}

type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) Insert(ctx context.Context, b models.Booking) (models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	r.bookings = append(r.bookings, b)
	return b, nil
}

func (r *MemoryBookingRepo) FindByID(ctx context.Context, id string) (models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID.Hex() == id {
			return b, nil
		}
	}
	return models.Booking{}, mongo.ErrNoDocuments
}

func (r *MemoryBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.UserID.Hex() == userID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type MemoryUserRepo struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{}
}

func (r *MemoryUserRepo) Insert(ctx context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *MemoryUserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (r *MemoryUserRepo) FindByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}
