package client

import (
	"testing"

	"ebus/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDestinationsForFiltersOrigin(t *testing.T) {
	routes := []models.Route{
		{ID: primitive.NewObjectID(), Origin: "Addis Ababa", Destination: "Bahir Dar", Price: 500},
		{ID: primitive.NewObjectID(), Origin: "Addis Ababa", Destination: "Adama", Price: 200},
		{ID: primitive.NewObjectID(), Origin: "Adama", Destination: "Jimma", Price: 300},
	}

	opts := DestinationsFor("Addis Ababa", routes)
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].City != "Bahir Dar" || opts[1].City != "Adama" {
		t.Fatalf("options out of catalog order: %v", opts)
	}
}

func TestDestinationsForNeverReturnsOrigin(t *testing.T) {
	routes := []models.Route{
		{ID: primitive.NewObjectID(), Origin: "Addis Ababa", Destination: "Addis Ababa", Price: 100},
		{ID: primitive.NewObjectID(), Origin: "Addis Ababa", Destination: "Dessie", Price: 600},
	}

	for _, opt := range DestinationsFor("Addis Ababa", routes) {
		if opt.City == "Addis Ababa" {
			t.Fatalf("destination equals origin: %v", opt)
		}
	}
}

func TestDefaultDestinationIsFirstByCatalogOrder(t *testing.T) {
	opts := DestinationsFor("Addis Ababa", []models.Route{
		{ID: primitive.NewObjectID(), Origin: "Addis Ababa", Destination: "Jimma", Price: 450},
		{ID: primitive.NewObjectID(), Origin: "Addis Ababa", Destination: "Adama", Price: 200},
	})

	def, ok := DefaultDestination(opts)
	if !ok || def.City != "Jimma" {
		t.Fatalf("default = %v ok=%v, want Jimma", def, ok)
	}

	if _, ok := DefaultDestination(nil); ok {
		t.Fatalf("empty option list should have no default")
	}
}

func TestTotalPriceLinearInQuantity(t *testing.T) {
	for _, price := range []float64{200, 450, 800} {
		for _, q := range []int{1, 2, 5} {
			if got, want := TotalPrice(price, 2*q), 2*TotalPrice(price, q); got != want {
				t.Fatalf("TotalPrice(%.0f, %d) = %.0f, want %.0f", price, 2*q, got, want)
			}
		}
	}
}

func TestTotalPriceZeroWithoutSelection(t *testing.T) {
	if got := TotalPrice(0, 3); got != 0 {
		t.Fatalf("no selection should price at 0, got %.0f", got)
	}
	if got := TotalPrice(500, 0); got != 0 {
		t.Fatalf("zero quantity should price at 0, got %.0f", got)
	}
}

func TestBahirDarScenario(t *testing.T) {
	routes := []models.Route{
		{ID: primitive.NewObjectID(), Origin: "Addis Ababa", Destination: "Bahir Dar", Price: 500},
	}

	opts := DestinationsFor("Addis Ababa", routes)
	if len(opts) != 1 || opts[0].City != "Bahir Dar" || opts[0].Price != 500 {
		t.Fatalf("unexpected options: %v", opts)
	}
	if total := TotalPrice(opts[0].Price, 3); total != 1500 {
		t.Fatalf("total = %.0f, want 1500", total)
	}
}
