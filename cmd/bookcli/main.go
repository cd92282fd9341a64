// bookcli books a ticket from the terminal: log in, load the catalog,
// pick a destination, submit, print the confirmation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"ebus/internal/client"
	"ebus/internal/domain/models"
	"ebus/internal/utils"
)

func main() {
	var (
		baseURL     = flag.String("server", "http://localhost:8080", "backend base URL")
		email       = flag.String("email", "", "account email")
		password    = flag.String("password", "", "account password")
		origin      = flag.String("from", "Addis Ababa", "origin city")
		destination = flag.String("to", "", "destination city (default: first available)")
		date        = flag.String("date", "", "travel date YYYY-MM-DD")
		quantity    = flag.Int("passengers", 1, "passenger count")
		payment     = flag.String("payment", "mobile_money", "payment method ("+strings.Join(models.PaymentMethods, ", ")+")")
	)
	flag.Parse()

	if *email == "" || *password == "" || *date == "" {
		log.Fatal("usage: bookcli -email ... -password ... -date YYYY-MM-DD [-to city]")
	}
	if !models.ValidPaymentMethod(*payment) {
		log.Fatalf("unknown payment method %q; choose one of %s", *payment, strings.Join(models.PaymentMethods, ", "))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*baseURL)
	sess, err := api.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	flow := client.BookingFlow{API: api, Session: sess}
	catalog, err := flow.LoadCatalog(ctx)
	if catalog.Degraded {
		log.Printf("warning: degraded catalog (%v); routes shown are offline defaults", err)
	}

	options := flow.Destinations(*origin)
	if len(options) == 0 {
		log.Fatalf("no destinations available from %s", *origin)
	}

	chosen, _ := client.DefaultDestination(options)
	if *destination != "" {
		found := false
		for _, opt := range options {
			if opt.City == *destination {
				chosen = opt
				found = true
				break
			}
		}
		if !found {
			cities := make([]string, 0, len(options))
			for _, opt := range options {
				cities = append(cities, opt.City)
			}
			log.Fatalf("no route %s -> %s; available: %v", *origin, *destination, cities)
		}
	}

	fmt.Printf("%s -> %s, %s, %d passenger(s), total %s\n",
		*origin, chosen.City, *date, *quantity, utils.FormatBirr(flow.Quote(chosen, *quantity)))

	booking, err := flow.Submit(ctx, *origin, chosen.City, *date, *quantity, *payment)
	if err != nil {
		log.Fatalf("booking failed: %v", err)
	}

	fmt.Printf("booked: id=%s status=%s total=%s\n",
		booking.ID.Hex(), booking.Status, utils.FormatBirr(booking.Price))
}
