package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"ebus/internal/domain"
	"ebus/internal/repositories"
	"ebus/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/mongo"
)

// TicketService renders the printable e-ticket for a booking as a PDF.
type TicketService struct {
	Bookings  repositories.BookingRepo
	Routes    repositories.RouteRepo
	Users     repositories.UserRepo
	RequestID string
	Loader    func(ctx context.Context, bookingID, userID string) (ticketDocData, error)
}

type ticketDocData struct {
	BookingID     string
	TicketCode    string
	PassengerName string
	Origin        string
	Destination   string
	TravelDate    string
	Quantity      int
	PaymentMethod string
	Total         float64
	Status        string
}

func (s TicketService) Generate(ctx context.Context, bookingID, userID string) ([]byte, string, error) {
	data, err := s.loadTicketDocData(ctx, bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate", fmt.Sprintf("booking_id=%s", data.BookingID))
	return buildETicketPDF(data)
}

func (s TicketService) loadTicketDocData(ctx context.Context, bookingID, userID string) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID, userID)
	}

	var out ticketDocData
	booking, err := BookingService{Bookings: s.Bookings, Routes: s.Routes}.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return out, err
	}

	out.BookingID = booking.ID.Hex()
	out.TicketCode = ticketCode(booking.ID.Hex())
	out.TravelDate = utils.FormatDate(booking.Date)
	out.Quantity = booking.Quantity
	out.PaymentMethod = booking.PaymentMethod
	out.Total = booking.Price
	out.Status = booking.Status

	route, err := s.Routes.FindByID(ctx, booking.RouteID.Hex())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return out, domain.NotFoundError{Resource: "route", Err: err}
		}
		return out, domain.InternalError{Msg: "failed to resolve route", Err: err}
	}
	out.Origin = route.Origin
	out.Destination = route.Destination

	if user, err := s.Users.FindByID(ctx, userID); err == nil {
		out.PassengerName = user.Name
	}
	return out, nil
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Bus Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-BUS TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(d.Origin, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Travel Date    : %s", safe(d.TravelDate, "-")),
		"Departure      : 5:00 AM (local time)",
		fmt.Sprintf("Passengers     : %d", d.Quantity),
		fmt.Sprintf("Payment        : %s", safe(strings.ReplaceAll(d.PaymentMethod, "_", " "), "-")),
		fmt.Sprintf("Total          : %s", utils.FormatBirr(d.Total)),
		fmt.Sprintf("Status         : %s", safe(d.Status, "-")),
		fmt.Sprintf("Booking Ref    : #%s", d.BookingID),
		fmt.Sprintf("Ticket Code    : %s", d.TicketCode),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this e-ticket covers the listed passenger count for one journey. Please present it at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", d.TicketCode)
	return buf.Bytes(), filename, nil
}

// ticketCode derives a short printable code from the booking id.
func ticketCode(bookingID string) string {
	suffix := bookingID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "TCK-" + strings.ToUpper(suffix)
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
