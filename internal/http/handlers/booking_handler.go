package handlers

import (
	"net/http"

	"ebus/internal/http/middleware"
	"ebus/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation and per-user reads.
type BookingHandler struct {
	Bookings services.BookingService
	Tickets  services.TicketService
}

// bookingRequest is the single create payload shape. userId is only
// honored on the legacy unauthenticated path; the canonical path takes
// the user from the bearer token.
type bookingRequest struct {
	UserID        string `json:"userId,omitempty"`
	RouteID       string `json:"routeId"`
	Date          string `json:"date"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	h.create(c, middleware.GetUserID(c))
}

// POST /api/bookings/book (legacy, unauthenticated, explicit userId)
func (h *BookingHandler) CreateLegacy(c *gin.Context) {
	h.create(c, "")
}

func (h *BookingHandler) create(c *gin.Context, authUserID string) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if authUserID != "" {
		req.UserID = authUserID
	}

	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)

	booking, err := svc.Create(c.Request.Context(), services.CreateRequest{
		UserID:        req.UserID,
		RouteID:       req.RouteID,
		Date:          req.Date,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.Bookings.ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.Bookings.GetForUser(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/bookings/:id/ticket
func (h *BookingHandler) Ticket(c *gin.Context) {
	svc := h.Tickets
	svc.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := svc.Generate(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
