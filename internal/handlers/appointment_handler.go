package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/uprisingink/studio-api/internal/domain/appointment"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/httpresp"
	"github.com/uprisingink/studio-api/internal/middleware"
	usecase "github.com/uprisingink/studio-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *usecase.BookAppointment
	list       *usecase.ListAppointments
	transition *usecase.TransitionAppointment
	delete     *usecase.DeleteAppointment
	checkout   *usecase.DepositCheckout
	markPaid   *usecase.MarkDepositPaid
}

func NewAppointmentHandler(
	book *usecase.BookAppointment,
	list *usecase.ListAppointments,
	transition *usecase.TransitionAppointment,
	del *usecase.DeleteAppointment,
	checkout *usecase.DepositCheckout,
	markPaid *usecase.MarkDepositPaid,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		list:       list,
		transition: transition,
		delete:     del,
		checkout:   checkout,
		markPaid:   markPaid,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ArtistID        string  `json:"artist_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	DurationHours   float64 `json:"duration_hours" binding:"required"`
	Description     string  `json:"description"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	date, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use RFC 3339 timestamps.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), usecase.BookAppointmentInput{
		ClientProfileID: profileID,
		ArtistID:        req.ArtistID,
		AppointmentDate: date,
		DurationHours:   req.DurationHours,
		Description:     req.Description,
	})
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "booking_failed", "Could not book the appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)
	role := c.GetString(middleware.ContextUserRole)

	filter, ok := parseListFilter(c)
	if !ok {
		return
	}

	aps, err := h.list.Execute(c.Request.Context(), profileID, role, filter)
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "appointment_list_failed", "Could not list appointments.")
		}
		return
	}

	httpresp.List(c, aps)
}

func parseListFilter(c *gin.Context) (domain.ListFilter, bool) {
	var filter domain.ListFilter

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Use YYYY-MM-DD.")
			return filter, false
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Use YYYY-MM-DD.")
			return filter, false
		}
		filter.To = &to
	}

	// Calendar views read ascending; the default list view reads newest
	// first.
	if c.Query("order") == "asc" {
		filter.Order = domain.OrderDateAsc
	} else {
		filter.Order = domain.OrderDateDesc
	}

	return filter, true
}

// ======================================================
// TRANSITION
// ======================================================

func (h *AppointmentHandler) Transition(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)
	role := c.GetString(middleware.ContextUserRole)
	id := c.Param("id")

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing target status.")
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), id, req.Status, profileID, role)
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "transition_failed", "Could not update appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)
	role := c.GetString(middleware.ContextUserRole)
	id := c.Param("id")

	if err := h.delete.Execute(c.Request.Context(), id, profileID, role); err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "delete_failed", "Could not delete appointment.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// DEPOSIT
// ======================================================

func (h *AppointmentHandler) CreateDepositCheckout(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)
	role := c.GetString(middleware.ContextUserRole)
	id := c.Param("id")

	out, err := h.checkout.Execute(c.Request.Context(), id, profileID, role)
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "checkout_failed", "Could not start deposit checkout.")
		}
		return
	}

	httpresp.Created(c, out)
}

func (h *AppointmentHandler) MarkDepositPaid(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)
	role := c.GetString(middleware.ContextUserRole)
	id := c.Param("id")

	ap, err := h.markPaid.Execute(c.Request.Context(), id, profileID, role)
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "deposit_update_failed", "Could not mark deposit paid.")
		}
		return
	}

	httpresp.OK(c, ap)
}
