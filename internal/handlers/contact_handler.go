package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uprisingink/studio-api/internal/config"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/mailer"
	"github.com/uprisingink/studio-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ContactHandler struct {
	mail   mailer.Sender
	config *config.Config
}

func NewContactHandler(mail mailer.Sender, cfg *config.Config) *ContactHandler {
	return &ContactHandler{mail: mail, config: cfg}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit relays a contact-form entry: one email to the studio inbox, one
// acknowledgment back to the sender.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email, subject and message are required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	studio := h.config.StudioName

	notification := fmt.Sprintf(
		"New contact form submission\n\nFrom: %s <%s>\nSubject: %s\n\n%s\n",
		req.Name, email, req.Subject, req.Message,
	)
	if err := h.mail.Send(
		h.config.ContactRecipient,
		fmt.Sprintf("[Contact] %s", req.Subject),
		notification,
	); err != nil {
		log.Println("contact notification failed:", err)
		httperr.UpstreamFailed(c, "email_delivery_failed", "Could not deliver your message.")
		return
	}

	ack := fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out to %s. We received your message and will get back to you soon.\n\nThe %s team\n",
		req.Name, studio, studio,
	)
	if err := h.mail.Send(email, fmt.Sprintf("%s received your message", studio), ack); err != nil {
		// The studio already has the submission; the ack is best effort.
		log.Println("contact acknowledgment failed:", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
