package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/uprisingink/studio-api/internal/audit"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/httpresp"
	"github.com/uprisingink/studio-api/internal/middleware"
	"github.com/uprisingink/studio-api/internal/models"
	"github.com/uprisingink/studio-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, audit *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: audit}
}

// ======================================================
// CREATE USER
// ======================================================

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// CreateUser provisions any account type, including artists and staff.
// The route group already enforces manager/owner callers.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	actorID := c.GetString(middleware.ContextProfileID)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email, password, full name and role are required.")
		return
	}

	if !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Unknown role.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	profile := models.Profile{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Role:         req.Role,
	}

	// Profile plus its role record land together or not at all.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		switch req.Role {
		case models.RoleArtist:
			return tx.Create(&models.Artist{ProfileID: profile.ID}).Error
		case models.RoleClient:
			return tx.Create(&models.Client{ProfileID: profile.ID}).Error
		}
		return nil
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "duplicate_email", "A profile with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "user_created",
		Entity:   "profile",
		EntityID: &profile.ID,
		Metadata: map[string]any{"role": req.Role},
	})

	c.JSON(http.StatusCreated, profile)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Client.Profile").
		Preload("Artist").
		Preload("Artist.Profile").
		Order("appointment_date DESC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "appointment_list_failed", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Preload("Profile").
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "client_list_failed", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}
