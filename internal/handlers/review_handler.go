package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/httpresp"
	"github.com/uprisingink/studio-api/internal/middleware"
	usecase "github.com/uprisingink/studio-api/internal/usecase/review"
)

type ReviewHandler struct {
	create *usecase.CreateReview
	list   *usecase.ListReviews
}

func NewReviewHandler(create *usecase.CreateReview, list *usecase.ListReviews) *ReviewHandler {
	return &ReviewHandler{create: create, list: list}
}

type CreateReviewRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	ReviewText    string `json:"review_text"`
	IsPublic      *bool  `json:"is_public"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	rv, err := h.create.Execute(c.Request.Context(), usecase.CreateReviewInput{
		ClientProfileID: profileID,
		AppointmentID:   req.AppointmentID,
		Rating:          req.Rating,
		ReviewText:      req.ReviewText,
		IsPublic:        isPublic,
	})
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "review_failed", "Could not save review.")
		}
		return
	}

	httpresp.Created(c, rv)
}

// ListForArtist is the public review feed on an artist page.
func (h *ReviewHandler) ListForArtist(c *gin.Context) {
	reviews, err := h.list.ForArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "review_list_failed", "Could not load reviews.")
		return
	}

	httpresp.List(c, reviews)
}
