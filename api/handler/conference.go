package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/conferential/conferential/api/auth"
	"github.com/conferential/conferential/api/models"
	"github.com/conferential/conferential/database"
)

// CreateConference creates a conference session. Admin only.
func (h *Handler) CreateConference(c *gin.Context) {
	var req models.ConferenceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	conf := database.Conference{
		Title:       req.Title,
		Description: req.Description,
		SpeakerName: req.SpeakerName,
		SpeakerBio:  req.SpeakerBio,
		Date:        date,
		SlotNumber:  req.SlotNumber,
	}
	if err := h.db.CreateConference(c.Request.Context(), &conf); err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot number must be between 1 and 10"})
		case errors.Is(err, database.ErrSlotOccupied):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no free track left in this slot"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "conference created", "id": conf.ID})
}

// ListConferences returns conferences ordered by date then slot. The optional
// day query parameter (YYYY-MM-DD) restricts the list to one calendar date.
func (h *Handler) ListConferences(c *gin.Context) {
	var day *time.Time
	if value := c.Query("day"); value != "" {
		parsed, err := parseDate(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day, expected YYYY-MM-DD"})
			return
		}
		day = &parsed
	}

	conferences, err := h.db.ListConferences(c.Request.Context(), day)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ConferenceResponsesFrom(conferences))
}

// GetConference returns a conference with its member list. When the request
// carries a valid credential, the response includes whether the requester
// has joined.
func (h *Handler) GetConference(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	conf, err := h.db.GetConference(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conference not found"})
			return
		}
		internalError(c, err)
		return
	}

	var isJoined *bool
	if claims, ok := auth.CurrentClaims(c); ok {
		joined, err := h.db.IsMember(c.Request.Context(), conf.ID, claims.UserID)
		if err != nil {
			internalError(c, err)
			return
		}
		isJoined = &joined
	}

	c.JSON(http.StatusOK, models.ConferenceDetailResponseFrom(conf, isJoined))
}

// UpdateConference applies a partial update and recomputes the schedule.
// Admin or sponsor only.
func (h *Handler) UpdateConference(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.ConferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	conf, err := h.db.GetConference(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conference not found"})
			return
		}
		internalError(c, err)
		return
	}

	if req.Title != nil {
		conf.Title = *req.Title
	}
	if req.Description != nil {
		conf.Description = *req.Description
	}
	if req.SpeakerName != nil {
		conf.SpeakerName = *req.SpeakerName
	}
	if req.SpeakerBio != nil {
		conf.SpeakerBio = *req.SpeakerBio
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		conf.Date = date
	}
	if req.SlotNumber != nil {
		conf.SlotNumber = *req.SlotNumber
	}

	if err := h.db.UpdateConference(c.Request.Context(), conf); err != nil {
		if errors.Is(err, database.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot number must be between 1 and 10"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "conference updated"})
}

// DeleteConference removes a conference and its memberships. Admin only.
func (h *Handler) DeleteConference(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.db.DeleteConference(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conference not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// JoinConference adds the authenticated user to a conference.
func (h *Handler) JoinConference(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.db.JoinConference(c.Request.Context(), id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "conference not found"})
		case errors.Is(err, database.ErrAlreadyJoined):
			c.JSON(http.StatusBadRequest, gin.H{"error": "already joined"})
		case errors.Is(err, database.ErrConferenceFull):
			c.JSON(http.StatusBadRequest, gin.H{"error": "conference is full"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "joined conference"})
}

// LeaveConference removes the authenticated user from a conference.
func (h *Handler) LeaveConference(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.db.LeaveConference(c.Request.Context(), id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "conference not found"})
		case errors.Is(err, database.ErrNotJoined):
			c.JSON(http.StatusBadRequest, gin.H{"error": "not a member"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "left conference"})
}
