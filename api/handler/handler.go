package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/conferential/conferential/api/auth"
	"github.com/conferential/conferential/database"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

type Handler struct {
	db   *database.Client
	auth *auth.Authenticator
}

func New(db *database.Client, authenticator *auth.Authenticator) *Handler {
	return &Handler{
		db:   db,
		auth: authenticator,
	}
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// idParam parses the :id route parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseDate parses a YYYY-MM-DD calendar date at midnight UTC.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// internalError logs the detail server-side and returns a generic 500. The
// detail is withheld from the client.
func internalError(c *gin.Context, err error) {
	log.Error("internal server error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
