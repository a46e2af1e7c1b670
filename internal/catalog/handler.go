package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes catalog management to authenticated admins.
type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// Admin: reload the catalog from its source
// --------------------------------------------------
func (h *AdminHandler) Reload(c *gin.Context) {
	snap, err := h.service.Reload(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrLoad) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   err.Error(),
				"message": "previous catalog retained",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snap.ID,
		"items":       len(snap.Items),
		"categories":  len(snap.Categories),
	})
}

// --------------------------------------------------
// Admin: schedule a coalesced background reload
// --------------------------------------------------
func (h *AdminHandler) ScheduleReload(c *gin.Context) {
	h.service.RequestReload()
	c.JSON(http.StatusAccepted, gin.H{
		"message": "reload scheduled",
	})
}
