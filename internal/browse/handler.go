package browse

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Browse the menu with filter/search/sort criteria
// --------------------------------------------------
func (h *Handler) Menu(c *gin.Context) {
	criteria := Criteria{
		Category: c.DefaultQuery("category", All),
		Dietary:  c.DefaultQuery("dietary", All),
		Spice:    c.DefaultQuery("spice", All),
		Search:   c.Query("q"),
		Sort:     c.DefaultQuery("sort", SortDefault),
	}

	result, err := h.service.Browse(criteria)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCriteria):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNoCatalog):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu is not available, try again later"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Category options for the control surface
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.service.Categories(),
	})
}

// --------------------------------------------------
// Dietary / spice / sort options
// --------------------------------------------------
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, ControlOptions())
}
