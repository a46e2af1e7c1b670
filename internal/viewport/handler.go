package viewport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// computeRequest carries the measurements a frontend reports on a
// scroll event: viewport position, rendered group extents, and
// optionally the indicator strip's geometry for alignment.
type computeRequest struct {
	Scroll View        `json:"scroll"`
	Groups []GroupSpan `json:"groups" binding:"required"`
	Active string      `json:"active"`
	Band   float64     `json:"band"`

	Strip *struct {
		View    View        `json:"view"`
		Content Span        `json:"content"`
		Entries []GroupSpan `json:"entries"`
	} `json:"strip"`
}

type computeResponse struct {
	Active       string   `json:"active"`
	Visible      bool     `json:"visible"`
	TargetOffset *float64 `json:"target_offset,omitempty"`
	StripOffset  *float64 `json:"strip_offset,omitempty"`
	StripMoved   bool     `json:"strip_moved,omitempty"`
	Overflows    bool     `json:"overflows,omitempty"`
}

// Handler is the stateless compute endpoint for frontends that defer
// the scroll-sync arithmetic to the server. The client passes its
// previously active category back in so tie-breaks stay stable.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Compute(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viewport measurements"})
		return
	}

	tracker := NewTracker()
	tracker.SetGroups(req.Groups)
	if req.Active != "" {
		tracker.active = req.Active
	}
	active := tracker.Update(req.Scroll)

	content := contentSpan(req.Groups)
	resp := computeResponse{
		Active:  active,
		Visible: Visible(content, req.Scroll, req.Band),
	}

	for _, g := range req.Groups {
		if g.Category == active {
			offset := TargetOffset(g.Span)
			resp.TargetOffset = &offset
			break
		}
	}

	if req.Strip != nil {
		resp.Overflows = Overflows(req.Strip.Content, req.Strip.View)
		for _, e := range req.Strip.Entries {
			if e.Category == active {
				offset, moved := Align(req.Strip.View, e.Span)
				resp.StripOffset = &offset
				resp.StripMoved = moved
				break
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// contentSpan is the union extent of all rendered groups.
func contentSpan(groups []GroupSpan) Span {
	if len(groups) == 0 {
		return Span{}
	}
	span := groups[0].Span
	for _, g := range groups[1:] {
		if g.Start < span.Start {
			span.Start = g.Start
		}
		if g.End > span.End {
			span.End = g.End
		}
	}
	return span
}
