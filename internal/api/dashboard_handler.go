package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/miloosorio186/dashboard-tech/internal/state"
)

// DashboardHandler serves the view-state endpoints
type DashboardHandler struct {
	store *state.Store
	log   zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(store *state.Store, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		store: store,
		log:   log.With().Str("handler", "dashboard").Logger(),
	}
}

// GetView handles GET /v1/view. It returns the full derived view, recomputed
// from the current snapshot and search query.
func (h *DashboardHandler) GetView(c *gin.Context) {
	view, err := h.store.View()
	if err != nil {
		if errors.Is(err, state.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to compute view")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute view"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetSnapshot handles GET /v1/snapshot. It returns the raw collections of the
// current snapshot without any filtering.
func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// SelectSection handles POST /v1/state/section
func (h *DashboardHandler) SelectSection(c *gin.Context) {
	var req struct {
		Section string `json:"section"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.store.SelectSection(req.Section); err != nil {
		if errors.Is(err, state.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activeSection": h.store.ActiveSection()})
}

// SetSearchQuery handles POST /v1/state/query
func (h *DashboardHandler) SetSearchQuery(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.store.SetSearchQuery(req.Query); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"searchQuery": h.store.SearchQuery()})
}

// Refresh handles POST /v1/refresh. The refresh itself runs detached from the
// request context: once started it always runs to completion, and a refresh
// already in flight makes this a no-op.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	if h.store.Phase() == state.PhaseLoading {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}

	go func() {
		if err := h.store.Refresh(context.Background()); err != nil {
			h.log.Error().Err(err).Msg("Refresh failed")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "refreshing"})
}
