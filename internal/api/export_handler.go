package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/miloosorio186/dashboard-tech/internal/export"
	"github.com/miloosorio186/dashboard-tech/internal/metrics"
	"github.com/miloosorio186/dashboard-tech/internal/state"
)

// ExportHandler serves the export downloads
type ExportHandler struct {
	store   *state.Store
	metrics *metrics.Collector
	log     zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(store *state.Store, collector *metrics.Collector, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		store:   store,
		metrics: collector,
		log:     log.With().Str("handler", "export").Logger(),
	}
}

// Download handles GET /v1/exports/:subject with subject one of inventory,
// transactions, analytics. Exports operate on the full current snapshot, not
// the filtered views. Encoding failures surface as errors rather than
// shipping a corrupt file.
func (h *ExportHandler) Download(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}

	subject := c.Param("subject")

	var file *export.File
	var err error
	switch subject {
	case "inventory":
		file, err = export.Inventory(snap.Products)
	case "transactions":
		file, err = export.Transactions(snap.Carts)
	case "analytics":
		file, err = export.Analytics(snap.Carts, snap.Products)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject must be one of: inventory, transactions, analytics"})
		return
	}

	if err != nil {
		h.log.Error().Err(err).Str("subject", subject).Msg("Export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	h.metrics.Exports.WithLabelValues(subject).Inc()
	h.log.Info().Str("subject", subject).Str("file", file.Name).Int("bytes", len(file.Data)).Msg("Export produced")

	c.Header("Content-Disposition", "attachment; filename="+file.Name)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
