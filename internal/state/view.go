package state

import (
	"time"

	"github.com/miloosorio186/dashboard-tech/internal/aggregate"
	"github.com/miloosorio186/dashboard-tech/internal/models"
)

// View is the full derived payload the presentation layer reads. It is
// recomputed from the current snapshot and query on every call, never cached.
type View struct {
	Phase             Phase   `json:"phase"`
	ActiveSection     Section `json:"activeSection"`
	SearchQuery       string  `json:"searchQuery"`
	RefreshInProgress bool    `json:"refreshInProgress"`

	SnapshotID string            `json:"snapshotId"`
	FetchedAt  time.Time         `json:"fetchedAt"`
	Failures   map[string]string `json:"failures,omitempty"`

	// Collections filtered by the current search query
	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
	Carts    []models.Cart    `json:"carts"`
	Posts    []models.Post    `json:"posts"`

	// Derived summaries. Categories and Revenue are computed over the full
	// collections, not the filtered ones.
	Categories []aggregate.CategoryCount `json:"categories"`
	Revenue    float64                   `json:"revenue"`
	Sales      []aggregate.SalesPoint    `json:"sales"`

	// Overview stat cards
	AgentCount     int     `json:"agentCount"`
	InventoryCount int     `json:"inventoryCount"`
	TotalStock     int     `json:"totalStock"`
	AverageRating  float64 `json:"averageRating"`
}

// View computes the current derived view. Returns ErrNotReady while the
// initial load has not settled.
func (s *Store) View() (*View, error) {
	s.mu.RLock()
	phase := s.phase
	section := s.section
	query := s.query
	snap := s.snapshot
	s.mu.RUnlock()

	if snap == nil {
		return nil, ErrNotReady
	}

	return &View{
		Phase:             phase,
		ActiveSection:     section,
		SearchQuery:       query,
		RefreshInProgress: phase == PhaseRefreshing,

		SnapshotID: snap.ID,
		FetchedAt:  snap.FetchedAt,
		Failures:   snap.Failures,

		Users:    aggregate.FilterUsers(snap.Users, query),
		Products: aggregate.FilterProducts(snap.Products, query),
		Carts:    aggregate.FilterCarts(snap.Carts, query),
		Posts:    snap.Posts,

		Categories: aggregate.CategoryHistogram(snap.Products),
		Revenue:    aggregate.RevenueTotal(snap.Carts),
		Sales:      aggregate.SalesSeries(snap.Carts, len(snap.Carts)),

		AgentCount:     len(snap.Users),
		InventoryCount: len(snap.Products),
		TotalStock:     aggregate.TotalStock(snap.Products),
		AverageRating:  aggregate.AverageRating(snap.Products),
	}, nil
}
