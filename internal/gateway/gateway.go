// Package gateway fetches the raw collections from the remote demo service.
//
// Each fetch is a single bounded-size GET whose response wraps the records in
// a JSON envelope keyed by the resource name. Failures are returned to the
// caller as errors; the degrade-to-empty decision belongs to the state layer,
// so "zero results" and "fetch failed" stay distinguishable.
package gateway

import (
	"context"

	"github.com/miloosorio186/dashboard-tech/internal/models"
)

// Gateway is the read contract against the remote service. This is the whole
// surface the state layer depends on; tests substitute it with a mock.
type Gateway interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
	FetchProducts(ctx context.Context) ([]models.Product, error)
	FetchCarts(ctx context.Context) ([]models.Cart, error)
	FetchPosts(ctx context.Context) ([]models.Post, error)
}
