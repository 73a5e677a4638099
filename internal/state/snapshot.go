package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/miloosorio186/dashboard-tech/internal/gateway"
	"github.com/miloosorio186/dashboard-tech/internal/models"
)

// Snapshot is one immutable generation of the raw collections. The store
// swaps whole snapshots; nothing ever mutates one in place, so readers can
// hold a snapshot across the ongoing refresh without seeing mixed data.
type Snapshot struct {
	ID        string    `json:"id"`
	FetchedAt time.Time `json:"fetchedAt"`

	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
	Carts    []models.Cart    `json:"carts"`
	Posts    []models.Post    `json:"posts"`

	// Failures maps a resource name to the fetch error that degraded it to an
	// empty collection, so "no results" and "fetch down" stay distinguishable.
	Failures map[string]string `json:"failures,omitempty"`
}

// fetchSnapshot issues all four gateway fetches concurrently and waits for
// every one to settle. A failed resource lands in the snapshot as an empty
// collection plus a Failures entry; the join itself never fails.
func fetchSnapshot(ctx context.Context, gw gateway.Gateway) *Snapshot {
	snap := &Snapshot{
		ID:        uuid.NewString(),
		FetchedAt: time.Now().UTC(),
		Users:     []models.User{},
		Products:  []models.Product{},
		Carts:     []models.Cart{},
		Posts:     []models.Post{},
		Failures:  map[string]string{},
	}

	var mu sync.Mutex
	fail := func(resource string, err error) {
		mu.Lock()
		snap.Failures[resource] = err.Error()
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		if users, err := gw.FetchUsers(ctx); err != nil {
			fail("users", err)
		} else if users != nil {
			snap.Users = users
		}
	}()
	go func() {
		defer wg.Done()
		if products, err := gw.FetchProducts(ctx); err != nil {
			fail("products", err)
		} else if products != nil {
			snap.Products = products
		}
	}()
	go func() {
		defer wg.Done()
		if carts, err := gw.FetchCarts(ctx); err != nil {
			fail("carts", err)
		} else if carts != nil {
			snap.Carts = carts
		}
	}()
	go func() {
		defer wg.Done()
		if posts, err := gw.FetchPosts(ctx); err != nil {
			fail("posts", err)
		} else if posts != nil {
			snap.Posts = posts
		}
	}()

	wg.Wait()
	if len(snap.Failures) == 0 {
		snap.Failures = nil
	}
	return snap
}
