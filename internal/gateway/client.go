package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/miloosorio186/dashboard-tech/internal/config"
	"github.com/miloosorio186/dashboard-tech/internal/metrics"
	"github.com/miloosorio186/dashboard-tech/internal/models"
	"github.com/miloosorio186/dashboard-tech/internal/validation"
)

// Client is the HTTP implementation of Gateway.
type Client struct {
	baseURL string
	limits  config.LimitsConfig
	http    *http.Client
	metrics *metrics.Collector
	log     zerolog.Logger
}

// Verify interface compliance
var _ Gateway = (*Client)(nil)

// NewClient creates a Gateway backed by the configured remote service.
func NewClient(cfg *config.GatewayConfig, collector *metrics.Collector, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		limits:  cfg.Limits,
		http:    &http.Client{Timeout: cfg.Timeout},
		metrics: collector,
		log:     log.With().Str("component", "gateway").Logger(),
	}
}

// FetchUsers fetches the bounded user collection.
func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	var envelope struct {
		Users []models.User `json:"users"`
	}
	if err := c.fetch(ctx, "users", c.limits.Users, &envelope); err != nil {
		return nil, err
	}
	if err := c.reject("users", validation.ValidateUsers(envelope.Users)); err != nil {
		return nil, err
	}
	c.metrics.FetchOK("users")
	return envelope.Users, nil
}

// FetchProducts fetches the bounded product collection.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var envelope struct {
		Products []models.Product `json:"products"`
	}
	if err := c.fetch(ctx, "products", c.limits.Products, &envelope); err != nil {
		return nil, err
	}
	if err := c.reject("products", validation.ValidateProducts(envelope.Products)); err != nil {
		return nil, err
	}
	c.metrics.FetchOK("products")
	return envelope.Products, nil
}

// FetchCarts fetches the bounded cart collection.
func (c *Client) FetchCarts(ctx context.Context) ([]models.Cart, error) {
	var envelope struct {
		Carts []models.Cart `json:"carts"`
	}
	if err := c.fetch(ctx, "carts", c.limits.Carts, &envelope); err != nil {
		return nil, err
	}
	if err := c.reject("carts", validation.ValidateCarts(envelope.Carts)); err != nil {
		return nil, err
	}
	c.metrics.FetchOK("carts")
	return envelope.Carts, nil
}

// FetchPosts fetches the bounded post collection for the notifications feed.
func (c *Client) FetchPosts(ctx context.Context) ([]models.Post, error) {
	var envelope struct {
		Posts []models.Post `json:"posts"`
	}
	if err := c.fetch(ctx, "posts", c.limits.Posts, &envelope); err != nil {
		return nil, err
	}
	if err := c.reject("posts", validation.ValidatePosts(envelope.Posts)); err != nil {
		return nil, err
	}
	c.metrics.FetchOK("posts")
	return envelope.Posts, nil
}

// reject turns a non-empty validation result into a fetch failure for the
// resource, so malformed remote data degrades the same way a transport error
// does instead of flowing inward.
func (c *Client) reject(resource string, errs []validation.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	c.metrics.FetchFailed(resource)
	c.log.Warn().Int("violations", len(errs)).Str("resource", resource).Msg("Fetched payload failed validation")
	return fmt.Errorf("validate %s: %w", resource, validation.First(errs))
}

// fetch issues one bounded GET and decodes the envelope into out. Any non-2xx
// status or malformed body counts as a total failure for the resource.
func (c *Client) fetch(ctx context.Context, resource string, limit int, out interface{}) error {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, resource, url.Values{
		"limit": []string{strconv.Itoa(limit)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.metrics.FetchFailed(resource)
		return fmt.Errorf("build %s request: %w", resource, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.FetchFailed(resource)
		c.log.Warn().Err(err).Str("resource", resource).Msg("Fetch failed")
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.FetchFailed(resource)
		c.log.Warn().Int("status", resp.StatusCode).Str("resource", resource).Msg("Fetch returned non-success status")
		return fmt.Errorf("fetch %s: unexpected status %d", resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.FetchFailed(resource)
		c.log.Warn().Err(err).Str("resource", resource).Msg("Fetch body decode failed")
		return fmt.Errorf("decode %s response: %w", resource, err)
	}

	return nil
}
