// Package aggregate derives view-ready summaries from the raw collections.
// Every function here is pure: same inputs, same output, no clock, no I/O.
package aggregate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/miloosorio186/dashboard-tech/internal/models"
)

// TopCategories is the number of entries the category histogram keeps.
const TopCategories = 5

// CategoryCount is one histogram bucket: a category label and how many
// products carry it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SalesPoint is one chart sample projected from a cart.
type SalesPoint struct {
	Label           string  `json:"label"`
	Total           float64 `json:"total"`
	DiscountedTotal float64 `json:"discountedTotal"`
}

// FilterUsers keeps the users whose first name, last name or company title
// contains query, case-insensitively. An empty query returns the input
// unchanged. Relative order is always preserved.
func FilterUsers(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), q) ||
			strings.Contains(strings.ToLower(u.LastName), q) ||
			strings.Contains(strings.ToLower(u.Company.Title), q) {
			out = append(out, u)
		}
	}
	return out
}

// FilterProducts keeps the products whose title or category contains query,
// case-insensitively. An empty query returns the input unchanged.
func FilterProducts(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterCarts keeps the carts whose id, rendered as decimal text, contains
// query. The match is textual, not numeric: query "1" matches ids 1, 10, 21.
func FilterCarts(carts []models.Cart, query string) []models.Cart {
	if query == "" {
		return carts
	}
	out := make([]models.Cart, 0, len(carts))
	for _, c := range carts {
		if strings.Contains(strconv.Itoa(c.ID), query) {
			out = append(out, c)
		}
	}
	return out
}

// CategoryHistogram groups products by category label and returns the
// TopCategories most frequent ones, ordered by count descending. Ties keep
// the order in which the categories were first encountered.
func CategoryHistogram(products []models.Product) []CategoryCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryCount{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > TopCategories {
		out = out[:TopCategories]
	}
	return out
}

// RevenueTotal sums the discounted totals over the given carts.
func RevenueTotal(carts []models.Cart) float64 {
	var total float64
	for _, c := range carts {
		total += c.DiscountedTotal
	}
	return total
}

// SalesSeries projects the first n carts, in collection order, into chart
// samples. Fewer than n carts yields all of them.
func SalesSeries(carts []models.Cart, n int) []SalesPoint {
	if n > len(carts) {
		n = len(carts)
	}
	if n < 0 {
		n = 0
	}
	out := make([]SalesPoint, 0, n)
	for _, c := range carts[:n] {
		out = append(out, SalesPoint{
			Label:           "#" + strconv.Itoa(c.ID),
			Total:           c.Total,
			DiscountedTotal: c.DiscountedTotal,
		})
	}
	return out
}

// TotalStock sums the stock counts over the given products.
func TotalStock(products []models.Product) int {
	var total int
	for _, p := range products {
		total += p.Stock
	}
	return total
}

// AverageRating returns the mean rating over the given products, or 0 for an
// empty collection.
func AverageRating(products []models.Product) float64 {
	if len(products) == 0 {
		return 0
	}
	var sum float64
	for _, p := range products {
		sum += p.Rating
	}
	return sum / float64(len(products))
}
