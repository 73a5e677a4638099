// Package validation checks the decoded collections at the gateway boundary.
// The remote payloads are untyped at the wire level; anything that violates
// the record invariants is rejected there instead of flowing inward.
package validation

import (
	"fmt"

	"github.com/miloosorio186/dashboard-tech/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsers checks a fetched user collection: ids must be positive and
// unique within the collection.
func ValidateUsers(users []models.User) []ValidationError {
	var errors []ValidationError
	seen := make(map[int]bool, len(users))

	for i, u := range users {
		if u.ID <= 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("users[%d].id", i), Message: "id must be positive", Value: u.ID})
			continue
		}
		if seen[u.ID] {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("users[%d].id", i), Message: "duplicate id", Value: u.ID})
		}
		seen[u.ID] = true
	}
	return errors
}

// ValidateProducts checks a fetched product collection: positive unique ids,
// non-negative price and stock, rating within 0-5.
func ValidateProducts(products []models.Product) []ValidationError {
	var errors []ValidationError
	seen := make(map[int]bool, len(products))

	for i, p := range products {
		if p.ID <= 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("products[%d].id", i), Message: "id must be positive", Value: p.ID})
		} else if seen[p.ID] {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("products[%d].id", i), Message: "duplicate id", Value: p.ID})
		} else {
			seen[p.ID] = true
		}

		if p.Price < 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("products[%d].price", i), Message: "price must not be negative", Value: p.Price})
		}
		if p.Rating < 0 || p.Rating > 5 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("products[%d].rating", i), Message: "rating must be within 0-5", Value: p.Rating})
		}
		if p.Stock < 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("products[%d].stock", i), Message: "stock must not be negative", Value: p.Stock})
		}
	}
	return errors
}

// ValidateCarts checks a fetched cart collection: positive unique ids,
// non-negative totals, discounted total not exceeding the regular total.
func ValidateCarts(carts []models.Cart) []ValidationError {
	var errors []ValidationError
	seen := make(map[int]bool, len(carts))

	for i, c := range carts {
		if c.ID <= 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("carts[%d].id", i), Message: "id must be positive", Value: c.ID})
		} else if seen[c.ID] {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("carts[%d].id", i), Message: "duplicate id", Value: c.ID})
		} else {
			seen[c.ID] = true
		}

		if c.Total < 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("carts[%d].total", i), Message: "total must not be negative", Value: c.Total})
		}
		if c.DiscountedTotal < 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("carts[%d].discountedTotal", i), Message: "discounted total must not be negative", Value: c.DiscountedTotal})
		}
		if c.DiscountedTotal > c.Total {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("carts[%d].discountedTotal", i), Message: "discounted total exceeds total", Value: c.DiscountedTotal})
		}
	}
	return errors
}

// ValidatePosts checks a fetched post collection: positive unique ids.
func ValidatePosts(posts []models.Post) []ValidationError {
	var errors []ValidationError
	seen := make(map[int]bool, len(posts))

	for i, p := range posts {
		if p.ID <= 0 {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("posts[%d].id", i), Message: "id must be positive", Value: p.ID})
			continue
		}
		if seen[p.ID] {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("posts[%d].id", i), Message: "duplicate id", Value: p.ID})
		}
		seen[p.ID] = true
	}
	return errors
}

// First returns the first error from a validation result, or nil.
func First(errors []ValidationError) error {
	if len(errors) == 0 {
		return nil
	}
	return errors[0]
}
