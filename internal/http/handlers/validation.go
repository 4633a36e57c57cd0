package handlers

import "fmt"

// maxQuantityDelta bounds a single quantity adjustment from a client.
const maxQuantityDelta = 1000

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validatePriceRange(p PriceRangeRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Min == nil {
		errs = append(errs, ValidationError{Field: "Min", Description: "Min is required"})
	} else if *p.Min < 0 {
		errs = append(errs, ValidationError{Field: "Min", Description: "Min cannot be negative"})
	}
	if p.Max == nil {
		errs = append(errs, ValidationError{Field: "Max", Description: "Max is required"})
	} else if *p.Max < 0 {
		errs = append(errs, ValidationError{Field: "Max", Description: "Max cannot be negative"})
	}
	return errs
}

func validateAddToCart(p AddToCartRequest) []ValidationError {
	errs := []ValidationError{}
	if p.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductID", Description: "ProductID must be greater than zero"})
	}
	return errs
}

func validateQuantityAdjustment(p QuantityAdjustmentRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Delta > maxQuantityDelta || p.Delta < -maxQuantityDelta {
		errs = append(errs, ValidationError{
			Field:       "Delta",
			Description: fmt.Sprintf("Delta must be between %d and %d", -maxQuantityDelta, maxQuantityDelta),
		})
	}
	return errs
}
