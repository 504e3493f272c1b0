package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ValidationMode int

const (
	// CreateMode requires every field.
	CreateMode ValidationMode = iota
	// UpdateMode accepts absent fields but holds present ones to the same rules.
	UpdateMode
)

var maxTotal = decimal.NewFromInt(MaxTotal)

// ValidatePurchase checks the payload structure and fails on the first violation.
func ValidatePurchase(payload PurchasePayload, mode ValidationMode) error {
	if mode == CreateMode {
		if payload.UserId == nil {
			return &ValidationError{Msg: "user_id is required"}
		}
		if payload.Status == nil || *payload.Status == "" {
			return &ValidationError{Msg: "status is required"}
		}
		if payload.Details == nil {
			return &ValidationError{Msg: "details is required"}
		}
	}

	if payload.UserId != nil && *payload.UserId <= 0 {
		return &ValidationError{Msg: "user_id must be a positive identifier"}
	}

	if payload.Status != nil && *payload.Status == "" {
		return &ValidationError{Msg: "status must not be empty"}
	}

	if payload.Details != nil {
		return validateDetails(payload.Details)
	}

	return nil
}

func validateDetails(details []DetailInput) error {
	if len(details) < 1 {
		return &ValidationError{Msg: "a purchase must contain at least 1 product"}
	}
	if len(details) > MaxItems {
		return &ValidationError{Msg: fmt.Sprintf("a purchase cannot contain more than %d products", MaxItems)}
	}

	for i, d := range details {
		if d.ProductId <= 0 {
			return &ValidationError{Msg: fmt.Sprintf("details[%d]: product_id is required", i)}
		}
		if d.Quantity <= 0 {
			return &ValidationError{Msg: fmt.Sprintf("details[%d]: quantity must be greater than 0", i)}
		}
		if d.Price == nil {
			return &ValidationError{Msg: fmt.Sprintf("details[%d]: price is required", i)}
		}
		if d.Price.IsNegative() {
			return &ValidationError{Msg: fmt.Sprintf("details[%d]: price must not be negative", i)}
		}
	}

	return nil
}

// CheckTotal enforces the purchase total ceiling.
func CheckTotal(total decimal.Decimal) error {
	if total.GreaterThan(maxTotal) {
		return &ValidationError{Msg: fmt.Sprintf("purchase total cannot exceed %d", MaxTotal)}
	}

	return nil
}
