package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildDetails(t *testing.T) {
	t.Parallel()

	details, total := BuildDetails([]DetailInput{
		{ProductId: 1, Quantity: 3, Price: price("5.00")},
		{ProductId: 2, Quantity: 3, Price: price("0.333")},
	})

	assert.Len(t, details, 2)
	assert.True(t, decimal.RequireFromString("15").Equal(details[0].Subtotal))
	assert.True(t, decimal.RequireFromString("0.33").Equal(details[1].Price))
	assert.True(t, decimal.RequireFromString("0.99").Equal(details[1].Subtotal))
	assert.True(t, decimal.RequireFromString("15.99").Equal(total))
	assert.Equal(t, 2, details[1].ProductId)
	assert.Equal(t, 3, details[1].Quantity)
}

func TestBuildDetails_SubtotalMatchesStoredPrice(t *testing.T) {
	t.Parallel()

	details, total := BuildDetails([]DetailInput{
		{ProductId: 1, Quantity: 3, Price: price("1.005")},
	})

	assert.Equal(t, "1.01", details[0].Price.StringFixed(2))
	assert.Equal(t, "3.03", details[0].Subtotal.StringFixed(2))
	assert.True(t, details[0].Subtotal.Equal(Subtotal(details[0].Quantity, details[0].Price)))
	assert.Equal(t, "3.03", total.StringFixed(2))
}

func TestSubtotal_RoundsToCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.67", Subtotal(1, decimal.RequireFromString("0.665")).StringFixed(2))
	assert.Equal(t, "3600.00", Subtotal(720, decimal.RequireFromString("5")).StringFixed(2))
}

func TestQuantitiesByProduct(t *testing.T) {
	t.Parallel()

	quantities := QuantitiesByProduct([]PurchaseDetail{
		{ProductId: 1, Quantity: 2},
		{ProductId: 2, Quantity: 1},
		{ProductId: 1, Quantity: 4},
	})

	assert.Equal(t, map[int]int{1: 6, 2: 1}, quantities)
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, Status("SHIPPED").IsTerminal())
}
