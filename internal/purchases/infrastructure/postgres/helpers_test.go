package postgres

import "github.com/shopspring/decimal"

// decimalArg matches a decimal query argument by value rather than representation.
type decimalArg string

func (a decimalArg) Match(v any) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(decimal.RequireFromString(string(a)))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
