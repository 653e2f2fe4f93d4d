// Package currency validates ISO 4217 currency codes.
package currency

import (
	"strings"

	"golang.org/x/text/currency"
)

// Valid reports whether code is a well-formed ISO 4217 currency code.
func Valid(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}

// Normalize returns the canonical upper-case form of a currency code.
// It does not validate the code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
