// Package expense defines the boundary with the external expense module.
//
// The spending plan backend does not own expenses. It only consumes their
// lifecycle events, which carry everything the projection needs: the
// expense identity, its current category, and its financial fields.
package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sixjars/backend/internal/eventbus"
)

// Event types published by the expense module.
const (
	Created eventbus.Type = "expense.created"
	Updated eventbus.Type = "expense.updated"
	Deleted eventbus.Type = "expense.deleted"
)

// PaymentType is how an expense was paid.
type PaymentType string

const (
	PaymentCash PaymentType = "Cash"
	PaymentCard PaymentType = "Card"
)

var ErrInvalidPaymentType = errors.New("payment type must be one of: Cash, Card")

// ParsePaymentType parses a payment type, ignoring case.
func ParsePaymentType(value string) (PaymentType, error) {
	for _, t := range []PaymentType{PaymentCash, PaymentCard} {
		if strings.EqualFold(value, string(t)) {
			return t, nil
		}
	}

	return "", ErrInvalidPaymentType
}

// Event is the payload of all three expense lifecycle events. The category
// is the expense's category at the time the event was published and may
// differ from what the projection has recorded.
type Event struct {
	ExpenseID   uuid.UUID       `json:"expenseId"`
	AccountID   uuid.UUID       `json:"accountId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"expenseDate"`
	PaymentType PaymentType     `json:"paymentType"`
}

// Key returns the ordering key for the event. All events of one expense
// share a key so the bus delivers them sequentially.
func (e Event) Key() string {
	return e.ExpenseID.String()
}
