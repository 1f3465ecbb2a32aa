package kernel

import (
	"fmt"
	"strings"

	"evaluation/internal/pkg/errs"
	"evaluation/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a Money value that was
// not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney constructor")

// Money represents the monetary value of an award: a positive amount together
// with its ISO 4217 currency code. Money is an immutable value object; the zero
// value is invalid.
type Money struct { //nolint:recvcheck //using for validation
	amount   float64
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be greater than zero and the
// currency must be a non-empty code; the code is normalized to upper case.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Money value was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the upper-cased currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String formats the value as "amount currency" for logs and messages.
func (m Money) String() string {
	return fmt.Sprintf("%v %s", m.amount, m.currency)
}
