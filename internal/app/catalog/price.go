package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const minorPerUnit = 100

var maxUnits = decimal.NewFromInt(math.MaxInt64 / minorPerUnit)

// Currency pairs an ISO 4217 code with the prefix shown to customers.
type Currency struct {
	Code   string
	Symbol string
}

var KES = Currency{Code: "KES", Symbol: "Ksh"}

var ErrInvalidPrice = errors.New("invalid price")

// Price is an amount held in minor units of its currency.
type Price struct {
	Currency Currency
	Minor    int64
}

// ParsePrice reads display text such as "Ksh 20". The symbol prefix is
// mandatory and the amount must be a non-negative whole number of units.
func ParsePrice(text string, cur Currency) (Price, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(text), cur.Symbol)
	if !ok {
		return Price{}, fmt.Errorf("%w: %q does not start with %q", ErrInvalidPrice, text, cur.Symbol)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rest))
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q: %v", ErrInvalidPrice, text, err)
	}
	if amount.IsNegative() {
		return Price{}, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, text)
	}
	if !amount.IsInteger() {
		return Price{}, fmt.Errorf("%w: %q is not a whole amount", ErrInvalidPrice, text)
	}
	if amount.GreaterThan(maxUnits) {
		return Price{}, fmt.Errorf("%w: %q is too large", ErrInvalidPrice, text)
	}

	return Price{
		Currency: cur,
		Minor:    amount.Mul(decimal.NewFromInt(minorPerUnit)).IntPart(),
	}, nil
}

// Units is the amount in whole currency units, as the payment gateway expects it.
func (p Price) Units() int64 {
	return p.Minor / minorPerUnit
}

func (p Price) IsZero() bool {
	return p.Minor == 0
}

func (p Price) String() string {
	return p.Currency.Symbol + " " + strconv.FormatInt(p.Units(), 10)
}
