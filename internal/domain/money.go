package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// VND is the storefront's display currency. The backend sends bare amounts,
// all of them in Vietnamese dong.
var VND = currency.MustParseISO("VND")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: VND}
}

func (m Money) Mul(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency.String()
}
