package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pawmart/storefront-go/internal/domain"
)

func item(price int64, quantity int) domain.CartItem {
	return domain.CartItem{
		Product:  domain.Product{Price: domain.NewMoney(decimal.NewFromInt(price))},
		Quantity: quantity,
	}
}

func TestCartTotals(t *testing.T) {
	tests := []struct {
		name       string
		items      []domain.CartItem
		wantItems  int
		wantAmount int64
	}{
		{
			name: "empty cart: both totals zero",
		},
		{
			name:       "single item",
			items:      []domain.CartItem{item(180000, 1)},
			wantItems:  1,
			wantAmount: 180000,
		},
		{
			name:       "quantity multiplies price",
			items:      []domain.CartItem{item(48000, 3)},
			wantItems:  3,
			wantAmount: 144000,
		},
		{
			name:       "mixed items sum",
			items:      []domain.CartItem{item(180000, 2), item(120000, 1), item(48000, 5)},
			wantItems:  8,
			wantAmount: 720000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.Cart{Items: tt.items}

			assert.Equal(t, tt.wantItems, cart.TotalItems())

			total := cart.TotalPrice()
			assert.True(t, total.Amount.Equal(decimal.NewFromInt(tt.wantAmount)),
				"want %d, got %s", tt.wantAmount, total.Amount)
			assert.Equal(t, domain.VND, total.Currency)
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	m := domain.NewMoney(decimal.NewFromInt(140000))

	assert.True(t, m.Mul(2).Amount.Equal(decimal.NewFromInt(280000)))
	assert.True(t, m.Add(m).Amount.Equal(decimal.NewFromInt(280000)))
	assert.Equal(t, "140000 VND", m.String())
}
