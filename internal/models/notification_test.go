package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNotification_Validate(t *testing.T) {
	inbound := DirectionInbound
	bogus := "Sideways"

	tests := []struct {
		name         string
		notification Notification
		wantErr      bool
	}{
		{
			name: "valid forwarded notification",
			notification: Notification{
				Source:  "Inter",
				Message: "Compra aprovada R$ 45,90 no Ifood",
				Amount:  decimal.Zero,
			},
			wantErr: false,
		},
		{
			name: "valid manual entry with direction",
			notification: Notification{
				Source:    SourceManual,
				Message:   "Recebido manual referente a salário",
				Amount:    decimal.NewFromFloat(1500.00),
				Direction: &inbound,
			},
			wantErr: false,
		},
		{
			name: "empty message",
			notification: Notification{
				Source:  "Inter",
				Message: "   ",
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			notification: Notification{
				Source:  "Inter",
				Message: "Compra aprovada",
				Amount:  decimal.NewFromFloat(-10.00),
			},
			wantErr: true,
		},
		{
			name: "unrecognized direction label",
			notification: Notification{
				Source:    "Inter",
				Message:   "Compra aprovada",
				Direction: &bogus,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.notification.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotification_StoredCategory(t *testing.T) {
	category := "Lazer"
	sentinel := CategoryNullSentinel
	empty := ""

	tests := []struct {
		name     string
		category *string
		want     string
		wantOK   bool
	}{
		{"nil category", nil, "", false},
		{"null sentinel", &sentinel, "", false},
		{"empty string", &empty, "", false},
		{"real category", &category, "Lazer", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Notification{Category: tt.category}
			got, ok := n.StoredCategory()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotification_StoredDirection(t *testing.T) {
	inbound := DirectionInbound
	invalid := "credit"

	n := Notification{}
	_, ok := n.StoredDirection()
	assert.False(t, ok)

	n.Direction = &invalid
	_, ok = n.StoredDirection()
	assert.False(t, ok, "unrecognized labels are treated as absent")

	n.Direction = &inbound
	got, ok := n.StoredDirection()
	assert.True(t, ok)
	assert.Equal(t, DirectionInbound, got)
}

func TestNotification_StoredAmount(t *testing.T) {
	n := Notification{Amount: decimal.Zero}
	_, ok := n.StoredAmount()
	assert.False(t, ok, "zero means not yet known")

	n.Amount = decimal.NewFromFloat(45.90)
	got, ok := n.StoredAmount()
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromFloat(45.90)))
}

func TestRule_Matches(t *testing.T) {
	rule := Rule{Keyword: "uber", Category: "Transporte"}

	assert.True(t, rule.Matches("Uber Trip"))
	assert.True(t, rule.Matches("UBER * PENDING"))
	assert.False(t, rule.Matches("Padaria Estrela"))
	assert.False(t, rule.Matches(""))
}

func TestIsValidDirection(t *testing.T) {
	assert.True(t, IsValidDirection(DirectionInbound))
	assert.True(t, IsValidDirection(DirectionOutbound))
	assert.False(t, IsValidDirection("entrada"))
	assert.False(t, IsValidDirection(""))
}
