package domain_test

import (
	"testing"

	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "integer is padded", in: "5", want: "5.00"},
		{name: "two digits unchanged", in: "12.34", want: "12.34"},
		{name: "half rounds up", in: "0.125", want: "0.13"},
		{name: "below half rounds down", in: "0.124", want: "0.12"},
		{name: "half on even digit rounds up", in: "2.345", want: "2.35"},
		{name: "negative half rounds away from zero", in: "-0.125", want: "-0.13"},
		{name: "long fraction", in: "99.99999", want: "100.00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := domain.RoundMoney(decimal.MustParse(test.in))
			require.NoError(t, err)
			assert.Equal(t, test.want, got.String())
		})
	}
}

func TestLineSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
	}{
		{name: "whole price", price: "100.00", quantity: 3, want: "300.00"},
		{name: "cents", price: "19.99", quantity: 7, want: "139.93"},
		{name: "single unit", price: "0.01", quantity: 1, want: "0.01"},
		{name: "unpadded price", price: "3.5", quantity: 2, want: "7.00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := domain.LineSubtotal(decimal.MustParse(test.price), test.quantity)
			require.NoError(t, err)
			assert.Equal(t, test.want, got.String())
		})
	}
}
