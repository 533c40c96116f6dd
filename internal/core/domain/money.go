package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// MoneyScale is the number of fraction digits kept for prices and totals.
const MoneyScale = 2

var halfCent = decimal.MustNew(5, MoneyScale+1)

// RoundMoney rounds d half away from zero to MoneyScale fraction digits and
// pads the result so that 5 becomes 5.00.
func RoundMoney(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Scale() <= MoneyScale {
		return d.Pad(MoneyScale), nil
	}
	half := halfCent
	if d.IsNeg() {
		half = half.Neg()
	}
	r, err := d.Add(half)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("round %s: %w", d, err)
	}
	return r.Trunc(MoneyScale).Pad(MoneyScale), nil
}

// LineSubtotal returns unitPrice * quantity rounded to MoneyScale.
func LineSubtotal(unitPrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("quantity %d: %w", quantity, err)
	}
	raw, err := unitPrice.Mul(q)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	return RoundMoney(raw)
}
