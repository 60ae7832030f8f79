package exchange

import "math"

// ConvertQuery holds the query parameters of a conversion. A missing amount
// converts one unit.
type ConvertQuery struct {
	From   string   `query:"from" validate:"required"`
	To     string   `query:"to" validate:"required"`
	Amount *float64 `query:"amount"`
}

func (q *ConvertQuery) amount() float64 {
	if q.Amount == nil {
		return 1.0
	}
	return *q.Amount
}

// finiteAmount rejects NaN and the infinities, which cannot be stored or
// rendered as JSON.
func (q *ConvertQuery) finiteAmount() bool {
	a := q.amount()
	return !math.IsNaN(a) && !math.IsInf(a, 0)
}
