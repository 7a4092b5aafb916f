package domain

import "math"

// Price is an exchange-rate quote with an explicit fixed-point encoding:
// actual rate = Base / 10^Offset. The quote is cents-denominated, so a further
// /100 yields the whole-major-unit rate.
type Price struct {
	Base         int64
	Offset       int
	CurrencyUnit string
}

// PricePoint is one sample of the ledger's price series.
type PricePoint struct {
	Timestamp int64
	Price     *Price
}

// Rate returns the price per whole major unit of fiat currency.
func (p Price) Rate() float64 {
	return float64(p.Base) / math.Pow10(p.Offset) / 100
}
