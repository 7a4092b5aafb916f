package service

import (
	"context"
	"math"

	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// PriceServiceImpl implements ports.PriceConverter against the ledger's
// btcPriceList series.
type PriceServiceImpl struct {
	ledger ports.LedgerClient
	log    zerolog.Logger
}

// NewPriceService creates a new PriceServiceImpl.
func NewPriceService(ledger ports.LedgerClient, log zerolog.Logger) *PriceServiceImpl {
	return &PriceServiceImpl{ledger: ledger, log: log}
}

// ToMillisats converts a fiat amount into an invoiceable millisatoshi amount
// using the most recent price point of the ONE_DAY series. The result is a
// whole number of sats times 1000; rounding happens at the sat level.
func (s *PriceServiceImpl) ToMillisats(ctx context.Context, origin ports.ClientOrigin, amountMajorUnits float64, fiatCurrency string) (int64, error) {
	if fiatCurrency == domain.BaseCurrency {
		return 0, apperror.ErrCurrencyUnsupported(fiatCurrency)
	}

	points, err := s.ledger.BtcPriceList(ctx, origin, ports.PriceRangeOneDay)
	if err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, apperror.ErrQuoteUnavailable()
	}

	latest := points[len(points)-1]
	if latest.Price == nil {
		return 0, apperror.ErrQuoteUnavailable()
	}

	rate := latest.Price.Rate()
	sats := int64(math.Round(amountMajorUnits / rate))

	s.log.Debug().
		Float64("amount", amountMajorUnits).
		Str("currency", fiatCurrency).
		Float64("rate", rate).
		Int64("sats", sats).
		Msg("converted fiat amount")

	return sats * domain.MsatsPerSat, nil
}
