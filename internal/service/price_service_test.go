package service

import (
	"context"
	"testing"

	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/internal/core/ports/mocks"
	"lnurl-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func usdPricePoints(base int64, offset int) []domain.PricePoint {
	return []domain.PricePoint{
		{Timestamp: 1700000000, Price: &domain.Price{Base: base, Offset: offset, CurrencyUnit: "USDCENT"}},
	}
}

func TestPriceService_ToMillisats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewPriceService(ledger, zerolog.Nop())

	// rate = 50000 / 10^4 / 100 = 0.05 USD per sat
	ledger.EXPECT().
		BtcPriceList(gomock.Any(), gomock.Any(), ports.PriceRangeOneDay).
		Return(usdPricePoints(50_000, 4), nil)

	msat, err := svc.ToMillisats(context.Background(), ports.ClientOrigin{}, 10.0, "USD")
	require.NoError(t, err)

	// 10 USD / 0.05 = 200 sats
	assert.Equal(t, int64(200_000), msat)
}

func TestPriceService_ToMillisats_RoundsToWholeSats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewPriceService(ledger, zerolog.Nop())

	// rate = 0.03 USD per sat; 1 USD -> 33.33 sats -> rounds to 33
	ledger.EXPECT().
		BtcPriceList(gomock.Any(), gomock.Any(), ports.PriceRangeOneDay).
		Return(usdPricePoints(30_000, 4), nil)

	msat, err := svc.ToMillisats(context.Background(), ports.ClientOrigin{}, 1.0, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(33_000), msat)
	assert.Zero(t, msat%domain.MsatsPerSat)
}

func TestPriceService_ToMillisats_UsesLatestPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewPriceService(ledger, zerolog.Nop())

	points := []domain.PricePoint{
		{Timestamp: 1700000000, Price: &domain.Price{Base: 10_000, Offset: 4}},
		{Timestamp: 1700000600, Price: &domain.Price{Base: 50_000, Offset: 4}},
	}
	ledger.EXPECT().
		BtcPriceList(gomock.Any(), gomock.Any(), ports.PriceRangeOneDay).
		Return(points, nil)

	msat, err := svc.ToMillisats(context.Background(), ports.ClientOrigin{}, 10.0, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(200_000), msat, "should use the newest price point")
}

func TestPriceService_ToMillisats_BaseCurrencyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewPriceService(ledger, zerolog.Nop())

	// No ledger call expected.
	_, err := svc.ToMillisats(context.Background(), ports.ClientOrigin{}, 10.0, "BTC")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRICE_001", appErr.Code)
}

func TestPriceService_ToMillisats_EmptySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewPriceService(ledger, zerolog.Nop())

	ledger.EXPECT().
		BtcPriceList(gomock.Any(), gomock.Any(), ports.PriceRangeOneDay).
		Return(nil, nil)

	_, err := svc.ToMillisats(context.Background(), ports.ClientOrigin{}, 10.0, "USD")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRICE_002", appErr.Code)
}

func TestPriceService_ToMillisats_LatestPointWithoutPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewPriceService(ledger, zerolog.Nop())

	points := []domain.PricePoint{{Timestamp: 1700000000, Price: nil}}
	ledger.EXPECT().
		BtcPriceList(gomock.Any(), gomock.Any(), ports.PriceRangeOneDay).
		Return(points, nil)

	_, err := svc.ToMillisats(context.Background(), ports.ClientOrigin{}, 10.0, "USD")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRICE_002", appErr.Code)
}

func TestPriceService_ToMillisats_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewPriceService(ledger, zerolog.Nop())

	ledger.EXPECT().
		BtcPriceList(gomock.Any(), gomock.Any(), ports.PriceRangeOneDay).
		Return(nil, apperror.ErrLedgerUnreachable(context.DeadlineExceeded))

	_, err := svc.ToMillisats(context.Background(), ports.ClientOrigin{}, 10.0, "USD")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LEDGER_001", appErr.Code)
}
