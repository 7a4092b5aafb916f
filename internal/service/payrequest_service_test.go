package service

import (
	"context"
	"errors"
	"testing"

	"lnurl-gateway/config"
	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/internal/core/ports/mocks"
	"lnurl-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Pay: config.PayConfig{
			ServerURL:  "https://pay.example.com",
			HostDomain: "example.com",
		},
	}
}

func testConfigWithNostr() *config.Config {
	cfg := testConfig()
	cfg.Nostr.Pubkey = "npub-test-key"
	return cfg
}

type payRequestTestDeps struct {
	svc       *PayRequestServiceImpl
	ledger    *mocks.MockLedgerClient
	converter *mocks.MockPriceConverter
	ctrl      *gomock.Controller
}

func setupPayRequestService(t *testing.T, cfg *config.Config) *payRequestTestDeps {
	ctrl := gomock.NewController(t)
	d := &payRequestTestDeps{
		ledger:    mocks.NewMockLedgerClient(ctrl),
		converter: mocks.NewMockPriceConverter(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewPayRequestService(d.ledger, d.converter, cfg, zerolog.Nop())
	return d
}

func TestPayRequestService_Resolve_Unpinned(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("wallet-1", nil)

	descriptor, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{Username: "alice"})
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/lnurlp/alice/callback", descriptor.Callback)
	assert.Equal(t, int64(1_000), descriptor.MinSendableMsat)
	assert.Equal(t, int64(100_000_000_000), descriptor.MaxSendableMsat)
	assert.Equal(t, domain.PayerMetadata("alice", "example.com"), descriptor.Metadata)
	assert.False(t, descriptor.NostrEnabled)
	assert.Empty(t, descriptor.NostrPubkey)
}

func TestPayRequestService_Resolve_PinnedSats(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("wallet-1", nil)

	descriptor, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{
		Username: "alice",
		Amount:   "21",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(21_000), descriptor.MinSendableMsat)
	assert.Equal(t, int64(21_000), descriptor.MaxSendableMsat)
}

func TestPayRequestService_Resolve_PinnedFiat(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	d.converter.EXPECT().
		ToMillisats(gomock.Any(), gomock.Any(), 5.0, "USD").
		Return(int64(10_000_000), nil)
	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("wallet-1", nil)

	descriptor, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{
		Username: "alice",
		Amount:   "5",
		Currency: "USD",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10_000_000), descriptor.MinSendableMsat)
	assert.Equal(t, int64(10_000_000), descriptor.MaxSendableMsat)
}

func TestPayRequestService_Resolve_BtcCurrencyReadAsSats(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	// currency == "BTC" bypasses conversion; amount is sats.
	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("wallet-1", nil)

	descriptor, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{
		Username: "alice",
		Amount:   "42",
		Currency: "BTC",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42_000), descriptor.MinSendableMsat)
}

func TestPayRequestService_Resolve_ConversionFailureFallsBack(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	d.converter.EXPECT().
		ToMillisats(gomock.Any(), gomock.Any(), 5.0, "EUR").
		Return(int64(0), apperror.ErrQuoteUnavailable())
	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("wallet-1", nil)

	descriptor, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{
		Username: "alice",
		Amount:   "5",
		Currency: "EUR",
	})
	require.NoError(t, err)

	// Conversion trouble never fails the request, it just unpins the range.
	assert.Equal(t, int64(1_000), descriptor.MinSendableMsat)
	assert.Equal(t, int64(100_000_000_000), descriptor.MaxSendableMsat)
}

func TestPayRequestService_Resolve_NonIntegerSatsIgnored(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("wallet-1", nil)

	descriptor, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{
		Username: "alice",
		Amount:   "1.5",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), descriptor.MinSendableMsat)
}

func TestPayRequestService_Resolve_UnknownIdentifier(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "ghost").
		Return("", nil)

	_, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{Username: "ghost"})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_001", appErr.Code)
	assert.Equal(t, "Couldn't find user 'ghost'.", appErr.Reason)
}

func TestPayRequestService_Resolve_LedgerFailureReadsAsUnknown(t *testing.T) {
	d := setupPayRequestService(t, testConfig())
	defer d.ctrl.Finish()

	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("", errors.New("connection refused"))

	_, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{Username: "alice"})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_001", appErr.Code)
}

func TestPayRequestService_Resolve_NostrAdvertised(t *testing.T) {
	d := setupPayRequestService(t, testConfigWithNostr())
	defer d.ctrl.Finish()

	d.ledger.EXPECT().
		RecipientWalletID(gomock.Any(), gomock.Any(), "alice").
		Return("wallet-1", nil)

	descriptor, err := d.svc.Resolve(context.Background(), ports.ClientOrigin{}, ports.ResolveParams{Username: "alice"})
	require.NoError(t, err)
	assert.True(t, descriptor.NostrEnabled)
	assert.Equal(t, "npub-test-key", descriptor.NostrPubkey)
}
