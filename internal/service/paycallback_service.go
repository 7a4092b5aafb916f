package service

import (
	"context"
	"crypto/sha256"
	"strconv"
	"time"

	"lnurl-gateway/config"
	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// zapCorrelationTTL bounds how long a zap event is kept waiting for its
// invoice to settle.
const zapCorrelationTTL = 1440 * time.Second

// PayCallbackServiceImpl implements ports.PayCallbackService, the second phase
// of LNURL-pay: turn an amount into a bolt11 invoice committed to the right
// description.
type PayCallbackServiceImpl struct {
	ledger   ports.LedgerClient
	zapStore ports.CorrelationStore
	cfg      *config.Config
	log      zerolog.Logger
}

// NewPayCallbackService creates a new PayCallbackServiceImpl. zapStore may be
// nil, which disables zap correlation writes.
func NewPayCallbackService(ledger ports.LedgerClient, zapStore ports.CorrelationStore, cfg *config.Config, log zerolog.Logger) *PayCallbackServiceImpl {
	return &PayCallbackServiceImpl{
		ledger:   ledger,
		zapStore: zapStore,
		cfg:      cfg,
		log:      log,
	}
}

// CreateInvoice validates the millisat amount, resolves the recipient wallet
// and asks the ledger for an invoice. Description priority: zap event hash
// when nostr is enabled and a zap is attached, then comment memo, then the
// canonical metadata hash.
func (s *PayCallbackServiceImpl) CreateInvoice(ctx context.Context, origin ports.ClientOrigin, params ports.InvoiceParams) (*domain.Invoice, error) {
	if params.AmountMsat == "" || params.Username == "" {
		return nil, apperror.Validation("Invalid request")
	}

	amountMsat, err := strconv.ParseInt(params.AmountMsat, 10, 64)
	if err != nil || amountMsat <= 0 || amountMsat%domain.MsatsPerSat != 0 {
		return nil, apperror.ErrSubSatUnsupported()
	}
	amountSats := amountMsat / domain.MsatsPerSat

	walletID, err := s.ledger.RecipientWalletID(ctx, origin, params.Username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", params.Username).Msg("wallet lookup failed")
		return nil, apperror.ErrUnknownIdentifier(params.Username)
	}
	if walletID == "" {
		return nil, apperror.ErrUnknownIdentifier(params.Username)
	}

	nostrEnabled := s.cfg.Nostr.Enabled()
	metadata := domain.PayerMetadata(params.Username, s.cfg.Pay.HostDomain)

	var description domain.InvoiceDescription
	switch {
	case nostrEnabled && params.NostrEvent != "":
		description = domain.DescriptionHash(sha256.Sum256([]byte(params.NostrEvent)))
	case params.Comment != "":
		description = domain.DescriptionMemo(params.Comment)
	default:
		description = domain.DescriptionHash(metadata.CommitmentHash())
	}

	invoice, err := s.ledger.CreateInvoice(ctx, origin, ports.LedgerInvoiceRequest{
		WalletID:    walletID,
		AmountSats:  amountSats,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	// Correlation write is best-effort: the payer already has an invoice by
	// the time this can fail.
	if nostrEnabled && params.NostrEvent != "" && s.zapStore != nil {
		event := []byte(params.NostrEvent)
		paymentHash := invoice.PaymentHash
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.zapStore.Set(ctx, paymentHash, event, zapCorrelationTTL); err != nil {
				s.log.Warn().Err(err).Str("payment_hash", paymentHash).Msg("failed to store zap correlation")
			}
		}()
	}

	return invoice, nil
}
