package service

import (
	"context"
	"fmt"
	"strconv"

	"lnurl-gateway/config"
	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// PayRequestServiceImpl implements ports.PayRequestService, the first phase of
// LNURL-pay: resolve an identifier to callback, bounds and metadata.
type PayRequestServiceImpl struct {
	ledger    ports.LedgerClient
	converter ports.PriceConverter
	cfg       *config.Config
	log       zerolog.Logger
}

// NewPayRequestService creates a new PayRequestServiceImpl.
func NewPayRequestService(ledger ports.LedgerClient, converter ports.PriceConverter, cfg *config.Config, log zerolog.Logger) *PayRequestServiceImpl {
	return &PayRequestServiceImpl{
		ledger:    ledger,
		converter: converter,
		cfg:       cfg,
		log:       log,
	}
}

// Resolve builds the pay-request descriptor for username. An optional
// amount+currency pair pins minSendable == maxSendable to the converted
// value; a bare integer amount is read as sats. A failed conversion falls
// back to the unpinned wide range rather than failing the request.
func (s *PayRequestServiceImpl) Resolve(ctx context.Context, origin ports.ClientOrigin, params ports.ResolveParams) (*domain.PayRequestDescriptor, error) {
	var pinnedMsat int64

	switch {
	case params.Amount != "" && params.Currency != "" && params.Currency != domain.BaseCurrency:
		amount, err := strconv.ParseFloat(params.Amount, 64)
		if err != nil {
			s.log.Debug().Str("amount", params.Amount).Msg("unparseable fiat amount, leaving range unpinned")
			break
		}
		msat, err := s.converter.ToMillisats(ctx, origin, amount, params.Currency)
		if err != nil {
			s.log.Warn().Err(err).Str("currency", params.Currency).Msg("price conversion failed, leaving range unpinned")
			break
		}
		pinnedMsat = msat

	case params.Amount != "":
		sats, err := strconv.ParseInt(params.Amount, 10, 64)
		if err == nil {
			pinnedMsat = sats * domain.MsatsPerSat
		}
	}

	walletID, err := s.ledger.RecipientWalletID(ctx, origin, params.Username)
	if err != nil {
		// An unreachable or unhappy ledger reads the same as an unknown
		// user to the payer wallet.
		s.log.Warn().Err(err).Str("username", params.Username).Msg("wallet lookup failed")
		return nil, apperror.ErrUnknownIdentifier(params.Username)
	}
	if walletID == "" {
		return nil, apperror.ErrUnknownIdentifier(params.Username)
	}

	descriptor := &domain.PayRequestDescriptor{
		Username:        params.Username,
		Callback:        fmt.Sprintf("%s/lnurlp/%s/callback", s.cfg.Pay.ServerURL, params.Username),
		MinSendableMsat: domain.DefaultMinSendableMsat,
		MaxSendableMsat: domain.DefaultMaxSendableMsat,
		Metadata:        domain.PayerMetadata(params.Username, s.cfg.Pay.HostDomain),
		NostrEnabled:    s.cfg.Nostr.Enabled(),
		NostrPubkey:     s.cfg.Nostr.Pubkey,
	}
	if pinnedMsat != 0 {
		descriptor.MinSendableMsat = pinnedMsat
		descriptor.MaxSendableMsat = pinnedMsat
	}
	return descriptor, nil
}
