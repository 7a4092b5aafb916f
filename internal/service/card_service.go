package service

import (
	"context"
	"strings"

	"lnurl-gateway/config"
	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// CardServiceImpl implements ports.CardService. All card state lives in the
// ledger; this layer validates inputs and forwards.
type CardServiceImpl struct {
	ledger ports.LedgerClient
	cfg    *config.Config
	log    zerolog.Logger
}

// NewCardService creates a new CardServiceImpl.
func NewCardService(ledger ports.LedgerClient, cfg *config.Config, log zerolog.Logger) *CardServiceImpl {
	return &CardServiceImpl{ledger: ledger, cfg: cfg, log: log}
}

// Pair exchanges a one-time pairing code for card key material. The OTP is
// single-use on the ledger side; replays come back as PairingRejected.
func (s *CardServiceImpl) Pair(ctx context.Context, origin ports.ClientOrigin, otp string) (*domain.BoltCardKeys, error) {
	if strings.TrimSpace(otp) == "" {
		return nil, apperror.ErrInvalidOtp()
	}

	keys, err := s.ledger.PairBoltCard(ctx, origin, otp, s.cfg.Pay.ServerURL)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("card_name", keys.CardName).Msg("bolt card paired")
	return keys, nil
}

// IssueChallenge asks the ledger for a withdraw challenge. p and c are the
// card's NFC tag material, passed through opaquely.
func (s *CardServiceImpl) IssueChallenge(ctx context.Context, origin ports.ClientOrigin, cardID string, params domain.WithdrawChallengeParams) (*domain.WithdrawChallenge, error) {
	if strings.TrimSpace(cardID) == "" {
		return nil, apperror.ErrInvalidCardReference()
	}

	challenge, err := s.ledger.RequestWithdrawChallenge(ctx, origin, cardID, params, s.cfg.Pay.ServerURL)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("card_id", cardID).Msg("withdraw challenge issued")
	return challenge, nil
}

// Redeem submits a payment request against a previously issued challenge
// nonce. Single-use and expiry enforcement belong to the ledger.
func (s *CardServiceImpl) Redeem(ctx context.Context, origin ports.ClientOrigin, params domain.WithdrawRedeemParams) (string, error) {
	if strings.TrimSpace(params.K1) == "" {
		return "", apperror.ErrMissingChallengeNonce()
	}

	status, err := s.ledger.RedeemWithdrawChallenge(ctx, origin, params)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("status", status).Msg("withdraw challenge redeemed")
	return status, nil
}
