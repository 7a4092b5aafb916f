package domain

import "lnurl-gateway/pkg/apperror"

// WithdrawAction is the dispatch result for the shared withdraw endpoint. The
// two request shapes are mutually exclusive by construction: a request is
// either a challenge issuance ({p,c} and no payment request) or a redemption
// (payment request present).
type WithdrawAction interface {
	withdrawAction()
}

// WithdrawChallengeParams carries the opaque NFC tag authentication material.
// The ledger owns all cryptographic verification of p and c; they pass through
// verbatim.
type WithdrawChallengeParams struct {
	P string
	C string
}

func (WithdrawChallengeParams) withdrawAction() {}

// WithdrawRedeemParams carries a redemption: the challenge nonce k1 and the
// invoice to pay. k1 is a ledger-issued bearer credential; single-use and
// expiry enforcement stay with the ledger.
type WithdrawRedeemParams struct {
	K1             string
	PaymentRequest string
}

func (WithdrawRedeemParams) withdrawAction() {}

// ParseWithdrawAction classifies a withdraw request by parameter shape.
// {p,c} without pr selects challenge issuance; pr present (with or without
// p/c) selects redemption; anything else is ambiguous.
func ParseWithdrawAction(p, c, pr, k1 string) (WithdrawAction, error) {
	switch {
	case p != "" && c != "" && pr == "":
		return WithdrawChallengeParams{P: p, C: c}, nil
	case pr != "":
		return WithdrawRedeemParams{K1: k1, PaymentRequest: pr}, nil
	default:
		return nil, apperror.ErrAmbiguousWithdrawRequest()
	}
}

// WithdrawChallenge is a ledger-issued withdraw authorization. It is consumed
// exactly once; this layer never assumes it can redeem twice.
type WithdrawChallenge struct {
	Tag                string
	Callback           string
	K1                 string
	MinWithdrawable    int64
	MaxWithdrawable    int64
	DefaultDescription string
}
