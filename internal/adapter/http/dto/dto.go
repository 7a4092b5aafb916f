package dto

import "lnurl-gateway/internal/core/domain"

// PayRequestResponse is the LNURL-pay first-phase body. Metadata is the
// serialized JSON string whose hash the eventual invoice commits to. The
// nostr fields are emitted only when zap support is enabled.
type PayRequestResponse struct {
	Callback    string `json:"callback"`
	MinSendable int64  `json:"minSendable"`
	MaxSendable int64  `json:"maxSendable"`
	Metadata    string `json:"metadata"`
	Tag         string `json:"tag"`
	AllowsNostr bool   `json:"allowsNostr,omitempty"`
	NostrPubkey string `json:"nostrPubkey,omitempty"`
}

// ToPayRequestResponse maps a descriptor to the wire format.
func ToPayRequestResponse(d *domain.PayRequestDescriptor) PayRequestResponse {
	resp := PayRequestResponse{
		Callback:    d.Callback,
		MinSendable: d.MinSendableMsat,
		MaxSendable: d.MaxSendableMsat,
		Metadata:    d.Metadata.Serialize(),
		Tag:         domain.TagPayRequest,
	}
	if d.NostrEnabled {
		resp.AllowsNostr = true
		resp.NostrPubkey = d.NostrPubkey
	}
	return resp
}

// InvoiceResponse is the LNURL-pay second-phase body. Routes is always
// present and always empty.
type InvoiceResponse struct {
	Pr     string     `json:"pr"`
	Routes []struct{} `json:"routes"`
}

// ToInvoiceResponse maps an invoice to the wire format.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{Pr: inv.PaymentRequest, Routes: []struct{}{}}
}

// BoltCardResponse is the pairing body consumed by bolt card programmer apps.
// ID is fixed at "1"; programmers key cards by it but the ledger tracks card
// identity through the lnurlw base URL.
type BoltCardResponse struct {
	CardName        string `json:"card_name"`
	ID              string `json:"id"`
	K0              string `json:"k0"`
	K1              string `json:"k1"`
	K2              string `json:"k2"`
	K3              string `json:"k3"`
	K4              string `json:"k4"`
	LnurlwBase      string `json:"lnurlw_base"`
	ProtocolName    string `json:"protocol_name"`
	ProtocolVersion string `json:"protocol_version"`
}

// ToBoltCardResponse maps pairing key material to the wire format.
func ToBoltCardResponse(keys *domain.BoltCardKeys) BoltCardResponse {
	return BoltCardResponse{
		CardName:        keys.CardName,
		ID:              "1",
		K0:              keys.K0,
		K1:              keys.K1,
		K2:              keys.K2,
		K3:              keys.K3,
		K4:              keys.K4,
		LnurlwBase:      keys.LnurlwBase,
		ProtocolName:    keys.ProtocolName,
		ProtocolVersion: keys.ProtocolVersion,
	}
}

// WithdrawChallengeResponse is the LNURL-withdraw challenge body.
type WithdrawChallengeResponse struct {
	Tag                string `json:"tag"`
	Callback           string `json:"callback"`
	K1                 string `json:"k1"`
	MinWithdrawable    int64  `json:"minWithdrawable"`
	MaxWithdrawable    int64  `json:"maxWithdrawable"`
	DefaultDescription string `json:"defaultDescription"`
}

// ToWithdrawChallengeResponse maps a challenge to the wire format.
func ToWithdrawChallengeResponse(ch *domain.WithdrawChallenge) WithdrawChallengeResponse {
	return WithdrawChallengeResponse{
		Tag:                ch.Tag,
		Callback:           ch.Callback,
		K1:                 ch.K1,
		MinWithdrawable:    ch.MinWithdrawable,
		MaxWithdrawable:    ch.MaxWithdrawable,
		DefaultDescription: ch.DefaultDescription,
	}
}

// WithdrawStatusResponse is the redemption outcome body.
type WithdrawStatusResponse struct {
	Status string `json:"status"`
}
