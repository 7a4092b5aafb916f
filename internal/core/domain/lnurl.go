package domain

import (
	"crypto/sha256"
	"encoding/json"
)

// BaseCurrency is the network's base unit. Requests quoting it bypass fiat
// conversion entirely.
const BaseCurrency = "BTC"

// Default sendable bounds for an unpinned pay request: 1 sat to 1 BTC, in
// millisatoshis.
const (
	DefaultMinSendableMsat int64 = 1_000
	DefaultMaxSendableMsat int64 = 100_000_000_000
)

// MsatsPerSat is the millisatoshi/satoshi ratio. Amounts supplied by payers in
// msat must divide evenly by it; sub-sat invoices are not supported.
const MsatsPerSat int64 = 1000

// TagPayRequest is the LNURL tag identifying a pay-request response.
const TagPayRequest = "payRequest"

// Metadata is an ordered sequence of (mimeType, value) pairs. Its serialized
// byte form is hashed into the invoice commitment, so serialization must be
// byte-stable: same identifier and host, same bytes, every time.
type Metadata [][2]string

// PayerMetadata builds the canonical metadata for a payment to username at
// host. It is the single constructor shared by the pay-request and callback
// paths; commitment verification on the payer's side breaks if the two ever
// drift apart.
func PayerMetadata(username, host string) Metadata {
	return Metadata{
		{"text/plain", "Payment to " + username},
		{"text/identifier", username + "@" + host},
	}
}

// Serialize returns the canonical JSON form, e.g.
// [["text/plain","Payment to alice"],["text/identifier","alice@example.com"]].
func (m Metadata) Serialize() string {
	b, _ := json.Marshal(m) // [][2]string cannot fail to marshal
	return string(b)
}

// CommitmentHash returns sha256 over the canonical serialized form.
func (m Metadata) CommitmentHash() [32]byte {
	return sha256.Sum256([]byte(m.Serialize()))
}

// PayRequestDescriptor is the first-phase LNURL-pay result: payment bounds and
// metadata for a resolved identifier. Built fresh per request, never persisted.
type PayRequestDescriptor struct {
	Username        string
	Callback        string
	MinSendableMsat int64
	MaxSendableMsat int64
	Metadata        Metadata
	NostrEnabled    bool
	NostrPubkey     string
}

// Invoice is the ledger's answer to an issuance request.
type Invoice struct {
	PaymentRequest string
	PaymentHash    string
}

// InvoiceDescription commits an invoice to either a 32-byte description hash
// or a free-text memo. Exactly one is ever set; the zero value is invalid and
// rejected by the ledger client.
type InvoiceDescription struct {
	kind descriptionKind
	hash [32]byte
	memo string
}

type descriptionKind int

const (
	descriptionNone descriptionKind = iota
	descriptionHash
	descriptionMemo
)

// DescriptionHash builds a hash-committed description.
func DescriptionHash(h [32]byte) InvoiceDescription {
	return InvoiceDescription{kind: descriptionHash, hash: h}
}

// DescriptionMemo builds a memo description with no hash.
func DescriptionMemo(memo string) InvoiceDescription {
	return InvoiceDescription{kind: descriptionMemo, memo: memo}
}

// Hash returns the committed hash, if this description carries one.
func (d InvoiceDescription) Hash() ([32]byte, bool) {
	return d.hash, d.kind == descriptionHash
}

// Memo returns the memo, if this description carries one.
func (d InvoiceDescription) Memo() (string, bool) {
	return d.memo, d.kind == descriptionMemo
}

// Valid reports whether the description carries exactly one variant.
func (d InvoiceDescription) Valid() bool {
	return d.kind != descriptionNone
}
