package ports

import (
	"context"
	"time"

	"lnurl-gateway/internal/core/domain"
)

// ClientOrigin carries the client-attributed network-origin headers forwarded
// unchanged on every ledger call, for downstream audit and rate limiting.
type ClientOrigin struct {
	RealIP       string
	ForwardedFor string
}

// PriceRangeOneDay is the lookback window used for price conversion.
const PriceRangeOneDay = "ONE_DAY"

// LedgerInvoiceRequest is an invoice issuance order for the ledger.
type LedgerInvoiceRequest struct {
	WalletID    string
	AmountSats  int64
	Description domain.InvoiceDescription
}

// LedgerClient is the GraphQL account/ledger collaborator. It owns wallets,
// invoice issuance and settlement, bolt-card state, nonce single-use
// enforcement, and price quotes; this layer only forwards and interprets.
type LedgerClient interface {
	// RecipientWalletID resolves a username to its default wallet. An empty
	// result means the identifier is unknown.
	RecipientWalletID(ctx context.Context, origin ClientOrigin, username string) (string, error)

	// CreateInvoice asks the ledger to issue an invoice committed to the
	// request's description (hash or memo, never both).
	CreateInvoice(ctx context.Context, origin ClientOrigin, req LedgerInvoiceRequest) (*domain.Invoice, error)

	// PairBoltCard exchanges a one-time pairing code for card key material.
	PairBoltCard(ctx context.Context, origin ClientOrigin, otp, baseURL string) (*domain.BoltCardKeys, error)

	// RequestWithdrawChallenge issues a withdraw challenge for a paired card.
	RequestWithdrawChallenge(ctx context.Context, origin ClientOrigin, cardID string, params domain.WithdrawChallengeParams, baseURL string) (*domain.WithdrawChallenge, error)

	// RedeemWithdrawChallenge redeems a previously issued challenge against
	// the supplied payment request and returns the ledger's status.
	RedeemWithdrawChallenge(ctx context.Context, origin ClientOrigin, params domain.WithdrawRedeemParams) (string, error)

	// BtcPriceList returns the recent price series for the given range,
	// oldest first.
	BtcPriceList(ctx context.Context, origin ClientOrigin, priceRange string) ([]domain.PricePoint, error)
}

// CorrelationStore is a TTL key/value store remembering a Nostr zap event
// alongside the payment hash of the invoice it funds. Writes are best-effort;
// there is no read path in this layer.
type CorrelationStore interface {
	Set(ctx context.Context, paymentHash string, event []byte, ttl time.Duration) error
}

// --- Service ports ---

// ResolveParams holds raw query input for the LNURL-pay first phase.
type ResolveParams struct {
	Username string
	Amount   string
	Currency string
}

// PayRequestService implements the LNURL-pay first phase.
type PayRequestService interface {
	Resolve(ctx context.Context, origin ClientOrigin, params ResolveParams) (*domain.PayRequestDescriptor, error)
}

// InvoiceParams holds raw query input for the LNURL-pay second phase.
type InvoiceParams struct {
	Username   string
	AmountMsat string
	NostrEvent string
	Comment    string
}

// PayCallbackService implements the LNURL-pay second phase.
type PayCallbackService interface {
	CreateInvoice(ctx context.Context, origin ClientOrigin, params InvoiceParams) (*domain.Invoice, error)
}

// CardService covers the bolt-card flows: pairing, withdraw challenge
// issuance, and challenge redemption.
type CardService interface {
	Pair(ctx context.Context, origin ClientOrigin, otp string) (*domain.BoltCardKeys, error)
	IssueChallenge(ctx context.Context, origin ClientOrigin, cardID string, params domain.WithdrawChallengeParams) (*domain.WithdrawChallenge, error)
	Redeem(ctx context.Context, origin ClientOrigin, params domain.WithdrawRedeemParams) (string, error)
}

// PriceConverter converts a fiat amount into millisatoshis using the ledger's
// most recent price snapshot.
type PriceConverter interface {
	ToMillisats(ctx context.Context, origin ClientOrigin, amountMajorUnits float64, fiatCurrency string) (int64, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditService records audit entries fire-and-forget.
type AuditService interface {
	Record(ctx context.Context, entry *domain.AuditEntry)
}
