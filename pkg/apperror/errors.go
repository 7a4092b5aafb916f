package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. The pay-flow
// endpoints render every AppError in-band with HTTP 200 per the LNURL
// protocol; HTTPStatus applies to the card/withdraw surface only.
type AppError struct {
	Code       string `json:"error_code"`
	Reason     string `json:"reason"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Reason)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, reason string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Reason:     reason,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, reason string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Reason:     reason,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Caller input (REQ) ----

// Validation returns an error for malformed or missing caller input, detected
// before any network call.
func Validation(reason string) *AppError {
	return New("REQ_001", reason, http.StatusBadRequest)
}

// ---- Pay flow (PAY) ----

func ErrUnknownIdentifier(username string) *AppError {
	return New("PAY_001", fmt.Sprintf("Couldn't find user '%s'.", username), http.StatusNotFound)
}

func ErrSubSatUnsupported() *AppError {
	return New("PAY_002", "Millisatoshi amount is not supported, please send a value in full sats.", http.StatusBadRequest)
}

func ErrInvoiceIssuanceFailed(ledgerMessage string) *AppError {
	return New("PAY_003", fmt.Sprintf("Failed to get invoice: %s", ledgerMessage), http.StatusBadGateway)
}

// ---- Price conversion (PRICE) ----

func ErrCurrencyUnsupported(currency string) *AppError {
	return New("PRICE_001", fmt.Sprintf("Currency '%s' needs no conversion", currency), http.StatusBadRequest)
}

func ErrQuoteUnavailable() *AppError {
	return New("PRICE_002", "No recent price quote available", http.StatusServiceUnavailable)
}

// ---- Bolt card (CARD) ----

func ErrInvalidOtp() *AppError {
	return New("CARD_001", "Invalid OTP parameter", http.StatusBadRequest)
}

func ErrPairingRejected(ledgerMessage string) *AppError {
	return New("CARD_002", fmt.Sprintf("Failed to pair Bolt card: %s", ledgerMessage), http.StatusBadRequest)
}

func ErrInvalidCardReference() *AppError {
	return New("CARD_003", "Invalid card ID parameter", http.StatusBadRequest)
}

func ErrWithdrawRejected(ledgerMessage string) *AppError {
	return New("CARD_004", fmt.Sprintf("Failed to process withdraw request: %s", ledgerMessage), http.StatusBadRequest)
}

func ErrMissingChallengeNonce() *AppError {
	return New("CARD_005", "Invalid k1 parameter", http.StatusBadRequest)
}

func ErrAmbiguousWithdrawRequest() *AppError {
	return New("CARD_006", "Invalid parameters for LNURL withdraw", http.StatusBadRequest)
}

// ---- Ledger collaborator (LEDGER) ----

// ErrLedgerUnreachable covers transport failures and timeouts reaching the
// ledger service.
func ErrLedgerUnreachable(err error) *AppError {
	return Wrap("LEDGER_001", "GraphQL request failed", http.StatusInternalServerError, err)
}

// ErrLedgerRejected covers structured errors reported by the ledger at the
// GraphQL layer; the ledger's messages are forwarded verbatim.
func ErrLedgerRejected(messages string) *AppError {
	return New("LEDGER_002", fmt.Sprintf("GraphQL errors: %s", messages), http.StatusBadRequest)
}

// ErrLedgerEmptyResponse covers a transport-level success carrying no usable
// payload.
func ErrLedgerEmptyResponse() *AppError {
	return New("LEDGER_003", "No data returned from server", http.StatusInternalServerError)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
