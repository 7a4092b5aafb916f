package graphql

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.LedgerClient over GraphQL-on-HTTP. Every call
// forwards the client's network-origin headers unchanged so the ledger can
// attribute requests for audit and rate limiting.
type Client struct {
	endpoint   string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a ledger client. The injected httpClient carries the
// request timeout; exceeding it surfaces as LedgerUnreachable.
func NewClient(endpoint string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		log:        log,
	}
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type ledgerError struct {
	Message string `json:"message"`
}

// execute posts one GraphQL document and decodes data into out. The three
// failure layers are kept distinct: transport problems become
// LedgerUnreachable, top-level GraphQL errors become LedgerRejected, and a
// missing data payload becomes LedgerEmptyResponse.
func (c *Client) execute(ctx context.Context, origin ports.ClientOrigin, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshaling ledger request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("building ledger request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if origin.RealIP != "" {
		req.Header.Set("x-real-ip", origin.RealIP)
	}
	if origin.ForwardedFor != "" {
		req.Header.Set("x-forwarded-for", origin.ForwardedFor)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", c.endpoint).Msg("ledger request failed")
		return apperror.ErrLedgerUnreachable(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var envelope gqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return apperror.ErrLedgerUnreachable(fmt.Errorf("decoding ledger response (status %d): %w", resp.StatusCode, err))
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		c.log.Warn().Strs("errors", messages).Msg("ledger rejected request")
		return apperror.ErrLedgerRejected(strings.Join(messages, ", "))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return apperror.ErrLedgerEmptyResponse()
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return apperror.InternalError(fmt.Errorf("unmarshaling ledger payload: %w", err))
	}
	return nil
}

// RecipientWalletID resolves a username to its default wallet ID. An empty
// result with a nil error means the identifier is unknown.
func (c *Client) RecipientWalletID(ctx context.Context, origin ports.ClientOrigin, username string) (string, error) {
	var payload struct {
		RecipientWalletID string `json:"recipientWalletId"`
	}
	err := c.execute(ctx, origin, userDefaultWalletIDDocument, map[string]interface{}{
		"username": username,
	}, &payload)
	if err != nil {
		return "", err
	}
	return payload.RecipientWalletID, nil
}

// CreateInvoice asks the ledger to issue an invoice on behalf of the wallet.
// Exactly one of descriptionHash/memo is sent; the other stays null.
func (c *Client) CreateInvoice(ctx context.Context, origin ports.ClientOrigin, req ports.LedgerInvoiceRequest) (*domain.Invoice, error) {
	variables := map[string]interface{}{
		"walletId":        req.WalletID,
		"amount":          req.AmountSats,
		"descriptionHash": nil,
		"memo":            nil,
	}
	if h, ok := req.Description.Hash(); ok {
		variables["descriptionHash"] = hex.EncodeToString(h[:])
	} else if memo, ok := req.Description.Memo(); ok {
		variables["memo"] = memo
	} else {
		return nil, apperror.InternalError(errors.New("invoice description carries neither hash nor memo"))
	}

	var payload struct {
		MutationData struct {
			Errors  []ledgerError `json:"errors"`
			Invoice *struct {
				PaymentRequest string `json:"paymentRequest"`
				PaymentHash    string `json:"paymentHash"`
			} `json:"invoice"`
		} `json:"mutationData"`
	}
	if err := c.execute(ctx, origin, lnInvoiceCreateDocument, variables, &payload); err != nil {
		return nil, err
	}

	if len(payload.MutationData.Errors) > 0 {
		return nil, apperror.ErrInvoiceIssuanceFailed(payload.MutationData.Errors[0].Message)
	}
	if payload.MutationData.Invoice == nil {
		return nil, apperror.ErrInvoiceIssuanceFailed("unknown error")
	}

	return &domain.Invoice{
		PaymentRequest: payload.MutationData.Invoice.PaymentRequest,
		PaymentHash:    payload.MutationData.Invoice.PaymentHash,
	}, nil
}

// PairBoltCard exchanges a one-time pairing code for card key material.
func (c *Client) PairBoltCard(ctx context.Context, origin ports.ClientOrigin, otp, baseURL string) (*domain.BoltCardKeys, error) {
	var payload struct {
		BoltCardPair *struct {
			Errors          []ledgerError `json:"errors"`
			CardName        string        `json:"cardName"`
			K0              string        `json:"k0"`
			K1              string        `json:"k1"`
			K2              string        `json:"k2"`
			K3              string        `json:"k3"`
			K4              string        `json:"k4"`
			LnurlwBase      string        `json:"lnurlwBase"`
			ProtocolName    string        `json:"protocolName"`
			ProtocolVersion string        `json:"protocolVersion"`
		} `json:"boltCardPair"`
	}
	err := c.execute(ctx, origin, boltCardPairDocument, map[string]interface{}{
		"input": map[string]interface{}{
			"otp":     otp,
			"baseUrl": baseURL,
		},
	}, &payload)
	if err != nil {
		return nil, err
	}

	pair := payload.BoltCardPair
	if pair == nil {
		return nil, apperror.ErrLedgerEmptyResponse()
	}
	if len(pair.Errors) > 0 {
		return nil, apperror.ErrPairingRejected(pair.Errors[0].Message)
	}

	return &domain.BoltCardKeys{
		CardName:        pair.CardName,
		K0:              pair.K0,
		K1:              pair.K1,
		K2:              pair.K2,
		K3:              pair.K3,
		K4:              pair.K4,
		LnurlwBase:      pair.LnurlwBase,
		ProtocolName:    pair.ProtocolName,
		ProtocolVersion: pair.ProtocolVersion,
	}, nil
}

// RequestWithdrawChallenge issues a withdraw challenge for a paired card. The
// p/c tag material passes through verbatim; the ledger owns its verification.
func (c *Client) RequestWithdrawChallenge(ctx context.Context, origin ports.ClientOrigin, cardID string, params domain.WithdrawChallengeParams, baseURL string) (*domain.WithdrawChallenge, error) {
	var payload struct {
		BoltCardWithdrawRequest *struct {
			Errors             []ledgerError `json:"errors"`
			Tag                string        `json:"tag"`
			Callback           string        `json:"callback"`
			K1                 string        `json:"k1"`
			MinWithdrawable    int64         `json:"minWithdrawable"`
			MaxWithdrawable    int64         `json:"maxWithdrawable"`
			DefaultDescription string        `json:"defaultDescription"`
		} `json:"boltCardWithdrawRequest"`
	}
	err := c.execute(ctx, origin, boltCardWithdrawRequestDocument, map[string]interface{}{
		"input": map[string]interface{}{
			"cardId":  cardID,
			"p":       params.P,
			"c":       params.C,
			"baseUrl": baseURL,
		},
	}, &payload)
	if err != nil {
		return nil, err
	}

	request := payload.BoltCardWithdrawRequest
	if request == nil {
		return nil, apperror.ErrLedgerEmptyResponse()
	}
	if len(request.Errors) > 0 {
		return nil, apperror.ErrWithdrawRejected(request.Errors[0].Message)
	}

	return &domain.WithdrawChallenge{
		Tag:                request.Tag,
		Callback:           request.Callback,
		K1:                 request.K1,
		MinWithdrawable:    request.MinWithdrawable,
		MaxWithdrawable:    request.MaxWithdrawable,
		DefaultDescription: request.DefaultDescription,
	}, nil
}

// RedeemWithdrawChallenge redeems a challenge nonce against a payment request
// and returns the ledger's status verbatim.
func (c *Client) RedeemWithdrawChallenge(ctx context.Context, origin ports.ClientOrigin, params domain.WithdrawRedeemParams) (string, error) {
	var payload struct {
		BoltCardWithdrawCallback *struct {
			Errors []ledgerError `json:"errors"`
			Status string        `json:"status"`
		} `json:"boltCardWithdrawCallback"`
	}
	err := c.execute(ctx, origin, boltCardWithdrawCallbackDocument, map[string]interface{}{
		"input": map[string]interface{}{
			"k1": params.K1,
			"pr": params.PaymentRequest,
		},
	}, &payload)
	if err != nil {
		return "", err
	}

	callback := payload.BoltCardWithdrawCallback
	if callback == nil {
		return "", apperror.ErrLedgerEmptyResponse()
	}
	if len(callback.Errors) > 0 {
		return "", apperror.ErrWithdrawRejected(callback.Errors[0].Message)
	}
	return callback.Status, nil
}

// BtcPriceList returns the recent price series for the given range, oldest
// first.
func (c *Client) BtcPriceList(ctx context.Context, origin ports.ClientOrigin, priceRange string) ([]domain.PricePoint, error) {
	var payload struct {
		BtcPriceList []struct {
			Timestamp int64 `json:"timestamp"`
			Price     *struct {
				Base         int64  `json:"base"`
				Offset       int    `json:"offset"`
				CurrencyUnit string `json:"currencyUnit"`
			} `json:"price"`
		} `json:"btcPriceList"`
	}
	err := c.execute(ctx, origin, btcPriceListDocument, map[string]interface{}{
		"range": priceRange,
	}, &payload)
	if err != nil {
		return nil, err
	}

	points := make([]domain.PricePoint, 0, len(payload.BtcPriceList))
	for _, p := range payload.BtcPriceList {
		point := domain.PricePoint{Timestamp: p.Timestamp}
		if p.Price != nil {
			point.Price = &domain.Price{
				Base:         p.Price.Base,
				Offset:       p.Price.Offset,
				CurrencyUnit: p.Price.CurrencyUnit,
			}
		}
		points = append(points, point)
	}
	return points, nil
}
