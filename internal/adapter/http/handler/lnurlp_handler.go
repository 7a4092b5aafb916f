package handler

import (
	"lnurl-gateway/internal/adapter/http/dto"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// origin captures the client-attributed network headers forwarded to the
// ledger on every call.
func origin(c *gin.Context) ports.ClientOrigin {
	return ports.ClientOrigin{
		RealIP:       c.GetHeader("x-real-ip"),
		ForwardedFor: c.GetHeader("x-forwarded-for"),
	}
}

// LnurlpHandler handles the LNURL-pay endpoints. Both phases answer HTTP 200
// with errors delivered in-band, per the protocol.
type LnurlpHandler struct {
	payReqSvc   ports.PayRequestService
	callbackSvc ports.PayCallbackService
}

// NewLnurlpHandler creates a new LnurlpHandler.
func NewLnurlpHandler(payReqSvc ports.PayRequestService, callbackSvc ports.PayCallbackService) *LnurlpHandler {
	return &LnurlpHandler{payReqSvc: payReqSvc, callbackSvc: callbackSvc}
}

// PayRequest handles GET /lnurlp/:username.
func (h *LnurlpHandler) PayRequest(c *gin.Context) {
	descriptor, err := h.payReqSvc.Resolve(c.Request.Context(), origin(c), ports.ResolveParams{
		Username: c.Param("username"),
		Amount:   c.Query("amount"),
		Currency: c.Query("currency"),
	})
	if err != nil {
		response.LnurlError(c, err)
		return
	}

	response.OK(c, dto.ToPayRequestResponse(descriptor))
}

// Callback handles GET /lnurlp/:username/callback.
func (h *LnurlpHandler) Callback(c *gin.Context) {
	invoice, err := h.callbackSvc.CreateInvoice(c.Request.Context(), origin(c), ports.InvoiceParams{
		Username:   c.Param("username"),
		AmountMsat: c.Query("amount"),
		NostrEvent: c.Query("nostr"),
		Comment:    c.Query("comment"),
	})
	if err != nil {
		response.LnurlError(c, err)
		return
	}

	response.OK(c, dto.ToInvoiceResponse(invoice))
}
