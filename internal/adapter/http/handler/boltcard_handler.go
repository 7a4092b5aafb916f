package handler

import (
	"lnurl-gateway/internal/adapter/http/dto"
	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"
	"lnurl-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// BoltCardHandler handles the bolt-card pairing and withdraw endpoints. Unlike
// the pay flow, this surface uses real HTTP status codes: 400 for validation
// and ledger rejections, 500 for transport failures and empty responses.
type BoltCardHandler struct {
	cardSvc ports.CardService
}

// NewBoltCardHandler creates a new BoltCardHandler.
func NewBoltCardHandler(cardSvc ports.CardService) *BoltCardHandler {
	return &BoltCardHandler{cardSvc: cardSvc}
}

// Pair handles GET /api/bolt-card/:otp.
func (h *BoltCardHandler) Pair(c *gin.Context) {
	keys, err := h.cardSvc.Pair(c.Request.Context(), origin(c), c.Param("otp"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBoltCardResponse(keys))
}

// Withdraw handles GET /api/lnurl/withdraw/:id. The endpoint is shared:
// parameter shape decides whether this is a challenge issuance or a
// redemption.
func (h *BoltCardHandler) Withdraw(c *gin.Context) {
	action, err := domain.ParseWithdrawAction(c.Query("p"), c.Query("c"), c.Query("pr"), c.Query("k1"))
	if err != nil {
		response.Error(c, err)
		return
	}

	switch params := action.(type) {
	case domain.WithdrawChallengeParams:
		challenge, err := h.cardSvc.IssueChallenge(c.Request.Context(), origin(c), c.Param("id"), params)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.ToWithdrawChallengeResponse(challenge))

	case domain.WithdrawRedeemParams:
		status, err := h.cardSvc.Redeem(c.Request.Context(), origin(c), params)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.WithdrawStatusResponse{Status: status})
	}
}
