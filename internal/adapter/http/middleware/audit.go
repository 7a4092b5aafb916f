package middleware

import (
	"encoding/json"
	"time"

	"lnurl-gateway/internal/core/domain"
	"lnurl-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditTrail creates an audit middleware for the protocol-significant routes.
// The whole surface is GET per the LNURL protocol, so route templates rather
// than methods decide what gets recorded. A 2xx with an in-band ERROR body
// still counts as an operation attempt and is recorded.
func AuditTrail(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		action, resource := mapRouteToAction(c)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Record(c.Request.Context(), &domain.AuditEntry{
			ID:        uuid.New(),
			Action:    action,
			Resource:  resource,
			IPAddress: c.ClientIP(),
			RequestID: RequestID(c),
			Details:   string(details),
			CreatedAt: time.Now().UTC(),
		})
	}
}

func mapRouteToAction(c *gin.Context) (domain.AuditAction, string) {
	switch c.FullPath() {
	case "/lnurlp/:username/callback":
		return domain.AuditActionInvoiceIssue, c.Param("username")
	case "/api/bolt-card/:otp":
		return domain.AuditActionCardPair, c.Param("otp")
	case "/api/lnurl/withdraw/:id":
		return domain.AuditActionWithdraw, c.Param("id")
	}
	return "", ""
}
