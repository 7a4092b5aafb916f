package integration

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// fakeLedger is an httptest GraphQL server impersonating the account/ledger
// service. It keeps just enough state to exercise the protocol flows: known
// usernames, issued invoices, and withdraw nonces.
type fakeLedger struct {
	mu sync.Mutex

	server *httptest.Server

	users        map[string]string // username -> walletID
	priceBase    int64
	priceOffset  int
	invoiceSeq   int
	issuedNonces map[string]bool // k1 -> redeemed

	// captured state for assertions
	lastDescriptionHash string
	lastMemo            string
	lastAmountSats      int64
}

func newFakeLedger() *fakeLedger {
	l := &fakeLedger{
		users:        map[string]string{"alice": "wallet-alice"},
		priceBase:    50_000, // 50000/10^4/100 = 0.05 major units per sat
		priceOffset:  4,
		issuedNonces: map[string]bool{},
	}
	l.server = httptest.NewServer(http.HandlerFunc(l.handle))
	return l
}

func (l *fakeLedger) close() { l.server.Close() }

func (l *fakeLedger) url() string { return l.server.URL }

func (l *fakeLedger) handle(w http.ResponseWriter, r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var req struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.Contains(req.Query, "userDefaultWalletId"):
		username, _ := req.Variables["username"].(string)
		walletID := l.users[username]
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{"recipientWalletId": walletID},
		})

	case strings.Contains(req.Query, "lnInvoiceCreateOnBehalfOfRecipient"):
		l.invoiceSeq++
		l.lastDescriptionHash, _ = req.Variables["descriptionHash"].(string)
		l.lastMemo, _ = req.Variables["memo"].(string)
		if amount, ok := req.Variables["amount"].(float64); ok {
			l.lastAmountSats = int64(amount)
		}
		paymentHash := fmt.Sprintf("%x", sha256.Sum256([]byte(fmt.Sprintf("invoice-%d", l.invoiceSeq))))
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"mutationData": map[string]interface{}{
					"errors": []interface{}{},
					"invoice": map[string]interface{}{
						"paymentRequest": fmt.Sprintf("lnbcrt%d...", l.invoiceSeq),
						"paymentHash":    paymentHash,
					},
				},
			},
		})

	case strings.Contains(req.Query, "boltCardPair"):
		input, _ := req.Variables["input"].(map[string]interface{})
		otp, _ := input["otp"].(string)
		if otp != "otp-valid" {
			writeJSON(w, map[string]interface{}{
				"data": map[string]interface{}{
					"boltCardPair": map[string]interface{}{
						"errors": []interface{}{map[string]interface{}{"message": "invalid or expired otp"}},
					},
				},
			})
			return
		}
		baseURL, _ := input["baseUrl"].(string)
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"boltCardPair": map[string]interface{}{
					"errors":          []interface{}{},
					"cardName":        "test card",
					"k0":              "00000000000000000000000000000000",
					"k1":              "11111111111111111111111111111111",
					"k2":              "22222222222222222222222222222222",
					"k3":              "33333333333333333333333333333333",
					"k4":              "44444444444444444444444444444444",
					"lnurlwBase":      baseURL + "/api/lnurl/withdraw",
					"protocolName":    "new_bolt_card_response",
					"protocolVersion": "1",
				},
			},
		})

	case strings.Contains(req.Query, "boltCardWithdrawRequest"):
		input, _ := req.Variables["input"].(map[string]interface{})
		cardID, _ := input["cardId"].(string)
		baseURL, _ := input["baseUrl"].(string)
		k1 := fmt.Sprintf("nonce-%s", cardID)
		l.issuedNonces[k1] = false
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"boltCardWithdrawRequest": map[string]interface{}{
					"errors":             []interface{}{},
					"tag":                "withdrawRequest",
					"callback":           fmt.Sprintf("%s/api/lnurl/withdraw/%s", baseURL, cardID),
					"k1":                 k1,
					"minWithdrawable":    1000,
					"maxWithdrawable":    100000000,
					"defaultDescription": "Bolt Card Withdraw",
				},
			},
		})

	case strings.Contains(req.Query, "boltCardWithdrawCallback"):
		input, _ := req.Variables["input"].(map[string]interface{})
		k1, _ := input["k1"].(string)
		redeemed, known := l.issuedNonces[k1]
		if !known || redeemed {
			writeJSON(w, map[string]interface{}{
				"data": map[string]interface{}{
					"boltCardWithdrawCallback": map[string]interface{}{
						"errors": []interface{}{map[string]interface{}{"message": "k1 not found or already used"}},
					},
				},
			})
			return
		}
		l.issuedNonces[k1] = true
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"boltCardWithdrawCallback": map[string]interface{}{
					"errors": []interface{}{},
					"status": "OK",
				},
			},
		})

	case strings.Contains(req.Query, "btcPriceList"):
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"btcPriceList": []interface{}{
					map[string]interface{}{
						"timestamp": 1700000000,
						"price": map[string]interface{}{
							"base":         l.priceBase,
							"offset":       l.priceOffset,
							"currencyUnit": "USDCENT",
						},
					},
				},
			},
		})

	default:
		writeJSON(w, map[string]interface{}{
			"errors": []interface{}{map[string]interface{}{"message": "unknown operation"}},
		})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	_ = json.NewEncoder(w).Encode(v)
}

// metadataHashHex is the expected commitment for a plain callback: sha256 over
// the canonical serialized metadata.
func metadataHashHex(username, host string) string {
	metadata := fmt.Sprintf(`[["text/plain","Payment to %s"],["text/identifier","%s@%s"]]`, username, username, host)
	sum := sha256.Sum256([]byte(metadata))
	return hex.EncodeToString(sum[:])
}
