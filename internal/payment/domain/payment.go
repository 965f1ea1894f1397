package domain

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// CurrencyINR is the only currency orders are created in
const CurrencyINR = "INR"

// OrderRequest is the body sent to the gateway's Orders API
type OrderRequest struct {
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// GatewayOrder is the gateway's order object, returned to the client untouched
type GatewayOrder map[string]interface{}

// Gateway creates orders with the external payment provider
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (GatewayOrder, error)
}

// Signature returns hex(HMAC-SHA256(secret, orderID + "|" + paymentID))
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidSignature reports whether signature was produced for orderID and paymentID
func ValidSignature(secret, orderID, paymentID, signature string) bool {
	expected := Signature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
