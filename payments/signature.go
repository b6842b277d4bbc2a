package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks the gateway callback signature: hex-encoded
// HMAC-SHA256 over "gatewayOrderID|gatewayPaymentID" with the key secret.
// hmac.Equal keeps the comparison constant-time.
func VerifySignature(gatewayOrderID, gatewayPaymentID, signature string, secret []byte) bool {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
