package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(orderID, paymentID string, secret []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignatureMatch(t *testing.T) {
	secret := []byte("test_key_secret")
	sig := sign("order_abc", "pay_xyz", secret)

	if !VerifySignature("order_abc", "pay_xyz", sig, secret) {
		t.Fatal("valid signature rejected")
	}
}

func TestVerifySignatureRejectsForgeries(t *testing.T) {
	secret := []byte("test_key_secret")
	valid := sign("order_abc", "pay_xyz", secret)

	tests := []struct {
		name                string
		orderID, paymentID  string
		signature           string
	}{
		{"forged signature", "order_abc", "pay_xyz", "deadbeef"},
		{"empty signature", "order_abc", "pay_xyz", ""},
		{"wrong order id", "order_other", "pay_xyz", valid},
		{"wrong payment id", "order_abc", "pay_other", valid},
		{"signature for different secret", "order_abc", "pay_xyz", sign("order_abc", "pay_xyz", []byte("other"))},
		{"truncated signature", "order_abc", "pay_xyz", valid[:len(valid)-2]},
	}

	for _, tt := range tests {
		if VerifySignature(tt.orderID, tt.paymentID, tt.signature, secret) {
			t.Errorf("%s: accepted", tt.name)
		}
	}
}
