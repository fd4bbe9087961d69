package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Payment-provider signature verification. Two modes share the primitive
// (HMAC-SHA256, hex encoded) but sign different material with different
// secrets: the checkout callback signs "<orderID>|<paymentID>" with the API
// key secret, the async webhook signs the raw request body with the webhook
// secret.

// VerifyPayment checks the checkout callback signature. It returns false
// rather than an error on any problem, including a missing secret; callers
// must treat false exactly like a cryptographic mismatch.
func VerifyPayment(orderID, paymentID, sig, secret string) bool {
	if secret == "" || sig == "" {
		return false
	}
	return equal(sign([]byte(orderID+"|"+paymentID), secret), sig)
}

// VerifyWebhook checks the whole-body webhook signature.
func VerifyWebhook(body []byte, sig, secret string) bool {
	if secret == "" || sig == "" {
		return false
	}
	return equal(sign(body, secret), sig)
}

func sign(msg []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(msg)
	return hex.EncodeToString(mac.Sum(nil))
}

func equal(expected, got string) bool {
	return hmac.Equal([]byte(expected), []byte(got))
}
