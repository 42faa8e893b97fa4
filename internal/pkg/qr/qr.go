// Package qr manages the rotating codes behind employee QR badges. A badge
// encodes an otpauth URL; the kiosk scanning it submits the current 6-digit
// code, which is verified here against the employee's stored secret.
package qr

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Period is the code rotation interval in seconds.
const Period = 30

// GenerateBadgeSecret issues a new TOTP secret for an employee badge and
// returns both the raw secret (persisted) and the otpauth URL (encoded
// into the printed QR badge).
func GenerateBadgeSecret(issuer, accountName string) (secret string, otpauthURL string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      Period,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// VerifyCode checks a scanned 6-digit code against the badge secret,
// allowing one period of clock skew between kiosk and server.
func VerifyCode(code, secret string, at time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, at, totp.ValidateOpts{
		Period:    Period,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false
	}
	return ok
}
