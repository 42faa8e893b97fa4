package qr

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBadgeSecret(t *testing.T) {
	secret, url, err := GenerateBadgeSecret("storemate", "EMP-0001")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Contains(t, url, "otpauth://totp/")
	assert.Contains(t, url, "storemate")
}

func TestVerifyCode(t *testing.T) {
	secret, _, err := GenerateBadgeSecret("storemate", "EMP-0002")
	require.NoError(t, err)

	now := time.Now()
	code, err := totp.GenerateCode(secret, now)
	require.NoError(t, err)

	assert.True(t, VerifyCode(code, secret, now))

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	assert.False(t, VerifyCode(wrong, secret, now))
	assert.False(t, VerifyCode(code, secret, now.Add(5*time.Minute)))
}
