package storage_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"event-ticketing/internal/storage"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLSigner(t *testing.T) {
	signer := storage.NewURLSigner("test-signing-secret", "http://localhost:8080")

	signedQuery := func(t *testing.T, key string) (exp string, sig string) {
		raw := signer.SignedURL(key, time.Hour)
		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		return parsed.Query().Get("exp"), parsed.Query().Get("sig")
	}

	t.Run("SignedURL - 格式", func(t *testing.T) {
		raw := signer.SignedURL("tickets/TKT-1-abcd.pdf", time.Hour)
		assert.True(t, strings.HasPrefix(raw, "http://localhost:8080/downloads/tickets/TKT-1-abcd.pdf?"))
		assert.Contains(t, raw, "exp=")
		assert.Contains(t, raw, "sig=")
	})

	t.Run("Verify - Success", func(t *testing.T) {
		exp, sig := signedQuery(t, "tickets/TKT-1-abcd.pdf")
		assert.NoError(t, signer.Verify("tickets/TKT-1-abcd.pdf", exp, sig))
	})

	t.Run("Failed - 簽名被竄改", func(t *testing.T) {
		exp, _ := signedQuery(t, "tickets/TKT-1-abcd.pdf")
		err := signer.Verify("tickets/TKT-1-abcd.pdf", exp, "tampered")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - 簽名換了 key 不能通過", func(t *testing.T) {
		exp, sig := signedQuery(t, "tickets/TKT-1-abcd.pdf")
		err := signer.Verify("tickets/TKT-2-efgh.pdf", exp, sig)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - 連結逾期", func(t *testing.T) {
		raw := signer.SignedURL("tickets/TKT-1-abcd.pdf", -time.Minute)
		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		verifyErr := signer.Verify("tickets/TKT-1-abcd.pdf", parsed.Query().Get("exp"), parsed.Query().Get("sig"))
		assert.ErrorIs(t, verifyErr, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - exp 不是數字", func(t *testing.T) {
		err := signer.Verify("tickets/TKT-1-abcd.pdf", "not-a-number", "sig")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - 不同密鑰簽出的連結", func(t *testing.T) {
		other := storage.NewURLSigner("another-secret", "http://localhost:8080")
		exp, sig := signedQuery(t, "tickets/TKT-1-abcd.pdf")
		err := other.Verify("tickets/TKT-1-abcd.pdf", exp, sig)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
