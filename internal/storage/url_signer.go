package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	apperrors "event-ticketing/pkg/app_errors"
)

// URLSigner 產生與驗證 HMAC 簽名的時效性下載連結
type URLSigner struct {
	secret  []byte
	baseURL string
}

func NewURLSigner(secret string, baseURL string) *URLSigner {
	return &URLSigner{
		secret:  []byte(secret),
		baseURL: baseURL,
	}
}

func (s *URLSigner) sign(key string, expiresAt int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%d", key, expiresAt)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SignedURL 產生下載連結：/downloads/<key>?exp=<unix>&sig=<hmac>
func (s *URLSigner) SignedURL(key string, expiresIn time.Duration) string {
	expiresAt := time.Now().Add(expiresIn).Unix()
	return fmt.Sprintf("%s/downloads/%s?exp=%d&sig=%s",
		s.baseURL, key, expiresAt, s.sign(key, expiresAt))
}

// Verify 驗證簽名與時效，簽名不符或逾期回傳 ErrInvalidInput
func (s *URLSigner) Verify(key string, expParam string, sig string) error {
	expiresAt, err := strconv.ParseInt(expParam, 10, 64)
	if err != nil {
		return apperrors.ErrInvalidInput
	}
	if time.Now().Unix() > expiresAt {
		return apperrors.ErrInvalidInput
	}
	expected := s.sign(key, expiresAt)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return apperrors.ErrInvalidInput
	}
	return nil
}
