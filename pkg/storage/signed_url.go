package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DownloadSigner mints and checks the HMAC tokens that gate export downloads.
// A token embeds the export ID, the stored filename, and an expiry; nothing
// has to be looked up server-side to reject a forged or stale link.
type DownloadSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewDownloadSigner builds a signer with the provided secret and token TTL.
func NewDownloadSigner(secret string, ttl time.Duration) *DownloadSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DownloadSigner{secret: []byte(secret), ttl: ttl}
}

// Sign returns a download token for the export and its stored filename.
func (s *DownloadSigner) Sign(exportID, filename string) (string, time.Time, error) {
	if exportID == "" || filename == "" {
		return "", time.Time{}, fmt.Errorf("export id and filename required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := time.Now().Add(s.ttl)
	exp := strconv.FormatInt(expiresAt.Unix(), 10)
	encodedName := base64.RawURLEncoding.EncodeToString([]byte(filename))
	sig := s.signature(exportID, exp, encodedName)
	token := strings.Join([]string{exportID, exp, encodedName, sig}, ".")
	return token, expiresAt, nil
}

// Verify checks a token and returns the embedded metadata. When allowExpired
// is true the expiry check is skipped, which cleanup routines rely on.
func (s *DownloadSigner) Verify(token string, allowExpired bool) (exportID, filename string, expiresAt time.Time, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", "", time.Time{}, fmt.Errorf("malformed download token")
	}
	exportID, exp, encodedName, sig := parts[0], parts[1], parts[2], parts[3]

	expected := s.signature(exportID, exp, encodedName)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return "", "", time.Time{}, fmt.Errorf("download token signature mismatch")
	}

	expUnix, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("download token expiry invalid")
	}
	expiresAt = time.Unix(expUnix, 0)
	if !allowExpired && time.Now().After(expiresAt) {
		return "", "", time.Time{}, fmt.Errorf("download token expired")
	}

	rawName, err := base64.RawURLEncoding.DecodeString(encodedName)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode filename: %w", err)
	}
	return exportID, string(rawName), expiresAt, nil
}

func (s *DownloadSigner) signature(exportID, exp, encodedName string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%s|%s", exportID, exp, encodedName)
	return hex.EncodeToString(mac.Sum(nil))
}
