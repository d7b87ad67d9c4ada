package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDownloadSignerSignAndVerify(t *testing.T) {
	signer := NewDownloadSigner("secret", time.Hour)
	token, expiresAt, err := signer.Sign("exp-1", "student_roster_exp-1.csv")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	exportID, filename, verifiedExpiry, err := signer.Verify(token, false)
	require.NoError(t, err)
	require.Equal(t, "exp-1", exportID)
	require.Equal(t, "student_roster_exp-1.csv", filename)
	require.WithinDuration(t, expiresAt, verifiedExpiry, time.Second)
}

func TestDownloadSignerExpired(t *testing.T) {
	signer := NewDownloadSigner("secret", time.Millisecond*10)
	token, _, err := signer.Sign("exp-1", "tuition_ledger_exp-1.pdf")
	require.NoError(t, err)
	time.Sleep(time.Millisecond * 20)

	_, _, _, err = signer.Verify(token, false)
	require.Error(t, err)

	exportID, filename, _, err := signer.Verify(token, true)
	require.NoError(t, err)
	require.Equal(t, "exp-1", exportID)
	require.Equal(t, "tuition_ledger_exp-1.pdf", filename)
}

func TestDownloadSignerRejectsForeignSecret(t *testing.T) {
	signer := NewDownloadSigner("secret", time.Hour)
	token, _, err := signer.Sign("exp-1", "student_roster_exp-1.csv")
	require.NoError(t, err)

	other := NewDownloadSigner("other-secret", time.Hour)
	_, _, _, err = other.Verify(token, false)
	require.Error(t, err)
}

func TestDownloadSignerRejectsMalformedToken(t *testing.T) {
	signer := NewDownloadSigner("secret", time.Hour)
	_, _, _, err := signer.Verify("not.a.token", false)
	require.Error(t, err)
}
