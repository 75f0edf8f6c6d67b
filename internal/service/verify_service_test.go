package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/service"
)

func TestHealth(t *testing.T) {
	svc := service.NewVerifyService(clock.NewMock(start), fixedRandom{}, 0, 0)

	health := svc.Health()

	assert.Equal(t, "active", health.Status)
	assert.Equal(t, "LEV Holdings Verification API", health.Service)
	assert.Equal(t, "1.0.0", health.Version)
	assert.True(t, start.Equal(health.Timestamp))
}

func TestValidWallet(t *testing.T) {
	assert.True(t, service.ValidWallet(testWallet))
	assert.False(t, service.ValidWallet("not-a-wallet"))
	assert.False(t, service.ValidWallet(""))
}

func TestVerify(t *testing.T) {
	t.Run("verified", func(t *testing.T) {
		svc := service.NewVerifyService(clock.NewMock(start), fixedRandom{f: 0.5}, 0, 0)

		resp := svc.Verify(context.Background(), testWallet)

		assert.True(t, resp.Success)
		assert.True(t, resp.Verified)
		require.NotNil(t, resp.Credential)
		assert.True(t, strings.HasPrefix(resp.Credential.CredentialID, "LEV_"))
		assert.Equal(t, "KYC_COMPLETE", resp.Credential.VerificationLevel)
		assert.True(t, resp.Credential.Attributes.HasKYC)
	})

	t.Run("not verified", func(t *testing.T) {
		svc := service.NewVerifyService(clock.NewMock(start), fixedRandom{f: 0.1}, 0, 0)

		resp := svc.Verify(context.Background(), testWallet)

		assert.True(t, resp.Success)
		assert.False(t, resp.Verified)
		assert.Nil(t, resp.Credential)
	})
}

func TestCheck(t *testing.T) {
	has := service.NewVerifyService(clock.NewMock(start), fixedRandom{f: 0.9}, 0, 0).Check(context.Background(), testWallet)
	require.NotNil(t, has.CredentialType)
	assert.True(t, has.HasCredential)
	assert.Equal(t, "Digital Identity", *has.CredentialType)

	none := service.NewVerifyService(clock.NewMock(start), fixedRandom{f: 0.3}, 0, 0).Check(context.Background(), testWallet)
	assert.False(t, none.HasCredential)
	assert.Nil(t, none.CredentialType)
}
