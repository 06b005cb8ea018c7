package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskhub/internal/core/apperr"
	"taskhub/pkg/auth"
)

func TestCreateAndVerify(t *testing.T) {
	j := auth.NewJWT("test-secret")

	token, err := j.Create("2f0c54a1-9cf6-4f9e-bd9a-0d8f0a2b7a11")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	uid, err := j.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "2f0c54a1-9cf6-4f9e-bd9a-0d8f0a2b7a11", uid)
}

func TestVerifyExpiredToken(t *testing.T) {
	j := &auth.JWT{Secret: "test-secret", TTL: -time.Minute}

	token, err := j.Create("2f0c54a1-9cf6-4f9e-bd9a-0d8f0a2b7a11")
	assert.NoError(t, err)

	_, err = j.Verify(token)

	assert.True(t, apperr.IsKind(err, apperr.KindExpiredToken))
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := auth.NewJWT("secret-a").Create("2f0c54a1-9cf6-4f9e-bd9a-0d8f0a2b7a11")
	assert.NoError(t, err)

	_, err = auth.NewJWT("secret-b").Verify(token)

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidToken))
}

func TestVerifyGarbage(t *testing.T) {
	_, err := auth.NewJWT("test-secret").Verify("not-a-token")

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidToken))
}
