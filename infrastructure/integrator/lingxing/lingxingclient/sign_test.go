package lingxingclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSign(t *testing.T) {
	sign := tokenSign("ak_test123", "secret456", 1700000000)
	assert.Equal(t, "197ca28acc95b4580a41ea2a226d2767", sign)
}

func TestApiSign(t *testing.T) {
	params := map[string]string{
		"access_token": "tok",
		"app_key":      "ak_test123",
		"timestamp":    "1700000000",
		"startDate":    "2024-01-01",
		"endDate":      "2024-01-31",
		"offset":       "0",
		"length":       "1000",
		"empty":        "",
	}

	sign, err := apiSign("ak_test123", params)
	require.NoError(t, err)
	assert.Equal(t, "aEZq7FHG+aQdrGwXyhT/1MR5c3pPha9OKcnuBWxCEQGFWgiI/6AebcZjK6F0vO6o", sign)
}

func TestApiSign_IgnoresEmptyParams(t *testing.T) {
	withEmpty, err := apiSign("ak_test123", map[string]string{
		"app_key": "ak_test123",
		"vazio":   "",
	})
	require.NoError(t, err)

	withoutEmpty, err := apiSign("ak_test123", map[string]string{
		"app_key": "ak_test123",
	})
	require.NoError(t, err)

	assert.Equal(t, withoutEmpty, withEmpty)
}

func TestPkcs7Pad(t *testing.T) {
	// Entrada múltipla do bloco ganha um bloco inteiro de padding
	padded := pkcs7Pad(make([]byte, 16), 16)
	assert.Len(t, padded, 32)
	assert.Equal(t, byte(16), padded[31])

	padded = pkcs7Pad([]byte("abc"), 16)
	assert.Len(t, padded, 16)
	assert.Equal(t, byte(13), padded[15])
}
