package lingxingclient

import (
	"crypto/aes"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// tokenSign assina a requisição de token: MD5(appId + appSecret + timestamp)
func tokenSign(appID, appSecret string, timestamp int64) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s%s%d", appID, appSecret, timestamp)))
	return hex.EncodeToString(sum[:])
}

// apiSign assina os parâmetros de uma chamada da API: os parâmetros são
// ordenados por chave e concatenados como querystring, o MD5 em caixa alta
// desse texto é cifrado com AES-ECB usando o appId como chave e o resultado é
// codificado em base64. Formato exigido pela plataforma.
func apiSign(appID string, params map[string]string) (string, error) {
	keys := make([]string, 0, len(params))
	for key, value := range params {
		if value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := md5.Sum([]byte(strings.Join(pairs, "&")))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))

	encrypted, err := encryptECB([]byte(digest), aesKey(appID))
	if err != nil {
		return "", errors.Wrap(err, "erro ao cifrar a assinatura da API")
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// aesKey deriva a chave AES de 16 bytes a partir do appId, preenchendo com
// zeros ou truncando conforme necessário
func aesKey(appID string) []byte {
	key := make([]byte, 16)
	copy(key, appID)
	return key
}

func encryptECB(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	encrypted := make([]byte, len(padded))

	for start := 0; start < len(padded); start += block.BlockSize() {
		block.Encrypt(encrypted[start:start+block.BlockSize()], padded[start:start+block.BlockSize()])
	}

	return encrypted, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}
