package validators

import (
	"encoding/base64"

	"github.com/go-playground/validator/v10"
)

// EncryptionKeyTag is the validation tag registered for EncryptionKeyValidation
const EncryptionKeyTag = "encryptionKey"

const aes256KeySize = 32

// EncryptionKeyValidation accepts a standard base64 string that decodes to a 256-bit AES key.
func EncryptionKeyValidation(fl validator.FieldLevel) bool {
	decoded, err := base64.StdEncoding.DecodeString(fl.Field().String())
	if err != nil {
		return false
	}
	valid := len(decoded) == aes256KeySize
	for i := range decoded {
		decoded[i] = 0
	}
	return valid
}
