package commands

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/infrastructure/cryptography"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type KeyCommandHandler struct {
	logger logger.Logger
}

func NewKeyCommandHandler(logger logger.Logger) *KeyCommandHandler {
	return &KeyCommandHandler{logger: logger}
}

// GenerateKeyCmd writes a fresh base64 encoded 256-bit key to --key-file
func (h *KeyCommandHandler) GenerateKeyCmd(cmd *cobra.Command, args []string) error {
	keyFile, err := requiredString(cmd, "key-file")
	if err != nil {
		return err
	}

	key, err := cryptography.GenerateKey()
	if err != nil {
		h.logger.Error("Failed to generate key", "error", err)
		return err
	}
	defer cryptography.Zero(key)

	if err := writeOutputFile(keyFile, encodeKey(key)); err != nil {
		h.logger.Error("Failed to write key file", "error", err)
		return err
	}

	h.logger.Info("Generated report encryption key", "key_file", keyFile)
	return nil
}

// DeriveKeyCmd derives a key from the passphrase in --passphrase-file with argon2id.
// Without --salt a random salt is generated and printed so it can be stored next to the passphrase.
func (h *KeyCommandHandler) DeriveKeyCmd(cmd *cobra.Command, args []string) error {
	passphraseFile, err := requiredString(cmd, "passphrase-file")
	if err != nil {
		return err
	}
	keyFile, err := requiredString(cmd, "key-file")
	if err != nil {
		return err
	}
	encodedSalt, err := cmd.Flags().GetString("salt")
	if err != nil {
		return fmt.Errorf("invalid salt flag: %w", err)
	}

	var salt []byte
	if encodedSalt == "" {
		salt = make([]byte, cryptography.MinSaltSize)
		if _, err := rand.Read(salt); err != nil {
			return fmt.Errorf("failed to generate salt: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(salt))
	} else {
		salt, err = base64.StdEncoding.DecodeString(encodedSalt)
		if err != nil {
			return fmt.Errorf("salt is not valid base64: %w", err)
		}
	}

	passphrase, err := os.ReadFile(filepath.Clean(passphraseFile))
	if err != nil {
		h.logger.Error("Failed to read passphrase file", "error", err)
		return fmt.Errorf("failed to read passphrase file: %w", err)
	}
	passphrase = bytes.TrimRight(passphrase, "\r\n")
	defer cryptography.Zero(passphrase)

	key, err := cryptography.DeriveKeyFromPassphrase(passphrase, salt)
	if err != nil {
		h.logger.Error("Failed to derive key", "error", err)
		return err
	}
	defer cryptography.Zero(key)

	if err := writeOutputFile(keyFile, encodeKey(key)); err != nil {
		h.logger.Error("Failed to write key file", "error", err)
		return err
	}

	h.logger.Info("Derived report encryption key", "key_file", keyFile)
	return nil
}

func encodeKey(key []byte) []byte {
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(key)))
	base64.StdEncoding.Encode(encoded, key)
	return append(encoded, '\n')
}

func InitKeyCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}

	handler := NewKeyCommandHandler(log)

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a random AES-256 report encryption key",
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("key-file", "", "", "Path the base64 encoded key is written to")
	rootCmd.AddCommand(generateKeyCmd)

	var deriveKeyCmd = &cobra.Command{
		Use:   "derive-key",
		Short: "Derive a report encryption key from a passphrase using argon2id",
		RunE:  handler.DeriveKeyCmd,
	}
	deriveKeyCmd.Flags().StringP("passphrase-file", "", "", "File containing the passphrase")
	deriveKeyCmd.Flags().StringP("salt", "", "", "Base64 encoded salt (at least 16 bytes); generated when empty")
	deriveKeyCmd.Flags().StringP("key-file", "", "", "Path the base64 encoded key is written to")
	rootCmd.AddCommand(deriveKeyCmd)

	return nil
}
