package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// sealedEnvelope is the on-disk form of a locally sealed file.
// Byte slices are base64 encoded by encoding/json.
type sealedEnvelope struct {
	Algorithm  string `json:"algorithm"`
	Nonce      []byte `json:"nonce"`
	Tag        []byte `json:"tag"`
	Ciphertext []byte `json:"ciphertext"`
}

type CipherCommandHandler struct {
	logger logger.Logger
}

func NewCipherCommandHandler(logger logger.Logger) *CipherCommandHandler {
	return &CipherCommandHandler{logger: logger}
}

// SealCmd encrypts --input-file into a JSON envelope at --output-file
func (h *CipherCommandHandler) SealCmd(cmd *cobra.Command, args []string) error {
	inputFile, outputFile, keyFile, err := cipherFlags(cmd)
	if err != nil {
		return err
	}
	associatedData, _ := cmd.Flags().GetString("associated-data")

	cipher, err := newCipherFromKeyFile(keyFile, h.logger)
	if err != nil {
		h.logger.Error("Failed to load key", "error", err)
		return err
	}

	plaintext, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		h.logger.Error("Failed to read input file", "error", err)
		return fmt.Errorf("failed to read input file: %w", err)
	}

	sealed, err := cipher.Seal(plaintext, []byte(associatedData))
	if err != nil {
		h.logger.Error("Failed to seal input file", "error", err)
		return err
	}

	envelope, err := json.MarshalIndent(sealedEnvelope{
		Algorithm:  sealed.Algorithm,
		Nonce:      sealed.Nonce,
		Tag:        sealed.Tag,
		Ciphertext: sealed.Ciphertext,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	if err := writeOutputFile(outputFile, envelope); err != nil {
		h.logger.Error("Failed to write output file", "error", err)
		return err
	}

	h.logger.Info("Sealed file", "input_file", inputFile, "output_file", outputFile)
	return nil
}

// OpenCmd verifies and decrypts the envelope at --input-file into --output-file
func (h *CipherCommandHandler) OpenCmd(cmd *cobra.Command, args []string) error {
	inputFile, outputFile, keyFile, err := cipherFlags(cmd)
	if err != nil {
		return err
	}
	associatedData, _ := cmd.Flags().GetString("associated-data")

	cipher, err := newCipherFromKeyFile(keyFile, h.logger)
	if err != nil {
		h.logger.Error("Failed to load key", "error", err)
		return err
	}

	content, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		h.logger.Error("Failed to read input file", "error", err)
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var envelope sealedEnvelope
	if err := json.Unmarshal(content, &envelope); err != nil {
		return fmt.Errorf("failed to decode envelope: %w", err)
	}

	plaintext, err := cipher.Open(&crypto.SealedPayload{
		Algorithm:  envelope.Algorithm,
		Nonce:      envelope.Nonce,
		Tag:        envelope.Tag,
		Ciphertext: envelope.Ciphertext,
	}, []byte(associatedData))
	if err != nil {
		h.logger.Error("Failed to open sealed file", "input_file", inputFile, "error", err)
		return err
	}

	if err := writeOutputFile(outputFile, plaintext); err != nil {
		h.logger.Error("Failed to write output file", "error", err)
		return err
	}

	h.logger.Info("Opened sealed file", "input_file", inputFile, "output_file", outputFile)
	return nil
}

func cipherFlags(cmd *cobra.Command) (inputFile, outputFile, keyFile string, err error) {
	if inputFile, err = requiredString(cmd, "input-file"); err != nil {
		return
	}
	if outputFile, err = requiredString(cmd, "output-file"); err != nil {
		return
	}
	keyFile, err = requiredString(cmd, "key-file")
	return
}

func InitCipherCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}

	handler := NewCipherCommandHandler(log)

	var sealCmd = &cobra.Command{
		Use:   "seal",
		Short: "Encrypt a local file with AES-256-GCM",
		RunE:  handler.SealCmd,
	}
	sealCmd.Flags().StringP("input-file", "", "", "Path to the plaintext file")
	sealCmd.Flags().StringP("output-file", "", "", "Path the sealed JSON envelope is written to")
	sealCmd.Flags().StringP("key-file", "", "", "Path to the base64 encoded key")
	sealCmd.Flags().StringP("associated-data", "", "", "Optional associated data bound to the ciphertext")
	rootCmd.AddCommand(sealCmd)

	var openCmd = &cobra.Command{
		Use:   "open",
		Short: "Verify and decrypt a sealed JSON envelope",
		RunE:  handler.OpenCmd,
	}
	openCmd.Flags().StringP("input-file", "", "", "Path to the sealed JSON envelope")
	openCmd.Flags().StringP("output-file", "", "", "Path the plaintext is written to")
	openCmd.Flags().StringP("key-file", "", "", "Path to the base64 encoded key")
	openCmd.Flags().StringP("associated-data", "", "", "Associated data used when sealing")
	rootCmd.AddCommand(openCmd)

	return nil
}
