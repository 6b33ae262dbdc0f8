package commands

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type ReportCommandHandler struct {
	logger logger.Logger
}

func NewReportCommandHandler(logger logger.Logger) *ReportCommandHandler {
	return &ReportCommandHandler{logger: logger}
}

// StoreCmd encrypts --input-file into the configured report store and prints the new id
func (h *ReportCommandHandler) StoreCmd(cmd *cobra.Command, args []string) error {
	configPath, err := requiredString(cmd, "config")
	if err != nil {
		return err
	}
	inputFile, err := requiredString(cmd, "input-file")
	if err != nil {
		return err
	}
	ownerID, _ := cmd.Flags().GetString("owner-id")
	groupID, _ := cmd.Flags().GetString("group-id")
	contentType, _ := cmd.Flags().GetString("content-type")

	content, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		h.logger.Error("Failed to read input file", "error", err)
		return fmt.Errorf("failed to read input file: %w", err)
	}

	filename := filepath.Base(inputFile)
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
	}

	store, closeStore, err := openReportStore(configPath, h.logger)
	if err != nil {
		h.logger.Error("Failed to open report store", "error", err)
		return err
	}
	defer closeStore()

	id, err := store.Store(cmd.Context(), &reports.StoreRequest{
		Content:     content,
		Filename:    filename,
		ContentType: contentType,
		OwnerID:     ownerID,
		GroupID:     groupID,
	})
	if err != nil {
		h.logger.Error("Failed to store report", "error", err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

// RetrieveCmd decrypts report --id into --output-file
func (h *ReportCommandHandler) RetrieveCmd(cmd *cobra.Command, args []string) error {
	configPath, err := requiredString(cmd, "config")
	if err != nil {
		return err
	}
	reportID, err := requiredString(cmd, "id")
	if err != nil {
		return err
	}
	outputFile, err := requiredString(cmd, "output-file")
	if err != nil {
		return err
	}

	store, closeStore, err := openReportStore(configPath, h.logger)
	if err != nil {
		h.logger.Error("Failed to open report store", "error", err)
		return err
	}
	defer closeStore()

	report, err := store.Retrieve(cmd.Context(), reportID)
	if err != nil {
		h.logger.Error("Failed to retrieve report", "report_id", reportID, "error", err)
		return err
	}

	if err := writeOutputFile(outputFile, report.Content); err != nil {
		h.logger.Error("Failed to write output file", "error", err)
		return err
	}

	h.logger.Info("Retrieved report", "report_id", reportID, "filename", report.Filename, "content_type", report.ContentType)
	return nil
}

// ListCmd prints the summaries of a group, newest first
func (h *ReportCommandHandler) ListCmd(cmd *cobra.Command, args []string) error {
	configPath, err := requiredString(cmd, "config")
	if err != nil {
		return err
	}
	groupID, err := requiredString(cmd, "group-id")
	if err != nil {
		return err
	}

	store, closeStore, err := openReportStore(configPath, h.logger)
	if err != nil {
		h.logger.Error("Failed to open report store", "error", err)
		return err
	}
	defer closeStore()

	summaries, err := store.ListByGroup(cmd.Context(), groupID)
	if err != nil {
		h.logger.Error("Failed to list reports", "group_id", groupID, "error", err)
		return err
	}

	return printSummaries(cmd, summaries)
}

func printSummaries(cmd *cobra.Command, summaries []*reports.ReportSummary) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILENAME\tCONTENT TYPE\tSIZE\tOWNER\tCREATED")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID, s.Filename, s.ContentType, s.Size, s.OwnerID, s.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func InitReportCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}

	handler := NewReportCommandHandler(log)

	var storeCmd = &cobra.Command{
		Use:   "store",
		Short: "Encrypt a file and store it as a report",
		RunE:  handler.StoreCmd,
	}
	storeCmd.Flags().StringP("config", "", "", "Path to the service configuration file")
	storeCmd.Flags().StringP("input-file", "", "", "Path to the report file")
	storeCmd.Flags().StringP("owner-id", "", "", "Owner of the report")
	storeCmd.Flags().StringP("group-id", "", "", "Group (session) the report belongs to")
	storeCmd.Flags().StringP("content-type", "", "", "Content type; derived from the file extension when empty")
	rootCmd.AddCommand(storeCmd)

	var retrieveCmd = &cobra.Command{
		Use:   "retrieve",
		Short: "Decrypt a stored report into a file",
		RunE:  handler.RetrieveCmd,
	}
	retrieveCmd.Flags().StringP("config", "", "", "Path to the service configuration file")
	retrieveCmd.Flags().StringP("id", "", "", "Report id")
	retrieveCmd.Flags().StringP("output-file", "", "", "Path the decrypted report is written to")
	rootCmd.AddCommand(retrieveCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the reports of a group, newest first",
		RunE:  handler.ListCmd,
	}
	listCmd.Flags().StringP("config", "", "", "Path to the service configuration file")
	listCmd.Flags().StringP("group-id", "", "", "Group (session) id")
	rootCmd.AddCommand(listCmd)

	return nil
}
