package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-wizard/internal/rendering"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the HTML preview of a resume",
	Long:  "Renders a resume document as a standalone HTML page. The preview is produced even when sections are incomplete; empty sections are omitted.",
	RunE:  runPreview,
}

var (
	previewInput  string
	previewOutput string
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "in", "i", "", "Path to resume JSON or YAML file (required)")
	previewCmd.Flags().StringVarP(&previewOutput, "out", "o", "", "Path to output HTML file (default: stdout)")

	if err := previewCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	resume, err := loadResume(cfg, previewInput)
	if err != nil {
		return err
	}

	html, err := rendering.RenderHTML(*resume)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if previewOutput == "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(previewOutput), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(previewOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Preview: %s\n", previewOutput)
	return nil
}
