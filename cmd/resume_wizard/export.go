package main

import (
	"fmt"

	"github.com/jonathan/resume-wizard/internal/browser"
	"github.com/jonathan/resume-wizard/internal/export"
	"github.com/jonathan/resume-wizard/internal/observability"
	"github.com/jonathan/resume-wizard/internal/wizard"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as HTML, PDF or Word",
	Long: `Exports a resume document in one or more formats. The file name is derived from the
person's full name, e.g. Ada_Lovelace_Resume.pdf.

Export is only available once every wizard step validates; --force skips that gate.
PDF export needs a Chrome or Chromium executable (chrome_path, CHROME_PATH or PATH).`,
	RunE: runExport,
}

var (
	exportInput   string
	exportFormats []string
	exportOutDir  string
	exportForce   bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to resume JSON or YAML file (required)")
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", nil, "Export format: html, pdf or word (repeatable; default from config)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "Output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "Export even if some wizard step does not validate")

	if err := exportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	formatNames := exportFormats
	if len(formatNames) == 0 {
		formatNames = []string{cfg.Format}
	}
	formats := make([]export.Format, 0, len(formatNames))
	for _, name := range formatNames {
		f, err := export.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	resume, err := loadResume(cfg, exportInput)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if state, result := wizard.Replay(*resume); !wizard.CanExport(state) || !result.IsValid {
		if !exportForce {
			for _, fe := range state.Errors {
				_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("%w: export is unavailable until step %s validates (use --force to override)", errInvalidResume, state.Step)
		}
		_, _ = fmt.Fprintf(out, "Warning: step %s does not validate, exporting anyway\n", state.Step)
	}

	rasterizer := browser.NewChromeRasterizer(cfg.ChromePath, cfg.Verbose)
	rasterizer.Timeout = cfg.RenderTimeout
	rasterizer.Scale = cfg.Scale

	exporter := export.New(rasterizer, cfg.Verbose)
	artifacts, err := exporter.ExportAll(cmd.Context(), *resume, formats)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	outDir := exportOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	files := make([]observability.ExportedFile, 0, len(artifacts))
	for _, a := range artifacts {
		path, err := export.Save(outDir, a)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Exported %s: %s (%d bytes)\n", a.Format, path, len(a.Data))
		files = append(files, observability.ExportedFile{Format: string(a.Format), Path: path, Size: len(a.Data)})
	}

	if printer := verbosePrinter(cmd); printer != nil {
		printer.PrintExports(files)
	}
	return nil
}
