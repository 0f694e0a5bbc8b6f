package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/validation"
	"github.com/jonathan/resume-wizard/internal/wizard"
	"github.com/spf13/cobra"
)

// errInvalidResume is returned after the validation report has been printed
var errInvalidResume = errors.New("resume is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document",
	Long:  "Validates every section of a resume document, or only the section guarded by --step, and prints the result as JSON. Exits non-zero when the resume is invalid.",
	RunE:  runValidate,
}

var (
	validateInput string
	validateStep  int
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to resume JSON or YAML file (required)")
	validateCmd.Flags().IntVar(&validateStep, "step", 0, "Validate only this wizard step (1-5); 0 validates every section")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	resume, err := loadResume(cfg, validateInput)
	if err != nil {
		return err
	}

	var result types.ValidationResult
	switch {
	case validateStep == 0:
		result = validation.ValidateResume(*resume)
	case validateStep >= int(wizard.FirstStep) && validateStep <= int(wizard.LastStep):
		result = wizard.ValidateStep(wizard.Step(validateStep), *resume)
	default:
		return fmt.Errorf("--step must be between %d and %d", wizard.FirstStep, wizard.LastStep)
	}

	if printer := verbosePrinter(cmd); printer != nil {
		printer.PrintResume(resume)
		printer.PrintValidationResult(&result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal validation result: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))

	if !result.IsValid {
		return fmt.Errorf("%w: %d error(s)", errInvalidResume, len(result.Errors))
	}
	return nil
}
