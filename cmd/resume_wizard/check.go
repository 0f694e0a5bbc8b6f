package main

import (
	"fmt"

	"github.com/jonathan/resume-wizard/internal/wizard"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Walk a resume through the wizard steps",
	Long:  "Advances a resume through every wizard step in order and reports the first step that blocks, or that the resume is ready to export.",
	RunE:  runCheck,
}

var checkInput string

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "in", "i", "", "Path to resume JSON or YAML file (required)")

	if err := checkCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	resume, err := loadResume(cfg, checkInput)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	state, result := wizard.Replay(*resume)
	if printer := verbosePrinter(cmd); printer != nil {
		printer.PrintValidationResult(result)
	}
	if !result.IsValid {
		_, _ = fmt.Fprintf(out, "Blocked at step %d/%d (%s):\n", state.Step, wizard.LastStep, state.Step)
		for _, fe := range state.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%w: step %s", errInvalidResume, state.Step)
	}

	_, _ = fmt.Fprintf(out, "All %d steps passed, ready to export\n", len(wizard.Steps))
	return nil
}
