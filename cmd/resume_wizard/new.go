package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/jonathan/resume-wizard/internal/resumefile"
	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/wizard"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Write a blank resume document",
	Long: `Writes the wizard's starting resume (one blank experience, one blank education entry, no skills)
as YAML or JSON, chosen by the file extension.

Skills can be seeded with --preset and --skill, and --sample-summary fills the summary with one
of the sample summaries. Run "resume_wizard options" to list presets, levels and categories.`,
	RunE: runNew,
}

var (
	newOutput        string
	newForce         bool
	newPresets       []string
	newSkills        []string
	newSampleSummary bool
)

func init() {
	newCmd.Flags().StringVarP(&newOutput, "out", "o", "resume.yaml", "Path to the resume file to create")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
	newCmd.Flags().StringSliceVar(&newPresets, "preset", nil, "Add a skill preset by name, e.g. \"Backend Dev\" (repeatable)")
	newCmd.Flags().StringArrayVar(&newSkills, "skill", nil, "Add a skill as name[:level[:category]], e.g. Go:Expert:Technical (repeatable)")
	newCmd.Flags().BoolVar(&newSampleSummary, "sample-summary", false, "Fill the summary with a randomly chosen sample")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(newOutput); err == nil && !newForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", newOutput)
	}

	state := wizard.New()
	for _, name := range newPresets {
		preset, ok := wizard.FindSkillPreset(name)
		if !ok {
			return fmt.Errorf("unknown skill preset %q (run \"resume_wizard options\" to list presets)", name)
		}
		state.AddSkillPreset(preset)
	}
	for _, value := range newSkills {
		skill, err := parseSkill(value)
		if err != nil {
			return err
		}
		state.AddSkill(skill)
	}
	if newSampleSummary {
		state.UseSampleSummary(rand.IntN)
	}

	if err := resumefile.Write(newOutput, state.Resume); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", newOutput)
	return nil
}

// parseSkill reads name[:level[:category]]. Missing parts take the wizard defaults.
func parseSkill(value string) (types.Skill, error) {
	parts := strings.SplitN(value, ":", 3)

	skill := types.Skill{Name: strings.TrimSpace(parts[0])}
	if skill.Name == "" {
		return types.Skill{}, fmt.Errorf("invalid --skill %q: name is required", value)
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		level, err := types.ParseSkillLevel(strings.TrimSpace(parts[1]))
		if err != nil {
			return types.Skill{}, fmt.Errorf("invalid --skill %q: %w", value, err)
		}
		skill.Level = level
	}
	if len(parts) > 2 {
		skill.Category = strings.TrimSpace(parts[2])
	}
	return skill, nil
}
