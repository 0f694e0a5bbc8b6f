// Package wizard holds the resume being edited and the step it is on.
package wizard

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/validation"
)

// Step is a 1-based wizard position
type Step int

// Wizard steps in order
const (
	StepPersonal Step = iota + 1
	StepSummary
	StepExperience
	StepEducation
	StepSkills
)

// FirstStep and LastStep bound the wizard
const (
	FirstStep = StepPersonal
	LastStep  = StepSkills
)

// Steps lists every step in order
var Steps = []Step{StepPersonal, StepSummary, StepExperience, StepEducation, StepSkills}

var stepLabels = map[Step]string{
	StepPersonal:   "Personal",
	StepSummary:    "Summary",
	StepExperience: "Experience",
	StepEducation:  "Education",
	StepSkills:     "Skills",
}

func (s Step) String() string {
	if label, ok := stepLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// State is one snapshot of the wizard. Errors holds the result of the last failed advance.
type State struct {
	Step   Step               `json:"currentStep"`
	Resume types.Resume       `json:"resume"`
	Errors []types.FieldError `json:"errors"`
}

// New returns a wizard on the first step with the default resume
func New() *State {
	return &State{Step: FirstStep, Resume: DefaultResume()}
}

// DefaultResume returns an empty resume with one blank experience (holding one blank
// achievement), one blank education entry and no skills.
func DefaultResume() types.Resume {
	return types.Resume{
		Experience: []types.Experience{newExperience()},
		Education:  []types.Education{newEducation()},
		Skills:     []types.Skill{},
	}
}

// FromResume returns a wizard on the first step holding r
func FromResume(r types.Resume) *State {
	return &State{Step: FirstStep, Resume: r}
}

// ValidateStep runs the validator that guards the given step
func ValidateStep(step Step, r types.Resume) types.ValidationResult {
	switch step {
	case StepPersonal:
		return validation.ValidatePersonalInfo(r.PersonalInfo)
	case StepSummary:
		return validation.ValidateSummary(r.Summary)
	case StepExperience:
		return validation.ValidateExperience(r.Experience)
	case StepEducation:
		return validation.ValidateEducation(r.Education)
	case StepSkills:
		return validation.ValidateSkills(r.Skills)
	default:
		return types.NewValidationResult([]types.FieldError{{
			Field:   "currentStep",
			Message: fmt.Sprintf("Unknown step %d", int(step)),
		}})
	}
}

// AttemptAdvance validates the current step. On failure the step is kept and Errors holds
// the result's errors. On success the step moves forward, except on the last step, and
// Errors is cleared. The returned result is never nil.
func AttemptAdvance(state State) (State, *types.ValidationResult) {
	result := ValidateStep(state.Step, state.Resume)
	if !result.IsValid {
		state.Errors = result.Errors
		return state, &result
	}

	if state.Step < LastStep {
		state.Step++
	}
	state.Errors = nil
	return state, &result
}

// Retreat moves back one step, never before the first, and clears errors
func Retreat(state State) State {
	if state.Step > FirstStep {
		state.Step--
	}
	state.Errors = nil
	return state
}

// CanExport reports whether the export controls are available
func CanExport(state State) bool {
	return state.Step == LastStep
}

// Replay walks a resume through every step from the first, as if each advance were
// requested in turn. It stops at the first step that does not validate.
func Replay(r types.Resume) (State, *types.ValidationResult) {
	state := *FromResume(r)
	for {
		next, result := AttemptAdvance(state)
		if !result.IsValid || next.Step == state.Step {
			return next, result
		}
		state = next
	}
}

func newID() string {
	return uuid.New().String()
}

func newExperience() types.Experience {
	return types.Experience{ID: newID(), Achievements: []string{""}}
}

func newEducation() types.Education {
	return types.Education{ID: newID()}
}
