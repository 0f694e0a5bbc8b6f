package resumefile

import (
	"github.com/google/uuid"
	"github.com/jonathan/resume-wizard/internal/types"
)

// Normalize assigns an ID to every experience and education entry that lacks one
// and replaces nil lists with empty ones.
func Normalize(r *types.Resume) {
	if r.Experience == nil {
		r.Experience = []types.Experience{}
	}
	if r.Education == nil {
		r.Education = []types.Education{}
	}
	if r.Skills == nil {
		r.Skills = []types.Skill{}
	}

	for i := range r.Experience {
		exp := &r.Experience[i]
		if exp.ID == "" {
			exp.ID = uuid.New().String()
		}
		if exp.Achievements == nil {
			exp.Achievements = []string{}
		}
		if exp.IsCurrentRole {
			exp.EndDate = ""
		}
	}

	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = uuid.New().String()
		}
	}
}
