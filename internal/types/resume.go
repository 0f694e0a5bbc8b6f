// Package types provides type definitions for structured data used throughout the resume wizard.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// PersonalInfo holds the contact block at the top of a resume
type PersonalInfo struct {
	FullName string `json:"fullName" yaml:"fullName" validate:"notblank"`
	Email    string `json:"email" yaml:"email" validate:"notblank,email_shape"`
	Phone    string `json:"phone" yaml:"phone" validate:"notblank,phone_shape"`
	Location string `json:"location" yaml:"location" validate:"notblank"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty" validate:"omitempty,web_url"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty" validate:"omitempty,web_url"`
}

// Experience represents a single work history entry.
// StartDate and EndDate use YYYY-MM; EndDate is empty for a current role.
// Blank achievements are kept here and dropped at render time.
type Experience struct {
	ID            string   `json:"id" yaml:"id"`
	Company       string   `json:"company" yaml:"company" validate:"notblank"`
	Position      string   `json:"position" yaml:"position" validate:"notblank"`
	StartDate     string   `json:"startDate" yaml:"startDate" validate:"required"`
	EndDate       string   `json:"endDate" yaml:"endDate" validate:"required_unless=IsCurrentRole true"`
	IsCurrentRole bool     `json:"isCurrentRole" yaml:"isCurrentRole"`
	Description   string   `json:"description" yaml:"description"`
	Achievements  []string `json:"achievements" yaml:"achievements"`
}

// Education represents a single education entry
type Education struct {
	ID             string `json:"id" yaml:"id"`
	Institution    string `json:"institution" yaml:"institution" validate:"notblank"`
	Degree         string `json:"degree" yaml:"degree" validate:"notblank"`
	Field          string `json:"field" yaml:"field" validate:"notblank"`
	GraduationDate string `json:"graduationDate" yaml:"graduationDate" validate:"required"`
	GPA            string `json:"gpa,omitempty" yaml:"gpa,omitempty" validate:"omitempty,gpa_shape"`
}

// Degrees lists the degree names offered when adding an education entry.
// Education.Degree is stored as free text, so values outside this list are accepted.
var Degrees = []string{
	"High School Diploma",
	"Associate's Degree",
	"Bachelor's Degree",
	"Master's Degree",
	"Doctoral Degree",
	"Professional Degree",
	"Certificate",
}

// SkillLevel is one of four ranked proficiency levels
type SkillLevel string

// Skill levels, lowest to highest
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillLevels lists every level in rank order
var SkillLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// ParseSkillLevel returns the SkillLevel spelled exactly as s
func ParseSkillLevel(s string) (SkillLevel, error) {
	for _, l := range SkillLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown skill level %q", s)
}

// Rank returns the 1-based rank of the level, or 0 when the level is unknown
func (l SkillLevel) Rank() int {
	for i, known := range SkillLevels {
		if l == known {
			return i + 1
		}
	}
	return 0
}

// Skill is a named skill with a proficiency level and a free-text grouping category
type Skill struct {
	Name     string     `json:"name" yaml:"name" validate:"notblank"`
	Level    SkillLevel `json:"level" yaml:"level"`
	Category string     `json:"category" yaml:"category"`
}

// Resume aggregates every section collected by the wizard
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	Summary      string       `json:"summary" yaml:"summary"`
	Experience   []Experience `json:"experience" yaml:"experience"`
	Education    []Education  `json:"education" yaml:"education"`
	Skills       []Skill      `json:"skills" yaml:"skills"`
}
