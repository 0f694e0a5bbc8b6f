package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/resume-wizard/internal/types"
)

// Edits never write through to slices that an earlier State may share: every list is
// cloned before it is changed.

// Defaults for a newly added skill
const (
	DefaultSkillLevel    = types.LevelIntermediate
	DefaultSkillCategory = "Technical"
)

// SkillCategories lists the categories offered when adding a skill
var SkillCategories = []string{"Technical", "Soft Skills", "Languages", "Tools & Software", "Other"}

// SkillPreset is a named bundle of skills that can be added in one action
type SkillPreset struct {
	Name     string
	Category string
	Skills   []string
}

// SkillPresets lists the bundles offered on the skills step
var SkillPresets = []SkillPreset{
	{Name: "Frontend Dev", Category: "Technical", Skills: []string{"JavaScript", "React", "Node.js", "Python"}},
	{Name: "Backend Dev", Category: "Technical", Skills: []string{"Java", "Spring Boot", "MySQL", "AWS"}},
	{Name: "Soft Skills", Category: "Soft Skills", Skills: []string{"Leadership", "Communication", "Problem Solving", "Teamwork"}},
	{Name: "Tools", Category: "Tools & Software", Skills: []string{"Git", "Docker", "Figma", "Jira"}},
}

// FindSkillPreset looks a preset up by name, ignoring case and surrounding space
func FindSkillPreset(name string) (SkillPreset, bool) {
	for _, p := range SkillPresets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return SkillPreset{}, false
}

// SummarySamples are ready-made summaries offered on the summary step. Each one is
// within the summary length bounds.
var SummarySamples = []string{
	"Experienced software engineer with 5+ years developing scalable web applications using React, Node.js, and cloud technologies. Proven track record of leading cross-functional teams and delivering high-quality solutions that drive business growth and improve user experience.",
	"Results-driven marketing professional with expertise in digital marketing, content strategy, and data analytics. Successfully increased brand awareness by 150% and generated $2M+ in revenue through strategic campaigns and customer acquisition initiatives.",
	"Creative graphic designer with 4+ years of experience in branding, UI/UX design, and digital media. Specialized in creating compelling visual identities that enhance brand recognition and user engagement across multiple platforms.",
}

// UseSampleSummary replaces the summary with one of SummarySamples. pick receives the
// number of samples and returns the index to use, e.g. rand.IntN.
func (s *State) UseSampleSummary(pick func(n int) int) string {
	i := pick(len(SummarySamples))
	if i < 0 || i >= len(SummarySamples) {
		i = 0
	}
	s.Resume.Summary = SummarySamples[i]
	return s.Resume.Summary
}

// SetPersonalInfo replaces the personal info block
func (s *State) SetPersonalInfo(info types.PersonalInfo) {
	s.Resume.PersonalInfo = info
}

// SetSummary replaces the summary
func (s *State) SetSummary(summary string) {
	s.Resume.Summary = summary
}

// AddExperience appends a blank experience and returns its ID
func (s *State) AddExperience() string {
	exp := newExperience()
	s.Resume.Experience = append(slices.Clip(s.Resume.Experience), exp)
	return exp.ID
}

// RemoveExperience deletes the experience with the given ID. The last entry cannot be removed.
func (s *State) RemoveExperience(id string) error {
	i, err := s.experienceIndex(id)
	if err != nil {
		return err
	}
	if len(s.Resume.Experience) == 1 {
		return fmt.Errorf("%w: experience", ErrLastEntry)
	}
	s.Resume.Experience = slices.Delete(slices.Clone(s.Resume.Experience), i, i+1)
	return nil
}

// UpdateExperience applies fn to a copy of the experience with the given ID and stores the result.
// The ID cannot be changed through fn.
func (s *State) UpdateExperience(id string, fn func(*types.Experience)) error {
	i, err := s.experienceIndex(id)
	if err != nil {
		return err
	}

	list := slices.Clone(s.Resume.Experience)
	exp := list[i]
	exp.Achievements = slices.Clone(exp.Achievements)
	fn(&exp)
	exp.ID = id
	list[i] = exp

	s.Resume.Experience = list
	return nil
}

// AddAchievement appends a blank achievement to the experience with the given ID
func (s *State) AddAchievement(id string) error {
	return s.UpdateExperience(id, func(e *types.Experience) {
		e.Achievements = append(e.Achievements, "")
	})
}

// SetAchievement replaces achievement idx of the experience with the given ID
func (s *State) SetAchievement(id string, idx int, text string) error {
	if err := s.checkAchievement(id, idx); err != nil {
		return err
	}
	return s.UpdateExperience(id, func(e *types.Experience) {
		e.Achievements[idx] = text
	})
}

// RemoveAchievement deletes achievement idx of the experience with the given ID.
// The last achievement cannot be removed.
func (s *State) RemoveAchievement(id string, idx int) error {
	if err := s.checkAchievement(id, idx); err != nil {
		return err
	}
	i, _ := s.experienceIndex(id)
	if len(s.Resume.Experience[i].Achievements) == 1 {
		return fmt.Errorf("%w: achievement", ErrLastEntry)
	}
	return s.UpdateExperience(id, func(e *types.Experience) {
		e.Achievements = slices.Delete(e.Achievements, idx, idx+1)
	})
}

// AddEducation appends a blank education entry and returns its ID
func (s *State) AddEducation() string {
	edu := newEducation()
	s.Resume.Education = append(slices.Clip(s.Resume.Education), edu)
	return edu.ID
}

// RemoveEducation deletes the education entry with the given ID. The last entry cannot be removed.
func (s *State) RemoveEducation(id string) error {
	i, err := s.educationIndex(id)
	if err != nil {
		return err
	}
	if len(s.Resume.Education) == 1 {
		return fmt.Errorf("%w: education", ErrLastEntry)
	}
	s.Resume.Education = slices.Delete(slices.Clone(s.Resume.Education), i, i+1)
	return nil
}

// UpdateEducation applies fn to a copy of the education entry with the given ID and stores the result
func (s *State) UpdateEducation(id string, fn func(*types.Education)) error {
	i, err := s.educationIndex(id)
	if err != nil {
		return err
	}

	list := slices.Clone(s.Resume.Education)
	edu := list[i]
	fn(&edu)
	edu.ID = id
	list[i] = edu

	s.Resume.Education = list
	return nil
}

// AddSkill appends a skill. Zero level and category take the defaults.
func (s *State) AddSkill(skill types.Skill) {
	if skill.Level == "" {
		skill.Level = DefaultSkillLevel
	}
	if skill.Category == "" {
		skill.Category = DefaultSkillCategory
	}
	s.Resume.Skills = append(slices.Clip(s.Resume.Skills), skill)
}

// AddSkillPreset appends every skill of the preset at the default level
func (s *State) AddSkillPreset(preset SkillPreset) {
	skills := slices.Clip(s.Resume.Skills)
	for _, name := range preset.Skills {
		skills = append(skills, types.Skill{Name: name, Level: DefaultSkillLevel, Category: preset.Category})
	}
	s.Resume.Skills = skills
}

// UpdateSkill replaces skill idx
func (s *State) UpdateSkill(idx int, skill types.Skill) error {
	if idx < 0 || idx >= len(s.Resume.Skills) {
		return fmt.Errorf("%w: skill %d", ErrEntryNotFound, idx)
	}
	list := slices.Clone(s.Resume.Skills)
	list[idx] = skill
	s.Resume.Skills = list
	return nil
}

// RemoveSkill deletes skill idx. Skills are optional, so the list may become empty.
func (s *State) RemoveSkill(idx int) error {
	if idx < 0 || idx >= len(s.Resume.Skills) {
		return fmt.Errorf("%w: skill %d", ErrEntryNotFound, idx)
	}
	s.Resume.Skills = slices.Delete(slices.Clone(s.Resume.Skills), idx, idx+1)
	return nil
}

func (s *State) experienceIndex(id string) (int, error) {
	i := slices.IndexFunc(s.Resume.Experience, func(e types.Experience) bool { return e.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: experience %q", ErrEntryNotFound, id)
	}
	return i, nil
}

func (s *State) educationIndex(id string) (int, error) {
	i := slices.IndexFunc(s.Resume.Education, func(e types.Education) bool { return e.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: education %q", ErrEntryNotFound, id)
	}
	return i, nil
}

func (s *State) checkAchievement(id string, idx int) error {
	i, err := s.experienceIndex(id)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(s.Resume.Experience[i].Achievements) {
		return fmt.Errorf("%w: achievement %d of experience %q", ErrEntryNotFound, idx, id)
	}
	return nil
}
