// Package rendering turns a resume into HTML, Word and PDF documents.
//
// Walk performs the single traversal shared by every output format: it fixes the
// section order, formats dates, drops blank achievements and groups skills by
// category. Format-specific sinks only decide how each piece is written.
package rendering

import (
	"strings"
	"time"

	"github.com/jonathan/resume-wizard/internal/types"
)

// SectionKind identifies a resume section
type SectionKind string

// Sections in the order they are rendered
const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
)

// Section titles shown in every output format
const (
	TitleSummary    = "Professional Summary"
	TitleExperience = "Work Experience"
	TitleEducation  = "Education"
	TitleSkills     = "Skills"
)

// ContactKind identifies an entry of the header contact line
type ContactKind string

// Contact kinds in display order
const (
	ContactEmail    ContactKind = "email"
	ContactPhone    ContactKind = "phone"
	ContactLocation ContactKind = "location"
	ContactLinkedIn ContactKind = "linkedin"
	ContactWebsite  ContactKind = "website"
)

// Contact is one item of the header contact line
type Contact struct {
	Kind  ContactKind
	Value string
}

// Header is the name and the non-empty contact details
type Header struct {
	Name     string
	Contacts []Contact
}

// ExperienceEntry is a work history entry prepared for display
type ExperienceEntry struct {
	Position     string
	Company      string
	DateRange    string
	Description  string
	Achievements []string // non-blank only
}

// EducationEntry is an education entry prepared for display
type EducationEntry struct {
	Title       string // "{degree} in {field}"
	Institution string
	Graduated   string // "Graduated June 2020"
	GPA         string
}

// SkillItem is a single skill within a category group
type SkillItem struct {
	Name  string
	Level types.SkillLevel
}

// Label renders the skill as "name (level)"
func (s SkillItem) Label() string {
	return s.Name + " (" + string(s.Level) + ")"
}

// SkillGroup holds the skills that share a category, in input order
type SkillGroup struct {
	Category string
	Skills   []SkillItem
}

// Sink receives the pieces of a resume in display order.
// Every BeginSection is followed by the section's entries and a matching EndSection.
type Sink interface {
	Header(h Header)
	BeginSection(kind SectionKind, title string)
	Summary(text string)
	Experience(e ExperienceEntry)
	Education(e EducationEntry)
	SkillGroup(g SkillGroup)
	EndSection(kind SectionKind)
}

// Walk feeds r to sink. Sections with no data are skipped entirely.
func Walk(r types.Resume, sink Sink) {
	sink.Header(buildHeader(r.PersonalInfo))

	if r.Summary != "" {
		sink.BeginSection(SectionSummary, TitleSummary)
		sink.Summary(r.Summary)
		sink.EndSection(SectionSummary)
	}

	if len(r.Experience) > 0 {
		sink.BeginSection(SectionExperience, TitleExperience)
		for _, exp := range r.Experience {
			sink.Experience(buildExperience(exp))
		}
		sink.EndSection(SectionExperience)
	}

	if len(r.Education) > 0 {
		sink.BeginSection(SectionEducation, TitleEducation)
		for _, edu := range r.Education {
			sink.Education(buildEducation(edu))
		}
		sink.EndSection(SectionEducation)
	}

	if len(r.Skills) > 0 {
		sink.BeginSection(SectionSkills, TitleSkills)
		for _, g := range groupSkills(r.Skills) {
			sink.SkillGroup(g)
		}
		sink.EndSection(SectionSkills)
	}
}

func buildHeader(p types.PersonalInfo) Header {
	h := Header{Name: p.FullName}
	add := func(kind ContactKind, value string) {
		if value != "" {
			h.Contacts = append(h.Contacts, Contact{Kind: kind, Value: value})
		}
	}
	add(ContactEmail, p.Email)
	add(ContactPhone, p.Phone)
	add(ContactLocation, p.Location)
	add(ContactLinkedIn, strings.Replace(p.LinkedIn, "https://", "", 1))
	add(ContactWebsite, strings.Replace(p.Website, "https://", "", 1))
	return h
}

func buildExperience(exp types.Experience) ExperienceEntry {
	end := FormatMonth(exp.EndDate)
	if exp.IsCurrentRole {
		end = "Present"
	}

	var achievements []string
	for _, a := range exp.Achievements {
		if strings.TrimSpace(a) != "" {
			achievements = append(achievements, a)
		}
	}

	return ExperienceEntry{
		Position:     exp.Position,
		Company:      exp.Company,
		DateRange:    FormatMonth(exp.StartDate) + " - " + end,
		Description:  exp.Description,
		Achievements: achievements,
	}
}

func buildEducation(edu types.Education) EducationEntry {
	return EducationEntry{
		Title:       edu.Degree + " in " + edu.Field,
		Institution: edu.Institution,
		Graduated:   "Graduated " + FormatMonth(edu.GraduationDate),
		GPA:         edu.GPA,
	}
}

// FormatMonth renders a YYYY-MM value as "January 2006".
// Empty input renders as empty; input that does not parse is returned unchanged.
func FormatMonth(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}

// groupSkills buckets skills by category, keeping categories in first-seen order
// and skills in input order within each category.
func groupSkills(skills []types.Skill) []SkillGroup {
	order := make([]string, 0)
	byCategory := make(map[string][]SkillItem)

	for _, s := range skills {
		if _, seen := byCategory[s.Category]; !seen {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], SkillItem{Name: s.Name, Level: s.Level})
	}

	groups := make([]SkillGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, SkillGroup{Category: category, Skills: byCategory[category]})
	}
	return groups
}
