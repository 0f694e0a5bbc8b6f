package rendering

import "github.com/jonathan/resume-wizard/internal/types"

func sampleResume() types.Resume {
	return types.Resume{
		PersonalInfo: types.PersonalInfo{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+44 20 7946 0958",
			Location: "London, UK",
			LinkedIn: "https://linkedin.com/in/ada",
			Website:  "https://ada.dev",
		},
		Summary: "Mathematician and writer, known for work on the Analytical Engine & its first program.",
		Experience: []types.Experience{
			{
				ID:           "exp-1",
				Company:      "Analytical Engines Ltd",
				Position:     "Programmer",
				StartDate:    "1842-10",
				EndDate:      "1843-09",
				Description:  "Translated and annotated the Menabrea memoir.",
				Achievements: []string{"Published Note G", "   "},
			},
			{
				ID:            "exp-2",
				Company:       "Royal Society",
				Position:      "Correspondent",
				StartDate:     "1844-01",
				IsCurrentRole: true,
				Achievements:  []string{""},
			},
		},
		Education: []types.Education{
			{
				ID:             "edu-1",
				Institution:    "Home Tutoring",
				Degree:         "Certificate",
				Field:          "Mathematics",
				GraduationDate: "1835-06",
				GPA:            "3.9/4.0",
			},
		},
		Skills: []types.Skill{
			{Name: "Go", Level: types.LevelExpert, Category: "Technical"},
			{Name: "Spanish", Level: types.LevelIntermediate, Category: "Languages"},
			{Name: "Rust", Level: types.LevelAdvanced, Category: "Technical"},
		},
	}
}

// recordingSink logs every call so traversal order can be asserted
type recordingSink struct {
	calls      []string
	header     Header
	experience []ExperienceEntry
	education  []EducationEntry
	groups     []SkillGroup
}

func (s *recordingSink) Header(h Header) {
	s.header = h
	s.calls = append(s.calls, "header")
}

func (s *recordingSink) BeginSection(kind SectionKind, title string) {
	s.calls = append(s.calls, "begin:"+string(kind)+":"+title)
}

func (s *recordingSink) Summary(string) { s.calls = append(s.calls, "summary") }

func (s *recordingSink) Experience(e ExperienceEntry) {
	s.experience = append(s.experience, e)
	s.calls = append(s.calls, "experience")
}

func (s *recordingSink) Education(e EducationEntry) {
	s.education = append(s.education, e)
	s.calls = append(s.calls, "education")
}

func (s *recordingSink) SkillGroup(g SkillGroup) {
	s.groups = append(s.groups, g)
	s.calls = append(s.calls, "skills:"+g.Category)
}

func (s *recordingSink) EndSection(kind SectionKind) {
	s.calls = append(s.calls, "end:"+string(kind))
}
