package rendering

import (
	"testing"

	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_SectionOrder(t *testing.T) {
	sink := &recordingSink{}
	Walk(sampleResume(), sink)

	assert.Equal(t, []string{
		"header",
		"begin:summary:Professional Summary", "summary", "end:summary",
		"begin:experience:Work Experience", "experience", "experience", "end:experience",
		"begin:education:Education", "education", "end:education",
		"begin:skills:Skills", "skills:Technical", "skills:Languages", "end:skills",
	}, sink.calls)
}

func TestWalk_SkipsEmptySections(t *testing.T) {
	sink := &recordingSink{}
	Walk(types.Resume{PersonalInfo: types.PersonalInfo{FullName: "Ada Lovelace"}}, sink)

	assert.Equal(t, []string{"header"}, sink.calls)
	assert.Empty(t, sink.header.Contacts)
}

func TestWalk_HeaderContactsInFixedOrder(t *testing.T) {
	sink := &recordingSink{}
	r := sampleResume()
	r.PersonalInfo.Phone = ""
	Walk(r, sink)

	kinds := make([]ContactKind, 0, len(sink.header.Contacts))
	for _, c := range sink.header.Contacts {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ContactKind{ContactEmail, ContactLocation, ContactLinkedIn, ContactWebsite}, kinds)
	assert.Equal(t, "linkedin.com/in/ada", sink.header.Contacts[2].Value)
	assert.Equal(t, "ada.dev", sink.header.Contacts[3].Value)
}

func TestWalk_ExperienceEntries(t *testing.T) {
	sink := &recordingSink{}
	Walk(sampleResume(), sink)

	require.Len(t, sink.experience, 2)
	assert.Equal(t, "October 1842 - September 1843", sink.experience[0].DateRange)
	assert.Equal(t, []string{"Published Note G"}, sink.experience[0].Achievements)
	assert.Equal(t, "January 1844 - Present", sink.experience[1].DateRange)
	assert.Empty(t, sink.experience[1].Achievements)
}

func TestWalk_EducationEntries(t *testing.T) {
	sink := &recordingSink{}
	Walk(sampleResume(), sink)

	require.Len(t, sink.education, 1)
	assert.Equal(t, "Certificate in Mathematics", sink.education[0].Title)
	assert.Equal(t, "Graduated June 1835", sink.education[0].Graduated)
	assert.Equal(t, "3.9/4.0", sink.education[0].GPA)
}

func TestGroupSkills_PreservesInsertionOrder(t *testing.T) {
	groups := groupSkills([]types.Skill{
		{Name: "Go", Category: "Technical"},
		{Name: "Spanish", Category: "Languages"},
		{Name: "Rust", Category: "Technical"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "Technical", groups[0].Category)
	assert.Equal(t, "Languages", groups[1].Category)
	require.Len(t, groups[0].Skills, 2)
	assert.Equal(t, "Go", groups[0].Skills[0].Name)
	assert.Equal(t, "Rust", groups[0].Skills[1].Name)
}

func TestGroupSkills_NotAlphabetized(t *testing.T) {
	groups := groupSkills([]types.Skill{
		{Name: "Zig", Category: "Zeta"},
		{Name: "Ada", Category: "Alpha"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "Zeta", groups[0].Category)
	assert.Equal(t, "Alpha", groups[1].Category)
}

func TestGroupSkills_EmptyCategory(t *testing.T) {
	groups := groupSkills([]types.Skill{{Name: "Go"}, {Name: "Rust"}})
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Category)
	assert.Len(t, groups[0].Skills, 2)
}

func TestSkillItem_Label(t *testing.T) {
	assert.Equal(t, "Go (Expert)", SkillItem{Name: "Go", Level: types.LevelExpert}.Label())
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "June 2023", FormatMonth("2023-06"))
	assert.Equal(t, "January 2000", FormatMonth("2000-01"))
	assert.Equal(t, "", FormatMonth(""))
	assert.Equal(t, "soon", FormatMonth("soon"))
}
