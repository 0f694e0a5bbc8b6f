package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-wizard/internal/types"
)

//go:embed templates
var templateFS embed.FS

const htmlTemplateName = "templates/resume.html.tmpl"

var contactIcons = map[ContactKind]string{
	ContactEmail:    "📧",
	ContactPhone:    "📞",
	ContactLocation: "📍",
	ContactLinkedIn: "💼",
	ContactWebsite:  "🌐",
}

// htmlSection collects one section's entries until it is closed
type htmlSection struct {
	Kind       SectionKind
	Title      string
	Summary    string
	Experience []ExperienceEntry
	Education  []EducationEntry
	Skills     []SkillGroup
}

// htmlDocument is the value the document template is executed against
type htmlDocument struct {
	Header   Header
	Sections []htmlSection
}

// HTMLSink accumulates walked pieces and renders them as a standalone HTML document
type HTMLSink struct {
	doc     htmlDocument
	current *htmlSection
}

// Header implements Sink
func (s *HTMLSink) Header(h Header) { s.doc.Header = h }

// BeginSection implements Sink
func (s *HTMLSink) BeginSection(kind SectionKind, title string) {
	s.current = &htmlSection{Kind: kind, Title: title}
}

// Summary implements Sink
func (s *HTMLSink) Summary(text string) { s.current.Summary = text }

// Experience implements Sink
func (s *HTMLSink) Experience(e ExperienceEntry) {
	s.current.Experience = append(s.current.Experience, e)
}

// Education implements Sink
func (s *HTMLSink) Education(e EducationEntry) {
	s.current.Education = append(s.current.Education, e)
}

// SkillGroup implements Sink
func (s *HTMLSink) SkillGroup(g SkillGroup) {
	s.current.Skills = append(s.current.Skills, g)
}

// EndSection implements Sink
func (s *HTMLSink) EndSection(SectionKind) {
	if s.current != nil {
		s.doc.Sections = append(s.doc.Sections, *s.current)
		s.current = nil
	}
}

// Render executes the document template over everything received so far
func (s *HTMLSink) Render() (string, error) {
	tmpl, err := parseTemplate(htmlTemplateName)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, s.doc); err != nil {
		return "", &TemplateError{
			Template: htmlTemplateName,
			Message:  "failed to execute template",
			Cause:    err,
		}
	}
	return result.String(), nil
}

// RenderHTML renders r as a self-contained HTML document with inline styles
func RenderHTML(r types.Resume) (string, error) {
	sink := &HTMLSink{}
	Walk(r, sink)

	out, err := sink.Render()
	if err != nil {
		return "", &RenderError{Format: "html", Message: "failed to render document", Cause: err}
	}
	return out, nil
}

// parseTemplate reads and parses an embedded HTML template
func parseTemplate(name string) (*template.Template, error) {
	content, err := templateFS.ReadFile(name)
	if err != nil {
		return nil, &TemplateError{
			Template: name,
			Message:  fmt.Sprintf("template file not found: %s", name),
			Cause:    err,
		}
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"contactIcon": func(k ContactKind) string { return contactIcons[k] },
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Template: name,
			Message:  "failed to parse template",
			Cause:    err,
		}
	}

	return tmpl, nil
}
