package rendering

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/jonathan/resume-wizard/internal/types"
)

// Colours shared with the HTML stylesheet
const (
	colorAccent = "2563EB"
	colorTitle  = "1F2937"
	colorMuted  = "6B7280"
	colorBody   = "555555"
)

// Run is a span of text with uniform formatting. Size is in points; zero keeps the style default.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string
	Size   uint
}

// Paragraph is a styled paragraph made of runs. Indent marks list items.
type Paragraph struct {
	Style  string
	Indent bool
	Runs   []Run
}

// Text joins the paragraph's runs
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// headingLevels maps heading paragraph styles to their outline level; 0 is the document title
var headingLevels = map[string]uint{
	"Title":    0,
	"Heading1": 1,
	"Heading2": 2,
}

const (
	contactStyle  = "Subtitle"
	listItemStyle = "ListParagraph"
)

// DocxSink turns walked pieces into Word paragraphs mirroring the HTML layout
type DocxSink struct {
	Paragraphs []Paragraph
}

func (s *DocxSink) add(p Paragraph) {
	s.Paragraphs = append(s.Paragraphs, p)
}

// Header implements Sink
func (s *DocxSink) Header(h Header) {
	s.add(Paragraph{Style: "Title", Runs: []Run{{Text: h.Name, Bold: true, Color: colorTitle}}})

	if len(h.Contacts) == 0 {
		return
	}
	values := make([]string, 0, len(h.Contacts))
	for _, c := range h.Contacts {
		values = append(values, c.Value)
	}
	s.add(Paragraph{Style: contactStyle, Runs: []Run{{Text: strings.Join(values, "  |  "), Color: colorMuted, Size: 10}}})
}

// BeginSection implements Sink
func (s *DocxSink) BeginSection(_ SectionKind, title string) {
	s.add(Paragraph{Style: "Heading1", Runs: []Run{{Text: title, Bold: true, Color: colorAccent}}})
}

// Summary implements Sink
func (s *DocxSink) Summary(text string) {
	s.add(Paragraph{Runs: []Run{{Text: text, Color: colorBody}}})
}

// Experience implements Sink
func (s *DocxSink) Experience(e ExperienceEntry) {
	s.add(Paragraph{Runs: []Run{{Text: e.Position, Bold: true, Color: colorTitle, Size: 13}}})
	s.add(Paragraph{Runs: []Run{{Text: e.Company, Bold: true, Color: colorAccent}}})
	s.add(Paragraph{Runs: []Run{{Text: e.DateRange, Italic: true, Color: colorMuted, Size: 10}}})
	if e.Description != "" {
		s.add(Paragraph{Runs: []Run{{Text: e.Description, Color: colorBody}}})
	}
	for _, a := range e.Achievements {
		s.add(Paragraph{Indent: true, Runs: []Run{
			{Text: "▸ ", Bold: true, Color: colorAccent},
			{Text: a, Color: colorBody},
		}})
	}
}

// Education implements Sink
func (s *DocxSink) Education(e EducationEntry) {
	s.add(Paragraph{Runs: []Run{{Text: e.Title, Bold: true, Color: colorTitle, Size: 12}}})
	s.add(Paragraph{Runs: []Run{{Text: e.Institution, Bold: true, Color: colorAccent}}})

	line := e.Graduated
	if e.GPA != "" {
		line += " • GPA: " + e.GPA
	}
	s.add(Paragraph{Runs: []Run{{Text: line, Italic: true, Color: colorMuted, Size: 10}}})
}

// SkillGroup implements Sink
func (s *DocxSink) SkillGroup(g SkillGroup) {
	s.add(Paragraph{Style: "Heading2", Runs: []Run{{Text: g.Category, Bold: true, Color: colorTitle}}})

	labels := make([]string, 0, len(g.Skills))
	for _, skill := range g.Skills {
		labels = append(labels, skill.Label())
	}
	s.add(Paragraph{Runs: []Run{{Text: strings.Join(labels, ", "), Color: "1D4ED8"}}})
}

// EndSection implements Sink
func (s *DocxSink) EndSection(SectionKind) {}

// Bytes assembles the .docx package from the collected paragraphs
func (s *DocxSink) Bytes() ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	for i, p := range s.Paragraphs {
		if level, ok := headingLevels[p.Style]; ok {
			heading, err := doc.AddHeading("", level)
			if err != nil {
				return nil, fmt.Errorf("failed to add heading %d: %w", i+1, err)
			}
			for _, r := range p.Runs {
				applyRun(heading.AddText(CleanText(r.Text)), r)
			}
			continue
		}

		para := doc.AddParagraph("")
		switch {
		case p.Indent:
			para.Style(listItemStyle)
		case p.Style != "":
			para.Style(p.Style)
		}
		for _, r := range p.Runs {
			applyRun(para.AddText(CleanText(r.Text)), r)
		}
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx package: %w", err)
	}
	return buf.Bytes(), nil
}

func applyRun(run *docx.Run, r Run) {
	if r.Bold {
		run.Bold(true)
	}
	if r.Italic {
		run.Italic(true)
	}
	if r.Color != "" {
		run.Color(r.Color)
	}
	if r.Size > 0 {
		run.Size(uint64(r.Size))
	}
}

// RenderDocx renders r as a Word document package
func RenderDocx(r types.Resume) ([]byte, error) {
	sink := &DocxSink{}
	Walk(r, sink)

	out, err := sink.Bytes()
	if err != nil {
		return nil, &RenderError{Format: "word", Message: "failed to assemble document", Cause: err}
	}
	return out, nil
}
