// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-wizard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a per-section overview of a loaded resume.
func (p *Printer) PrintResume(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", r.PersonalInfo.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", r.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Summary:  %d characters\n", utf8.RuneCountInString(strings.TrimSpace(r.Summary))))
	sb.WriteString("\n")

	if len(r.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(r.Experience)))
		count := min(len(r.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := r.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s", exp.Position, exp.Company))
			if exp.IsCurrentRole {
				sb.WriteString(" (current)")
			}
			sb.WriteString("\n")
		}
		if len(r.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(r.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(r.Education)))
		count := min(len(r.Education), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", r.Education[i].Degree, r.Education[i].Institution))
		}
		if len(r.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Education)-3))
		}
		sb.WriteString("\n")
	}

	if len(r.Skills) > 0 {
		categories := make([]string, 0)
		seen := make(map[string]struct{})
		for _, s := range r.Skills {
			if _, ok := seen[s.Category]; !ok {
				seen[s.Category] = struct{}{}
				categories = append(categories, s.Category)
			}
		}
		sb.WriteString(fmt.Sprintf("Skills:   %d in %s\n", len(r.Skills), strings.Join(categories, ", ")))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationResult outputs the errors of a validation run, or a success line.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintValidationResult(result *types.ValidationResult) {
	if result == nil || len(result.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL SECTIONS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d errors:\n\n", len(result.Errors)))

	for i, fe := range result.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", fe.Message))
		if i < len(result.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}

// ExportedFile describes one file written by an export
type ExportedFile struct {
	Format string
	Path   string
	Size   int
}

// PrintExports outputs the files written by an export run.
func (p *Printer) PrintExports(files []ExportedFile) {
	if len(files) == 0 {
		return
	}

	var sb strings.Builder
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("%-5s %8d bytes  %s\n", f.Format, f.Size, f.Path))
	}

	p.printBox("EXPORTED FILES", strings.TrimSuffix(sb.String(), "\n"))
}
