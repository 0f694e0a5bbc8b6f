// Package export dispatches a resume to one of the output encoders and saves the result.
package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/resume-wizard/internal/rendering"
	"github.com/jonathan/resume-wizard/internal/types"
)

// Format selects an output encoding
type Format string

// Supported formats. FormatHTML is the default.
const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatWord Format = "word"
)

// Formats lists every supported format
var Formats = []Format{FormatHTML, FormatPDF, FormatWord}

// ErrUnknownFormat is returned for a format tag that no encoder handles
var ErrUnknownFormat = errors.New("unknown export format")

var whitespaceRun = regexp.MustCompile(`\s+`)

// ParseFormat maps a user-supplied tag to a Format. An empty tag means HTML.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatWord, "docx":
		return FormatWord, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension, including the dot
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return ".pdf"
	case FormatWord:
		return ".docx"
	default:
		return ".html"
	}
}

// ContentType returns the MIME type of the encoded artifact
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatWord:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/html; charset=utf-8"
	}
}

// BaseName derives the download name from a person's full name, without extension:
// "Ada Lovelace" becomes "Ada_Lovelace_Resume".
func BaseName(fullName string) string {
	return whitespaceRun.ReplaceAllString(fullName, "_") + "_Resume"
}

// Filename returns BaseName plus the format's extension
func Filename(fullName string, format Format) string {
	return BaseName(fullName) + format.Extension()
}

// Artifact is an encoded resume ready to be saved
type Artifact struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// Encoder serializes a resume into one output format
type Encoder interface {
	Encode(ctx context.Context, r types.Resume) ([]byte, error)
}

// HTMLEncoder produces a standalone HTML document
type HTMLEncoder struct{}

// Encode implements Encoder
func (HTMLEncoder) Encode(_ context.Context, r types.Resume) ([]byte, error) {
	out, err := rendering.RenderHTML(r)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// WordEncoder produces a .docx package
type WordEncoder struct{}

// Encode implements Encoder
func (WordEncoder) Encode(_ context.Context, r types.Resume) ([]byte, error) {
	return rendering.RenderDocx(r)
}

// PDFEncoder rasterizes the HTML rendering and paginates it onto A4 pages
type PDFEncoder struct {
	Rasterizer rendering.Rasterizer
	Verbose    bool
}

// Encode implements Encoder
func (e PDFEncoder) Encode(ctx context.Context, r types.Resume) ([]byte, error) {
	return rendering.RenderPDF(ctx, r, e.Rasterizer, e.Verbose)
}

// Exporter routes each export request to exactly one encoder
type Exporter struct {
	encoders map[Format]Encoder
	verbose  bool
}

// New returns an Exporter wired with the default encoders. rasterizer backs the PDF encoder.
func New(rasterizer rendering.Rasterizer, verbose bool) *Exporter {
	return NewWithEncoders(map[Format]Encoder{
		FormatHTML: HTMLEncoder{},
		FormatPDF:  PDFEncoder{Rasterizer: rasterizer, Verbose: verbose},
		FormatWord: WordEncoder{},
	}, verbose)
}

// NewWithEncoders returns an Exporter using the given encoders
func NewWithEncoders(encoders map[Format]Encoder, verbose bool) *Exporter {
	return &Exporter{encoders: encoders, verbose: verbose}
}

// Export encodes r in the given format. An empty format means HTML.
// Failures are logged and returned; r is never modified.
func (e *Exporter) Export(ctx context.Context, r types.Resume, format Format) (*Artifact, error) {
	if format == "" {
		format = FormatHTML
	}

	enc, ok := e.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if e.verbose {
		log.Printf("[EXPORT] Encoding %s as %s", r.PersonalInfo.FullName, format)
	}

	data, err := enc.Encode(ctx, r)
	if err != nil {
		log.Printf("[EXPORT] Download failed (%s): %v", format, err)
		return nil, fmt.Errorf("failed to export %s: %w", format, err)
	}

	return &Artifact{
		Format:      format,
		Filename:    Filename(r.PersonalInfo.FullName, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}
