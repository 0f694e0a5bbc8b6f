package rendering

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/resume-wizard/internal/types"
)

// A4 page geometry in millimetres. UsableHeightMM is the slice height taken from the
// raster image for each page.
const (
	PageWidthMM    = 210.0
	PageHeightMM   = 297.0
	UsableHeightMM = 295.0
)

// RasterScale is the device scale factor requested when rasterizing HTML
const RasterScale = 2.0

// Rasterizer renders an HTML document off-screen and returns it as a single image
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) (image.Image, error)
}

// RenderPDF renders r to HTML, rasterizes it and paginates the image onto A4 pages.
// The result is an image facsimile: its text is not selectable.
func RenderPDF(ctx context.Context, r types.Resume, rasterizer Rasterizer, verbose bool) ([]byte, error) {
	if rasterizer == nil {
		return nil, &RenderError{Format: "pdf", Message: "no rasterizer configured"}
	}

	html, err := RenderHTML(r)
	if err != nil {
		return nil, &RenderError{Format: "pdf", Message: "failed to render html", Cause: err}
	}

	img, err := rasterizer.Rasterize(ctx, html)
	if err != nil {
		return nil, &RenderError{Format: "pdf", Message: "failed to rasterize html", Cause: err}
	}

	pages := Paginate(img)
	if verbose {
		b := img.Bounds()
		log.Printf("[PDF] Raster %dx%d px split into %d page(s)", b.Dx(), b.Dy(), len(pages))
	}

	out, err := AssemblePDF(pages)
	if err != nil {
		return nil, &RenderError{Format: "pdf", Message: "failed to assemble pages", Cause: err}
	}
	return out, nil
}

// SliceHeight returns the number of raster rows that fill one page's usable height
// when the image is scaled to the page width.
func SliceHeight(imageWidth int) int {
	h := int(math.Round(UsableHeightMM * float64(imageWidth) / PageWidthMM))
	if h < 1 {
		return 1
	}
	return h
}

// Paginate cuts img into successive page-height slices from top to bottom until the
// full height is consumed. An image shorter than one page yields a single page.
func Paginate(img image.Image) []image.Image {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return []image.Image{image.NewRGBA(image.Rect(0, 0, 1, 1))}
	}

	sliceH := SliceHeight(b.Dx())
	pages := make([]image.Image, 0, (b.Dy()+sliceH-1)/sliceH)

	for y := 0; y < b.Dy(); y += sliceH {
		h := sliceH
		if y+h > b.Dy() {
			h = b.Dy() - y
		}
		page := image.NewRGBA(image.Rect(0, 0, b.Dx(), h))
		draw.Draw(page, page.Bounds(), img, image.Pt(b.Min.X, b.Min.Y+y), draw.Src)
		pages = append(pages, page)
	}

	return pages
}

// AssemblePDF places each image at the top of its own A4 page, scaled to the page width
func AssemblePDF(pages []image.Image) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	for i, page := range pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, page); err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		doc.RegisterImageOptionsReader(name, opts, &buf)
		doc.AddPage()

		b := page.Bounds()
		heightMM := float64(b.Dy()) * PageWidthMM / float64(b.Dx())
		doc.ImageOptions(name, 0, 0, PageWidthMM, heightMM, false, opts, 0, "")
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf assembly failed: %w", err)
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return out.Bytes(), nil
}
