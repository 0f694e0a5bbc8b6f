// Package browser rasterizes HTML documents with a headless Chrome instance.
package browser

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// Defaults used when a ChromeRasterizer field is left zero
const (
	DefaultTimeout       = 60 * time.Second
	DefaultScale         = 2.0
	DefaultViewportWidth = 850
)

// ChromeRasterizer renders HTML off-screen and captures it as one full-page PNG.
// Each call starts its own browser and scratch directory, so calls never share a render target.
type ChromeRasterizer struct {
	ExecPath      string        // Chrome binary; empty lets chromedp find one
	Timeout       time.Duration // Upper bound for a single render
	Scale         float64       // Device scale factor
	ViewportWidth int64         // CSS pixels
	TempDir       string        // Parent of the scratch directory; empty uses os.TempDir
	Verbose       bool
}

// NewChromeRasterizer returns a rasterizer with default timeout, scale and viewport
func NewChromeRasterizer(execPath string, verbose bool) *ChromeRasterizer {
	return &ChromeRasterizer{
		ExecPath:      execPath,
		Timeout:       DefaultTimeout,
		Scale:         DefaultScale,
		ViewportWidth: DefaultViewportWidth,
		Verbose:       verbose,
	}
}

// Rasterize writes html to a scratch file, loads it in headless Chrome and returns a
// full-page screenshot. The scratch directory is removed whether or not rendering succeeds.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string) (image.Image, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	scale := r.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	width := r.ViewportWidth
	if width <= 0 {
		width = DefaultViewportWidth
	}

	scratchDir, err := os.MkdirTemp(r.TempDir, "resume-render-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			log.Printf("[BROWSER] Failed to remove scratch directory %s: %v", scratchDir, err)
		}
	}()

	htmlPath := filepath.Join(scratchDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write scratch document: %w", err)
	}

	if r.Verbose {
		log.Printf("[BROWSER] Rasterizing %d bytes of HTML at %.1fx", len(html), scale)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var shot []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(width, 600, chromedp.EmulateScale(scale)),
		chromedp.Navigate("file://"+filepath.ToSlash(htmlPath)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}

	if r.Verbose {
		b := img.Bounds()
		log.Printf("[BROWSER] Captured %dx%d px", b.Dx(), b.Dy())
	}

	return img, nil
}
