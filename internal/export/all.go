package export

import (
	"context"

	"github.com/jonathan/resume-wizard/internal/types"
	"golang.org/x/sync/errgroup"
)

// ExportAll encodes r in every requested format concurrently. Artifacts are returned in
// the order of formats. The first failure cancels the remaining encoders.
func (e *Exporter) ExportAll(ctx context.Context, r types.Resume, formats []Format) ([]*Artifact, error) {
	artifacts := make([]*Artifact, len(formats))
	g, gctx := errgroup.WithContext(ctx)

	for i, format := range formats {
		g.Go(func() error {
			a, err := e.Export(gctx, r, format)
			if err != nil {
				return err
			}
			artifacts[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
