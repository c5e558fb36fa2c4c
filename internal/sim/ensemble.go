package sim

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/threepg/internal/config"
)

// Member is one run of an ensemble: a dataset and the physiology to drive it
// with. Members may share a Dataset; runs only read it.
type Member struct {
	Dataset    *config.Dataset
	Physiology Physiology
}

// RunEnsemble runs every member to completion, at most limit at a time
// (limit <= 0 means no limit). Results are returned in member order.
//
// All members must describe the same species in the same order. The first
// failing run cancels the rest and its error is returned.
func RunEnsemble(ctx context.Context, members []Member, limit int, opts ...DriverOption) ([]*Run, error) {
	if len(members) == 0 {
		return nil, nil
	}
	first := members[0].Dataset.Species()
	for i, m := range members[1:] {
		if !first.Matches(m.Dataset.Species()) {
			return nil, fmt.Errorf("member %d: %w", i+1, ErrSpeciesMismatch)
		}
	}

	runs := make([]*Run, len(members))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, m := range members {
		i, m := i, m
		memberOpts := opts
		if m.Physiology != nil {
			memberOpts = append(append([]DriverOption(nil), opts...), WithPhysiology(m.Physiology))
		}
		g.Go(func() error {
			r, err := NewDriver(m.Dataset, memberOpts...).Run(gctx)
			if err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
			runs[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Info("ensemble finished", "members", len(members))
	return runs, nil
}
