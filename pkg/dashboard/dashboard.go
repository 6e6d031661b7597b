package dashboard

import (
	"context"

	"github.com/data4safety/d4s/pkg/reference"
	"github.com/data4safety/d4s/pkg/table"
	"golang.org/x/sync/errgroup"
)

// Dashboard keeps all summaries of a cleaned table.
type Dashboard struct {
	TimeSeries TimeSeries
	Citizens   CitizenMap
	GeoSex     GeoSex
	// Citizenship is the reference table shown verbatim.
	Citizenship []reference.Citizenship
}

// Build computes the three summaries concurrently and returns the first
// error. The summaries share no state.
func Build(
	ctx context.Context,
	cleaned *table.Table,
	ref *reference.Reference,
	s Sentinels,
) (*Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &Dashboard{Citizenship: ref.Citizenship()}
	var g errgroup.Group

	g.Go(func() error {
		var err error
		res.TimeSeries, err = TimeSeriesOf(cleaned)
		return err
	})
	g.Go(func() error {
		var err error
		res.Citizens, err = CitizenMapOf(cleaned, ref)
		return err
	})
	g.Go(func() error {
		var err error
		res.GeoSex, err = GeoSexOf(cleaned, s)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
