package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/healthdash/internal/pipeline"
)

type UpdateCmd struct {
	Date        string `arg:"" optional:"" help:"Date to record (YYYY-MM-DD). Defaults to yesterday."`
	SkipPublish bool   `help:"Persist the day without rebuilding or deploying the site."`
}

func (c *UpdateCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	p := &pipeline.Pipeline{
		Store:       ctx.Store,
		Locator:     ctx.Locator,
		Metrics:     ctx.Metrics,
		Publisher:   ctx.Publisher,
		Logger:      ctx.Logger,
		SkipPublish: c.SkipPublish,
	}

	added, err := p.Run(context.Background(), date)
	if err != nil {
		return err
	}

	if added {
		fmt.Printf("Added %s to %s\n", date, ctx.Store.Path())
	} else {
		fmt.Printf("Nothing to do for %s\n", date)
	}
	return nil
}
