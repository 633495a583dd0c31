// Package publish rebuilds and redeploys the dashboard site after a
// successful data write.
package publish

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Publisher is the build+deploy collaborator the pipeline invokes after
// persisting a day. Either step failing is fatal to the run.
type Publisher interface {
	Build(ctx context.Context) error
	Deploy(ctx context.Context) error
}

// NPMRunner runs the site's npm scripts in its working directory, with
// output passed through so build failures are visible in the run log.
type NPMRunner struct {
	Dir string
}

func (r *NPMRunner) Build(ctx context.Context) error {
	return r.run(ctx, "build")
}

func (r *NPMRunner) Deploy(ctx context.Context) error {
	return r.run(ctx, "deploy")
}

func (r *NPMRunner) run(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, "npm", "run", script)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("npm run %s failed: %w", script, err)
	}
	return nil
}
