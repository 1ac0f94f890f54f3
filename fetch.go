package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// fetcher materializes a remote branch into a scratch working copy and
// owns that directory's lifecycle.
type fetcher struct {
	logger *slog.Logger
}

// clone produces a shallow single-branch checkout of branch at dest.
// A stale dest is removed first; if removal is blocked the clone is
// still attempted and reports its own failure.
func (f fetcher) clone(ctx context.Context, url, branch, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		if err := os.RemoveAll(dest); err != nil {
			f.logger.Warn("could not remove stale clone directory", "path", dest, "error", err)
		}
	}
	f.logger.Info("cloning repository", "url", url, "branch", branch)
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         1,
	})
	if err != nil {
		return fmt.Errorf("clone %s@%s: %w", url, branch, err)
	}
	return nil
}

// cleanup removes the scratch working copy. Failures are warnings only;
// the caller runs this on every exit path.
func (f fetcher) cleanup(dest string) {
	if _, err := os.Stat(dest); err != nil {
		return
	}
	if err := os.RemoveAll(dest); err != nil {
		f.logger.Warn("could not remove clone directory", "path", dest, "error", err)
	}
}
