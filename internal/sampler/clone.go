package sampler

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CloneAndSample shallow-clones a repository into a temporary directory
// and samples it with the local strategy. The clone is removed before
// returning.
func CloneAndSample(ctx context.Context, repoURL string, b Budget) (*Digest, error) {
	tmp, err := os.MkdirTemp("", "docdroid-clone-")
	if err != nil {
		return nil, fmt.Errorf("creating clone directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", repoURL, tmp)
	if _, err := cmd.Output(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("cloning %s: %s", repoURL, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("cloning %s: %w", repoURL, err)
	}

	return SampleLocal(tmp, b)
}
