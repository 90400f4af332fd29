package sampler

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneAndSample_CloneFails(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	_, err := CloneAndSample(context.Background(), t.TempDir()+"/does-not-exist", DefaultBudget())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cloning")
}
