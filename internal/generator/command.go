// Package generator invokes the local text-generation backend: an
// Ollama model run as a blocking subprocess, plus a thin HTTP client
// for pre-flight server checks.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Command runs the generation backend as a blocking external process.
// The whole prompt is written to stdin and the process is awaited to
// completion; stdout is the generated document. Stderr diagnostics are
// logged, not fatal — unless the process cannot run at all.
type Command struct {
	Bin    string
	Args   []string
	Stderr io.Writer
}

// NewOllama returns a Command that pipes the prompt through
// "ollama run <model>".
func NewOllama(bin, model string) *Command {
	if bin == "" {
		bin = "ollama"
	}
	return &Command{Bin: bin, Args: []string{"run", model}}
}

// Generate runs the backend once and returns its trimmed output.
func (c *Command) Generate(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, c.Bin, c.Args...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("generation backend %q failed: %s: %w", c.Bin, msg, err)
		}
		return "", fmt.Errorf("generation backend %q failed: %w", c.Bin, err)
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		out := c.Stderr
		if out == nil {
			out = os.Stderr
		}
		fmt.Fprintf(out, "generator: %s\n", msg)
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", fmt.Errorf("generation backend %q returned no output", c.Bin)
	}
	return text, nil
}
