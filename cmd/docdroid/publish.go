// cmd/docdroid/publish.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docdroid/docdroid/internal/hosting"
	"github.com/docdroid/docdroid/internal/source"
)

func publishCmd() *cobra.Command {
	var (
		repoURL  string
		filePath string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a README as a pull request",
		Long:  "Create a branch on the repository, commit the README to it, and\nopen a pull request against the default branch.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if repoURL == "" {
				return fmt.Errorf("provide --repo")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			token, err := resolveToken(cfg)
			if err != nil {
				return err
			}
			if token == "" {
				return fmt.Errorf("a GitHub token is required to publish: set --token, GITHUB_TOKEN, or config")
			}

			loc, err := source.ParseRepoURL(repoURL, token)
			if err != nil {
				return err
			}

			content, err := resolveReadme(filePath, stdinIfPiped())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			client := hosting.NewClient(loc.Owner, loc.Repo, loc.Token)
			if cfg.GitHub.APIBase != "" {
				client.WithBaseURL(cfg.GitHub.APIBase)
			}

			if err := client.ValidateToken(ctx); err != nil {
				return err
			}

			outcome := client.PublishReadme(ctx, content)
			if !outcome.Success {
				return fmt.Errorf("publishing README: %s", outcome.Reason)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pull request created: %s\n", outcome.PullRequestURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoURL, "repo", "", "GitHub repository URL")
	cmd.Flags().StringVar(&filePath, "file", "", "README file to publish (reads stdin if piped)")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall execution timeout")

	return cmd
}

// resolveReadme determines the README content to publish.
// Priority: filePath > stdinReader. stdinReader may be nil if stdin is
// a TTY (no pipe).
func resolveReadme(filePath string, stdinReader io.Reader) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading README file: %w", err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("README file is empty: %s", filePath)
		}
		return text, nil
	}

	if stdinReader != nil {
		data, err := io.ReadAll(stdinReader)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		if text := strings.TrimSpace(string(data)); text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("no README content provided: use --file or pipe to stdin")
}

// stdinIfPiped returns os.Stdin when input is piped, nil when stdin is
// a terminal.
func stdinIfPiped() io.Reader {
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}
