// cmd/docdroid/validate.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/docdroid/docdroid/internal/hosting"
	"github.com/docdroid/docdroid/internal/source"
)

func validateCmd() *cobra.Command {
	var (
		repoURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate repository access",
		Long:  "Check that the configured token can see the repository and has\npush permission, without changing anything.",
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

			loc, err := source.ParseRepoURL(repoURL, token)
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

			fmt.Fprintf(cmd.OutOrStdout(), "Token can push to %s/%s\n", loc.Owner, loc.Repo)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoURL, "repo", "", "GitHub repository URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall execution timeout")

	return cmd
}
