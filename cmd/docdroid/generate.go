// cmd/docdroid/generate.go
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/docdroid/docdroid/internal/diff"
	"github.com/docdroid/docdroid/internal/generator"
	"github.com/docdroid/docdroid/internal/hosting"
	"github.com/docdroid/docdroid/internal/output"
	"github.com/docdroid/docdroid/internal/prompt"
	"github.com/docdroid/docdroid/internal/sampler"
	"github.com/docdroid/docdroid/internal/source"
)

func generateCmd() *cobra.Command {
	var (
		repoURL    string
		dirPath    string
		styleFlag  string
		useClone   bool
		noMetadata bool
		formatFlag string
		outPath    string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a README",
		Long:  "Sample a repository (GitHub API, shallow clone, or local directory),\nassemble a prompt, and generate a README with the local model.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if repoURL == "" && dirPath == "" {
				return fmt.Errorf("provide --repo or --dir")
			}
			if repoURL != "" && dirPath != "" {
				return fmt.Errorf("--repo and --dir are mutually exclusive")
			}

			style, err := prompt.ParseStyle(styleFlag)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := time.Now()

			var (
				promptText    string
				sourceName    string
				existing      hosting.ExistingReadme
				metadataFound bool
			)

			switch {
			case dirPath != "":
				abs, err := filepath.Abs(dirPath)
				if err != nil {
					return fmt.Errorf("resolving %s: %w", dirPath, err)
				}
				digest, err := sampler.SampleLocal(abs, samplerBudget(cfg, false))
				if err != nil {
					return err
				}
				promptText = prompt.LocalDirectory(digest.Render(), style, filepath.Base(abs))
				sourceName = dirPath

			case useClone:
				digest, err := sampler.CloneAndSample(ctx, repoURL, samplerBudget(cfg, false))
				if err != nil {
					return err
				}
				promptText = prompt.Basic(digest.Render(), style)
				sourceName = repoURL

			default:
				token, err := resolveToken(cfg)
				if err != nil {
					return err
				}
				loc, err := source.ParseRepoURL(repoURL, token)
				if err != nil {
					return err
				}

				client := hosting.NewClient(loc.Owner, loc.Repo, loc.Token)
				if cfg.GitHub.APIBase != "" {
					client.WithBaseURL(cfg.GitHub.APIBase)
				}

				var md hosting.Metadata
				if !noMetadata {
					md = client.FetchMetadata(ctx)
					metadataFound = md.Found
				}
				existing = client.DetectReadme(ctx)

				fetcher := hosting.NewContentFetcher(token, 30*time.Second)
				digest, err := sampler.SampleRemote(ctx, client, fetcher, samplerBudget(cfg, true))
				if err != nil {
					return err
				}

				if md.Found {
					promptText = prompt.Enhanced(digest.Render(), md, style, existing.Content)
				} else {
					promptText = prompt.Basic(digest.Render(), style)
				}
				sourceName = loc.String()
			}

			preflight := generator.NewOllamaClient(cfg.Generator.BaseURL)
			if !preflight.IsRunning(ctx) {
				return fmt.Errorf("ollama is not running at %s; start it with 'ollama serve'", cfg.Generator.BaseURL)
			}

			gen := generator.NewOllama(cfg.Generator.Command, cfg.Generator.Model)
			readme, err := gen.Generate(ctx, promptText)
			if err != nil {
				return err
			}

			result := &output.Result{
				Source:        sourceName,
				Style:         string(style),
				Readme:        readme,
				MetadataFound: metadataFound,
				DurationMs:    time.Since(start).Milliseconds(),
			}
			if existing.Found {
				report := diff.Analyze(existing.Content, readme)
				result.Comparison = &report
			}

			var formatter output.Formatter
			switch formatFlag {
			case "json":
				formatter = output.NewJSONFormatter()
			default:
				formatter = output.NewMarkdownFormatter()
			}

			out, err := formatter.Format(result)
			if err != nil {
				return fmt.Errorf("formatting output: %w", err)
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, out, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&repoURL, "repo", "", "GitHub repository URL")
	cmd.Flags().StringVar(&dirPath, "dir", "", "local project directory")
	cmd.Flags().StringVar(&styleFlag, "style", "formal", "README style: formal, playful")
	cmd.Flags().BoolVar(&useClone, "clone", false, "sample via shallow git clone instead of the GitHub API")
	cmd.Flags().BoolVar(&noMetadata, "no-metadata", false, "skip fetching repository metadata")
	cmd.Flags().StringVar(&formatFlag, "format", "markdown", "output format: markdown, json")
	cmd.Flags().StringVar(&outPath, "out", "", "write the result to a file instead of stdout")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall execution timeout")

	return cmd
}
