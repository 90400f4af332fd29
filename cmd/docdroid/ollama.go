// cmd/docdroid/ollama.go
package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/docdroid/docdroid/internal/generator"
)

var defaultOllamaBaseURL = generator.DefaultBaseURL

// ollamaCmd returns the top-level "ollama" command with list and status
// subcommands for checking the local Ollama server.
func ollamaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ollama",
		Short: "Check the local Ollama server",
		Long:  "List locally available Ollama models and check server status.",
	}

	cmd.PersistentFlags().String("base-url", "", "Ollama API base URL (default: http://localhost:11434)")

	cmd.AddCommand(ollamaListCmd())
	cmd.AddCommand(ollamaStatusCmd())

	return cmd
}

// resolveOllamaBaseURL returns the Ollama base URL from the --base-url
// flag, the config file, or the default http://localhost:11434.
func resolveOllamaBaseURL(cmd *cobra.Command) string {
	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL != "" {
		return baseURL
	}
	if cfg, err := loadConfig(); err == nil && cfg.Generator.BaseURL != "" {
		return cfg.Generator.BaseURL
	}
	return defaultOllamaBaseURL
}

// formatBytes formats a byte count into a human-readable string
// (e.g., "4.0 GB", "512.0 MB").
func formatBytes(b int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func ollamaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locally available models",
		Long:  "Display a table of all locally available Ollama models with name, size, and modification date.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseURL := resolveOllamaBaseURL(cmd)
			client := generator.NewOllamaClient(baseURL)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			models, err := client.ListModels(ctx)
			if err != nil {
				return fmt.Errorf("listing models: %w", err)
			}

			if len(models) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No models available.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
			for _, m := range models {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					m.Name,
					formatBytes(m.Size),
					m.ModifiedAt.Format(time.RFC3339),
				)
			}
			return w.Flush()
		},
	}
}

func ollamaStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check if Ollama is running",
		Long:  "Check the Ollama server status, display version and model count.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseURL := resolveOllamaBaseURL(cmd)
			client := generator.NewOllamaClient(baseURL)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			version, err := client.Version(ctx)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Ollama is not running at %s\n", baseURL)
				return fmt.Errorf("ollama not reachable: %w", err)
			}

			models, err := client.ListModels(ctx)
			if err != nil {
				return fmt.Errorf("listing models: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Status:\trunning\n")
			fmt.Fprintf(w, "Version:\t%s\n", version)
			fmt.Fprintf(w, "Models:\t%d\n", len(models))
			return w.Flush()
		},
	}
}
