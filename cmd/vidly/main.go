package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/vidly/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "vidly: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var configPath, prefsPath string

	root := &cobra.Command{
		Use:           "vidly",
		Short:         "Browse a movie rental catalog in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return browse(cmd, configPath, prefsPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/vidly/config.toml)")
	root.PersistentFlags().StringVar(&prefsPath, "prefs", "", "UI preferences path (default ~/.config/vidly/prefs.toml)")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return browse(cmd, configPath, prefsPath)
		},
	}

	root.AddCommand(browseCmd, newListCmd(&configPath), newSeedCmd(&configPath))
	return root
}

func browse(cmd *cobra.Command, configPath, prefsPath string) error {
	return app.Run(cmd.Context(), app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
	})
}

func newListCmd(configPath *string) *cobra.Command {
	opts := app.ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ConfigPath = *configPath
			return app.List(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Genre, "genre", "", "genre id or name")
	cmd.Flags().StringVar(&opts.Search, "search", "", "title prefix to search for (overrides --genre)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "title", "sort column: title, genre, stock, rate, liked")
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "sort descending")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "movies per page (default from config)")
	return cmd
}

func newSeedCmd(configPath *string) *cobra.Command {
	opts := app.SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a catalog into the SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ConfigPath = *configPath
			return app.Seed(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.DatabasePath, "db", "", "database path (default from config)")
	cmd.Flags().StringVar(&opts.From, "from", "", "TOML catalog to import (default: the built-in sample)")
	return cmd
}
