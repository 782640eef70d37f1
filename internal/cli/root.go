// Package cli implements the hlsgen command line tool, which builds session
// playlists offline from a clip manifest.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/phrasecast/internal/app"
)

var (
	manifestPath string
	outputJSON   bool
	verbose      bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hlsgen",
		Short:         "Build HLS playlists from text and a clip manifest",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "Path to the clip manifest (JSON or YAML)")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	_ = cmd.MarkPersistentFlagRequired("manifest")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

// newLogger logs to w; warnings only unless --verbose is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
