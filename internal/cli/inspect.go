package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/phrasecast/internal/adapter/manifest"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print manifest contents summary",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, _ []string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	summary := m.Summary()
	if outputJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	writeSummary(cmd.OutOrStdout(), manifestPath, summary)
	return nil
}
