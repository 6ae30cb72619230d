package cmd

import (
	"github.com/evermorehealth/portal/cmd/evermore-cli/internal/output"
	"github.com/evermorehealth/portal/internal/audit"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the auth events published on the bus",
	Long: `List every auth outcome kind. All of them travel on one topic; the level
is what the audit subscriber logs them at.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := output.Table{Header: []string{"TOPIC", "KIND", "LEVEL"}}
		for _, k := range audit.Kinds {
			level := "info"
			if k.Failure() {
				level = "warn"
			}
			t.Rows = append(t.Rows, []string{audit.AuthOutcome.Name(), string(k), level})
		}
		return output.Write(cmd.OutOrStdout(), outputFormat, t)
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
