package cmd

import (
	"sort"
	"strings"

	"github.com/evermorehealth/portal/cmd/evermore-cli/internal/output"
	"github.com/evermorehealth/portal/internal/app"
	"github.com/evermorehealth/portal/internal/server"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the HTTP routes",
	Long: `List every route the server registers, built from the same wiring the
server uses. No listener is opened and the backend is not contacted.

Examples:
  evermore-cli routes
  evermore-cli routes --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		injector := app.NewInjector(cfg)
		defer injector.Shutdown()

		deps, err := app.Resolve(injector)
		if err != nil {
			return err
		}
		s := server.New(deps)

		t := output.Table{Header: []string{"METHOD", "PATH", "HANDLER"}}
		for _, r := range s.E.Routes() {
			t.Rows = append(t.Rows, []string{r.Method, r.Path, output.Truncate(shortHandler(r.Name), 60)})
		}
		sort.Slice(t.Rows, func(i, j int) bool {
			if t.Rows[i][1] != t.Rows[j][1] {
				return t.Rows[i][1] < t.Rows[j][1]
			}
			return t.Rows[i][0] < t.Rows[j][0]
		})
		return output.Write(cmd.OutOrStdout(), outputFormat, t)
	},
}

// shortHandler trims the module path from a handler's function name.
func shortHandler(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
