package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/evermorehealth/portal/cmd/evermore-cli/internal/output"
	"github.com/evermorehealth/portal/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// contentFs is the filesystem content commands read from; tests replace it.
var contentFs = afero.NewOsFs()

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate and summarize the content catalog",
	Long: `The content command checks the YAML catalog behind the listing pages
(careers, locations, help, quality, research and news).

Available subcommands:
  validate  Load a content directory and report every problem found
  summary   Count the records in a content directory, or the embedded catalog

Examples:
  evermore-cli content validate ./content
  evermore-cli content summary
  evermore-cli content summary ./content --format json`,
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Validate a content directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := content.Load(contentFs, args[0])
		if err != nil {
			return fmt.Errorf("content in %s is invalid:\n%w", args[0], err)
		}
		total := 0
		for _, n := range cat.Counts() {
			total += n
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records OK\n", args[0], total)
		return nil
	},
}

var contentSummaryCmd = &cobra.Command{
	Use:   "summary [dir]",
	Short: "Count records per collection",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cat *content.Catalog
		if len(args) == 1 {
			loaded, err := content.Load(contentFs, args[0])
			if err != nil {
				return err
			}
			cat = loaded
		} else {
			store, err := content.NewEmbeddedStore()
			if err != nil {
				return err
			}
			cat = store.Catalog()
		}
		return output.Write(cmd.OutOrStdout(), outputFormat, summaryTable(cat))
	},
}

func summaryTable(cat *content.Catalog) output.Table {
	caser := cases.Title(language.English)
	counts := cat.Counts()

	files := make([]string, 0, len(counts))
	for f := range counts {
		files = append(files, f)
	}
	sort.Strings(files)

	t := output.Table{Header: []string{"COLLECTION", "FILE", "RECORDS"}}
	for _, f := range files {
		name := caser.String(strings.TrimSuffix(f, ".yaml"))
		t.Rows = append(t.Rows, []string{name, f, strconv.Itoa(counts[f])})
	}
	return t
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentSummaryCmd)
}
