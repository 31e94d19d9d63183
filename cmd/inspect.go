package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"telcodegen/extract"
	"telcodegen/generate"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the rows extracted from a cached MCC article",
	Long: `Show the country sections found in a cached Mobile country code article
together with the number of rows taken from each. Use --rows to print the rows.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrapf(err, "reading %s", args[0])
		}
		lineScan, _ := cmd.Flags().GetBool("line-scan")
		showRows, _ := cmd.Flags().GetBool("rows")

		rows := generate.Rows(string(b), lineScan)
		printSummary(cmd, rows, showRows)
		fmt.Fprintf(cmd.OutOrStdout(), "%s rows from %s of wikitext\n",
			humanize.Comma(int64(len(rows))), humanize.Bytes(uint64(len(b))))
		return nil
	},
}

func printSummary(cmd *cobra.Command, rows []extract.Row, showRows bool) {
	out := cmd.OutOrStdout()
	for i := 0; i < len(rows); {
		j := i
		for j < len(rows) && rows[j].Country == rows[i].Country && strings.Join(rows[j].Codes, "/") == strings.Join(rows[i].Codes, "/") {
			j++
		}
		fmt.Fprintf(out, "%-40s [%s] %d rows\n", rows[i].Country, strings.Join(rows[i].Codes, " "), j-i)
		if showRows {
			for _, r := range rows[i:j] {
				fmt.Fprintf(out, "    %s\n", strings.Join(r.Cells, " | "))
			}
		}
		i = j
	}
}

func init() {
	inspectCmd.Flags().Bool("line-scan", false, "Use the line scanner instead of the section walker")
	inspectCmd.Flags().Bool("rows", false, "Print every extracted row")
}
