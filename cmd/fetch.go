package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"telcodegen/config"
	"telcodegen/wikipedia"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the Wikipedia articles into the cache directory",
	Long: `Download the calling code and mobile country code articles into --dir so
later runs can use generate --nodl.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher, err := wikipedia.NewFetcher(v.GetString(config.KeyFetch), v.GetString(config.KeyBaseURL))
		if err != nil {
			return err
		}
		cache := &wikipedia.Cache{Dir: v.GetString(config.KeyDir), Fetcher: fetcher}

		for _, a := range wikipedia.Articles {
			text, err := cache.Load(cmd.Context(), a)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-32s %10s  %s\n", a.Title, humanize.Bytes(uint64(len(text))), cache.Path(a))
		}
		return nil
	},
}
