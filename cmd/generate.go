package cmd

import (
	"github.com/spf13/cobra"

	"telcodegen/config"
	"telcodegen/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Lua lookup tables",
	Long: `Generate the selected lookup tables into the Lua file given with --output.
Tables are written in a fixed order: currency, alpha-3, carrier, area,
ITU calling code, calling code, MCC and MNC. With --sqlite the same tables are
also stored in a SQLite database.`,
	Example: `  telcodegen generate --all --libphone-dir ~/src/libphonenumber/resources -o tables.lua
  telcodegen generate --mcc --mnc --nodl --dir cache -o mcc.lua`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		return generate.Run(cmd.Context(), cfg)
	},
}

func init() {
	f := generateCmd.Flags()
	f.Bool(config.KeyAll, false, "Generate all tables")
	f.Bool(config.KeyCC, false, "Generate country calling code table")
	f.Bool(config.KeyITU, false, "Generate ITU calling code table from libphonenumber metadata")
	f.Bool(config.KeyArea, false, "Generate area code table")
	f.Bool(config.KeyCarrier, false, "Generate carrier code table")
	f.Bool(config.KeyMCC, false, "Generate mobile country code table")
	f.Bool(config.KeyMNC, false, "Generate mobile network code table")
	f.Bool(config.KeyCur, false, "Generate ISO currency table")
	f.Bool(config.KeyAlpha3, false, "Generate ISO alpha-3 country table")

	f.StringP(config.KeyOutput, "o", "", "Output Lua file")
	f.Bool(config.KeyNoDownload, false, "Disable downloading, read the cached articles")
	f.Bool(config.KeyIntKey, false, "Use integer keys and accessor functions for calling code tables")
	f.Bool(config.KeyLineScan, false, "Extract MCC rows with the line scanner")
	f.String(config.KeySQLite, "", "Also write the tables to this SQLite database")
	f.String(config.KeyLibphoneDir, "", "libphonenumber resources directory (holds carrier/ and geocoding/)")
}
