// Package config gathers the generator settings from flags, environment
// (TELCODEGEN_*), an optional config file and a .env file.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

const EnvPrefix = "TELCODEGEN"

// Keys shared by the flags and the config file.
const (
	KeyOutput      = "output"
	KeyDir         = "dir"
	KeyNoDownload  = "nodl"
	KeyIntKey      = "intkey"
	KeyLineScan    = "line-scan"
	KeyFetch       = "fetch"
	KeyBaseURL     = "base-url"
	KeySQLite      = "sqlite"
	KeyLibphoneDir = "libphone-dir"
	KeyLogLevel    = "log-level"

	KeyAll     = "all"
	KeyCC      = "cc"
	KeyITU     = "itu"
	KeyArea    = "area"
	KeyCarrier = "carrier"
	KeyMCC     = "mcc"
	KeyMNC     = "mnc"
	KeyCur     = "cur"
	KeyAlpha3  = "alpha3"
)

var fetchModes = []string{"raw", "api", "browser"}

// Tables selects which lookup tables are generated.
type Tables struct {
	CC      bool
	ITU     bool
	Area    bool
	Carrier bool
	MCC     bool
	MNC     bool
	Cur     bool
	Alpha3  bool
}

// Any reports whether at least one table is selected.
func (t Tables) Any() bool {
	return t.CC || t.ITU || t.Area || t.Carrier || t.MCC || t.MNC || t.Cur || t.Alpha3
}

type Config struct {
	Output      string
	Dir         string
	NoDownload  bool
	IntKey      bool
	LineScan    bool
	Fetch       string
	BaseURL     string
	SQLite      string
	LibphoneDir string
	LogLevel    string
	Tables      Tables
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyFetch, "raw")
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// LoadDotEnv loads path into the process environment. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return eris.Wrapf(err, "loading %s", path)
	}
	return nil
}

// ReadFile merges the config file at path into v.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return eris.Wrapf(err, "reading config %s", path)
	}
	return nil
}

// Load builds the validated configuration from v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Output:      v.GetString(KeyOutput),
		Dir:         v.GetString(KeyDir),
		NoDownload:  v.GetBool(KeyNoDownload),
		IntKey:      v.GetBool(KeyIntKey),
		LineScan:    v.GetBool(KeyLineScan),
		Fetch:       strings.ToLower(v.GetString(KeyFetch)),
		BaseURL:     v.GetString(KeyBaseURL),
		SQLite:      v.GetString(KeySQLite),
		LibphoneDir: v.GetString(KeyLibphoneDir),
		LogLevel:    v.GetString(KeyLogLevel),
		Tables: Tables{
			CC:      v.GetBool(KeyCC),
			ITU:     v.GetBool(KeyITU),
			Area:    v.GetBool(KeyArea),
			Carrier: v.GetBool(KeyCarrier),
			MCC:     v.GetBool(KeyMCC),
			MNC:     v.GetBool(KeyMNC),
			Cur:     v.GetBool(KeyCur),
			Alpha3:  v.GetBool(KeyAlpha3),
		},
	}
	if v.GetBool(KeyAll) {
		c.Tables = Tables{true, true, true, true, true, true, true, true}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the settings needed by Generate.
func (c Config) Validate() error {
	if c.Output == "" {
		return eris.New("an output file is required (--output)")
	}
	if c.Dir == "" {
		return eris.New("the download directory must not be empty")
	}
	if !validFetchMode(c.Fetch) {
		return eris.Errorf("unknown fetch mode %q (want one of %s)", c.Fetch, strings.Join(fetchModes, ", "))
	}
	if (c.Tables.Area || c.Tables.Carrier) && c.LibphoneDir == "" {
		return eris.New("area and carrier tables need the libphonenumber resources directory (--libphone-dir)")
	}
	return nil
}

func validFetchMode(mode string) bool {
	for _, m := range fetchModes {
		if m == mode {
			return true
		}
	}
	return false
}
