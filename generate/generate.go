// Package generate runs the selected table directives and writes their
// output to the Lua file and the optional SQLite database.
package generate

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"telcodegen/config"
	"telcodegen/emit"
	"telcodegen/extract"
	"telcodegen/lookup"
	"telcodegen/wikipedia"
	"telcodegen/wikitext"
)

// Generator builds lookup tables and hands them to its sinks in a fixed
// order.
type Generator struct {
	cfg      config.Config
	cache    *wikipedia.Cache
	resolver *lookup.Resolver
	sinks    []emit.Sink
}

func New(cfg config.Config, cache *wikipedia.Cache, resolver *lookup.Resolver, sinks ...emit.Sink) *Generator {
	return &Generator{cfg: cfg, cache: cache, resolver: resolver, sinks: sinks}
}

type directive struct {
	name    string
	enabled bool
	build   func(ctx context.Context) ([]lookup.Table, error)
}

func (g *Generator) directives() []directive {
	t := g.cfg.Tables
	return []directive{
		{"currency", t.Cur, g.single(func(context.Context) (lookup.Table, error) { return lookup.CurrencyTable(), nil })},
		{"alpha-3", t.Alpha3, g.single(func(context.Context) (lookup.Table, error) { return lookup.Alpha3Table(), nil })},
		{"carrier", t.Carrier, g.single(func(context.Context) (lookup.Table, error) {
			return lookup.PrefixTable(g.cfg.LibphoneDir, lookup.Carrier)
		})},
		{"area", t.Area, g.single(func(context.Context) (lookup.Table, error) {
			return lookup.PrefixTable(g.cfg.LibphoneDir, lookup.Area)
		})},
		{"itu calling code", t.ITU, g.single(func(context.Context) (lookup.Table, error) {
			return g.intKey(lookup.ITUCallingCodeTable(g.resolver)), nil
		})},
		{"calling code", t.CC, g.single(g.callingCodes)},
		{"mobile codes", t.MCC || t.MNC, g.mobileCodes},
	}
}

func (g *Generator) single(f func(context.Context) (lookup.Table, error)) func(context.Context) ([]lookup.Table, error) {
	return func(ctx context.Context) ([]lookup.Table, error) {
		table, err := f(ctx)
		if err != nil {
			return nil, err
		}
		return []lookup.Table{table}, nil
	}
}

func (g *Generator) intKey(t lookup.Table) lookup.Table {
	t.IntKey = g.cfg.IntKey
	return t
}

// Generate runs every enabled directive. Tables written before a failing
// directive stay in the sinks.
func (g *Generator) Generate(ctx context.Context) error {
	for _, d := range g.directives() {
		if !d.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return eris.Wrap(err, "generation cancelled")
		}

		zap.L().Info("generating tables", zap.String("directive", d.name))
		tables, err := d.build(ctx)
		if err != nil {
			return eris.Wrapf(err, "building %s table", d.name)
		}
		for _, table := range tables {
			zap.L().Debug("writing table", zap.String("table", table.Name), zap.Int("entries", len(table.Entries)))
			for _, sink := range g.sinks {
				if err := sink.WriteTable(table); err != nil {
					return eris.Wrapf(err, "writing %s", table.Name)
				}
			}
		}
	}
	return nil
}

func (g *Generator) callingCodes(ctx context.Context) (lookup.Table, error) {
	text, err := g.cache.Load(ctx, wikipedia.CallingCodes)
	if err != nil {
		return lookup.Table{}, err
	}
	table, err := lookup.CallingCodeTable(wikitext.Parse(text))
	if err != nil {
		return lookup.Table{}, err
	}
	return g.intKey(table), nil
}

func (g *Generator) mobileCodes(ctx context.Context) ([]lookup.Table, error) {
	text, err := g.cache.Load(ctx, wikipedia.MobileCodes)
	if err != nil {
		return nil, err
	}
	rows := Rows(text, g.cfg.LineScan)
	zap.L().Debug("extracted mobile code rows", zap.Int("rows", len(rows)))

	var tables []lookup.Table
	if g.cfg.Tables.MCC {
		tables = append(tables, lookup.MCCTable(lookup.AggregateMCC(rows), g.resolver))
	}
	if g.cfg.Tables.MNC {
		tables = append(tables, lookup.MNCTable(rows))
	}
	return tables, nil
}

// Rows extracts the mobile code rows of an article, with the line scanner
// when lineScan is set.
func Rows(text string, lineScan bool) []extract.Row {
	doc := wikitext.Parse(text)
	if lineScan {
		return extract.Lines(doc.Lines())
	}
	return extract.Sections(doc)
}

// Run opens the configured outputs and generates every selected table.
func Run(ctx context.Context, cfg config.Config) error {
	fetcher, err := wikipedia.NewFetcher(cfg.Fetch, cfg.BaseURL)
	if err != nil {
		return err
	}
	cache := &wikipedia.Cache{Dir: cfg.Dir, NoDownload: cfg.NoDownload, Fetcher: fetcher}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return eris.Wrapf(err, "creating %s", cfg.Output)
	}
	defer out.Close()

	lua := emit.NewLuaWriter(out)
	if err := lua.WriteHeader(); err != nil {
		return err
	}
	sinks := []emit.Sink{lua}

	if cfg.SQLite != "" {
		db, err := emit.OpenSQLite(cfg.SQLite)
		if err != nil {
			return err
		}
		defer db.Close()
		sinks = append(sinks, db)
	}

	if !cfg.Tables.Any() {
		zap.L().Warn("no tables selected, writing the header only")
	}
	if err := New(cfg, cache, lookup.NewResolver(), sinks...).Generate(ctx); err != nil {
		return err
	}

	if err := out.Close(); err != nil {
		return eris.Wrapf(err, "closing %s", cfg.Output)
	}
	zap.L().Info("wrote lookup tables", zap.String("output", cfg.Output))
	return nil
}
