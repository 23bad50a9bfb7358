// SPDX-License-Identifier: MIT

// Command classbreak classifies a raster band or a table column into ordered
// classes.
//
//	classbreak grid   -in dem.asc -out classes/ [-method wf -categories 5 -factor 2]
//	classbreak column -db parcels.sqlite -table parcels -field area [-method quartiles]
//
// Defaults come from CLASSBREAK_* environment variables or a .env file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mdobak/go-xerrors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/classbreak/ascgrid"
	"github.com/katalvlaran/classbreak/breaks"
	"github.com/katalvlaran/classbreak/classify"
	"github.com/katalvlaran/classbreak/config"
	"github.com/katalvlaran/classbreak/grid"
	"github.com/katalvlaran/classbreak/logger"
	"github.com/katalvlaran/classbreak/sqlitetable"
)

const usage = "usage: classbreak <grid|column> [flags]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cfg := config.Load()

	var err error
	switch os.Args[1] {
	case "grid":
		err = runGrid(cfg, os.Args[2:])
	case "column":
		err = runColumn(cfg, os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log := logger.NewConsole(zerolog.ErrorLevel)
		err := xerrors.New(err)
		log.Error().Err(err).Str("detail", fmt.Sprintf("%+v", err)).Msg("classification failed")
		os.Exit(1)
	}
}

// methodFlags registers the flags shared by both subcommands.
type methodFlags struct {
	method     *string
	categories *int
	factor     *float64
	name       *string
	logLevel   *string
}

func registerMethod(fs *flag.FlagSet, cfg config.Config) methodFlags {
	return methodFlags{
		method:     fs.String("method", cfg.Method, "equidistant, quartiles, quintiles, deciles, quantile:<q>, progressive or weber-fechner"),
		categories: fs.Int("categories", cfg.Categories, "number of classes"),
		factor:     fs.Float64("factor", cfg.Factor, "progression factor (progressive, weber-fechner)"),
		name:       fs.String("name", "", "output name (default: method short name)"),
		logLevel:   fs.String("log", cfg.LogLevel, "log level: debug, info, warn, error"),
	}
}

func (f methodFlags) resolve() (breaks.Method, []classify.Option, error) {
	m, err := breaks.ParseMethod(*f.method, *f.categories, *f.factor)
	if err != nil {
		return breaks.Method{}, nil, err
	}
	opts := []classify.Option{classify.WithLogger(logger.NewConsole(logger.ParseLevel(*f.logLevel)))}
	if *f.name != "" {
		opts = append(opts, classify.WithName(*f.name))
	}
	return m, opts, nil
}

func runGrid(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("grid", flag.ExitOnError)
	in := fs.String("in", "", "input ESRI ASCII grid")
	out := fs.String("out", ".", "output directory")
	band := fs.Int("band", cfg.Band, "band index (1-based)")
	noData := fs.Float64("nodata", cfg.NoData, "no-data value of the classified grid")
	patches := fs.Bool("patches", false, "report contiguous patches per class")
	mf := registerMethod(fs, cfg)
	fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("grid: -in is required")
	}

	m, opts, err := mf.resolve()
	if err != nil {
		return err
	}
	b, h, err := ascgrid.Load(*in)
	if err != nil {
		return err
	}
	src, err := grid.NewRaster(b)
	if err != nil {
		return err
	}
	store, err := ascgrid.NewDirStore(*out, h)
	if err != nil {
		return err
	}
	opts = append(opts, classify.WithStore(store), classify.WithNoData(*noData))

	res, err := classify.Grid(src, *band, m, opts...)
	if err != nil {
		return err
	}
	fmt.Println(store.Path(res.Name))
	if *patches {
		counts := res.Output.PatchCounts(grid.Conn8)
		for k := 1; k <= m.Categories; k++ {
			fmt.Printf("class %d: %d patches\n", k, counts[float64(k)])
		}
	}
	return nil
}

func runColumn(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("column", flag.ExitOnError)
	db := fs.String("db", "", "SQLite database file")
	tableName := fs.String("table", "", "table name")
	field := fs.String("field", "", "numeric field to classify")
	mf := registerMethod(fs, cfg)
	fs.Parse(args)
	if *db == "" || *tableName == "" || *field == "" {
		return fmt.Errorf("column: -db, -table and -field are required")
	}

	m, opts, err := mf.resolve()
	if err != nil {
		return err
	}
	tbl, err := sqlitetable.Open(*db, *tableName)
	if err != nil {
		return err
	}
	defer tbl.Close()

	res, err := classify.Column(tbl, *field, m, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d features in %d classes\n", res.Name, res.Assigned, m.Categories)
	return nil
}
