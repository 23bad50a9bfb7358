// Package classbreak turns a numeric raster band or a table column into a
// small number of ordered classes.
//
// What is classbreak?
//
//	A pipeline of four small steps:
//		• Extract: collect the valid sample and its min/max
//		• Generate: compute breakpoints (equidistant, quantile, progressive, Weber–Fechner)
//		• Rule: turn breakpoints into intervals, a direct classifier and a band formula
//		• Apply: write a classified grid, or an integer class column inside transactions
//
// Packages:
//
//	breaks/          classification methods and breakpoint generators
//	rule/            intervals, Classify and the logical_and(...)*k formula
//	grid/            bands, rasters, sample extraction and patch analysis
//	calc/            formula compiler, band calculator and null normalizer
//	table/           table/transaction contracts and an in-memory table
//	sqlitetable/     table.Table over a SQLite database
//	ascgrid/         ESRI ASCII grid reader/writer and a directory store
//	classify/        grid and column applicators and the end-to-end flows
//	config/          defaults from CLASSBREAK_* variables and .env files
//	logger/          zerolog construction
//	cmd/classbreak/  command-line front end
//
// Intervals are half-open, [b[i-1], b[i]), except the last, which is closed.
// Grid and column classification share that convention, so a value gets the
// same class on either path.
//
// Quick example:
//
//	m, _ := breaks.NewWeberFechner(2, 5)
//	res, err := classify.Grid(raster, 1, m)
//	// res.Breaks == [min … max], res.Output holds classes 1..5
//
//	go install github.com/katalvlaran/classbreak/cmd/classbreak@latest
package classbreak
