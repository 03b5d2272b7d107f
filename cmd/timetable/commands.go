package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
)

// --- Global Command Variables ---
var (
	catalogPath string
	outPath     string
	asJSON      bool
	withReport  bool
	spread      bool
	seed        int64
	solveBudget time.Duration
	addr        string
	debug       bool

	rootCmd = &cobra.Command{
		Use:   "timetable",
		Short: "A weekly timetable solver for teaching groups",
		Long: `Timetable schedules the lectures, tds and tps of a course catalog
into a week without teacher or group collisions, keeping consecutive
teaching runs within bounds.`,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve the catalog and print the timetable",
		Run:   runSolve, // Defined in cmd_solve.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve timetables over HTTP",
		Run:   runServe, // Defined in cmd_serve.go
	}

	verifyCmd = &cobra.Command{
		Use:   "verify [schedule.json]",
		Short: "Check a stored timetable against the catalog's hard constraints",
		Args:  cobra.ExactArgs(1),
		Run:   runVerify, // Defined in cmd_verify.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"Path to a catalog JSON file; the built-in catalog applies when empty (or set TIMETABLE_CATALOG)")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the grouped JSON form instead of tables")
	solveCmd.Flags().StringVar(&outPath, "out", "", "Write the timetable JSON to this file instead of stdout")
	solveCmd.Flags().BoolVar(&withReport, "report", false, "Print the workload report after the timetable")
	solveCmd.Flags().BoolVar(&spread, "spread", false, "Bias lectures toward opening distinct days")
	solveCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the --spread day shuffle")
	solveCmd.Flags().DurationVar(&solveBudget, "timeout", 0, "Abort the solve after this long (0 means no limit)")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address; defaults to :$TIMETABLE_PORT or :8080")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Run gin in debug mode")

	rootCmd.AddCommand(verifyCmd)
}

// loadCatalog resolves the catalog from the --catalog flag, then the
// TIMETABLE_CATALOG env var, then the built-in default.
func loadCatalog() (catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = os.Getenv("TIMETABLE_CATALOG")
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.FromJSON(path)
}
