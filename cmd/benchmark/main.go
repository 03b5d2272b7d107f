// Command benchmark times the solver across catalogs and option
// combinations and writes the measurements into a CSV file.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
	"github.com/kbelhadj/timetable-csp/internal/csp"
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	timeout
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	timeout:       "timeout",
}

type TestMetadata struct {
	Name     string
	Catalog  catalog.Catalog
	Teachers int
	Groups   int
	Courses  int
	Slots    int
}

type SolverMetadata struct {
	Spread bool
	Seed   int64
}

type BenchmarkResult struct {
	Solver     SolverMetadata
	Test       TestMetadata
	Duration   int64
	Pruned     int
	Nodes      int
	Backtracks int
	Result     ResultType
}

func main() {
	catalogDir := flag.String("catalogs", "", "Directory of catalog JSON files; only the built-in catalog runs when empty")
	repeats := flag.Int("repeats", 3, "Solves per configuration; the fastest run is kept")
	budget := flag.Duration("timeout", 2*time.Minute, "Budget per solve")
	flag.Parse()

	tests := getTests(*catalogDir)
	solvers := getSolvers()
	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))

	for _, test := range tests {
		for _, solver := range solvers {
			fmt.Printf("Benchmarking catalog \"%v\" with spread \"%v\" and seed \"%v\"\n", test.Name, solver.Spread, solver.Seed)
			results = append(results, measure(test, solver, *repeats, *budget))
		}
	}

	toCsv(results)
}

func getTests(directory string) []TestMetadata {
	if directory == "" {
		return []TestMetadata{describe("default", catalog.Default())}
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	files := lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return strings.HasSuffix(entry.Name(), ".json")
	})

	return lo.Map(files, func(entry os.DirEntry, _ int) TestMetadata {
		filename := filepath.Join(directory, entry.Name())
		cat, err := catalog.FromJSON(filename)
		if err != nil {
			log.Fatalf("cannot parse catalog file: %v", err)
		}
		return describe(filename, cat)
	})
}

func describe(name string, cat catalog.Catalog) TestMetadata {
	return TestMetadata{
		Name:     name,
		Catalog:  cat,
		Teachers: len(cat.Teachers),
		Groups:   cat.Groups,
		Courses:  len(cat.Courses),
		Slots:    len(cat.Slots()),
	}
}

func getSolvers() []SolverMetadata {
	return []SolverMetadata{
		{Spread: false},
		{Spread: true, Seed: 1},
		{Spread: true, Seed: 7},
		{Spread: true, Seed: 42},
	}
}

func measure(test TestMetadata, meta SolverMetadata, repeats int, budget time.Duration) BenchmarkResult {
	best := BenchmarkResult{Solver: meta, Test: test, Duration: math.MaxInt64}

	for range repeats {
		solver, err := csp.New(test.Catalog, csp.Options{SpreadLectures: meta.Spread, Seed: meta.Seed})
		if err != nil {
			log.Fatalf("cannot build solver for \"%v\": %v", test.Name, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), budget)
		start := time.Now()
		a, err := solver.Solve(ctx)
		duration := time.Since(start).Milliseconds()
		cancel()

		result := solved
		if err != nil {
			result = timeout
		} else if a == nil {
			result = unsatisfiable
		}

		if duration < best.Duration {
			stats := solver.Stats()
			best.Duration = duration
			best.Pruned = stats.Pruned
			best.Nodes = stats.Nodes
			best.Backtracks = stats.Backtracks
			best.Result = result
		}
	}

	return best
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Catalog", "Spread", "Seed", "Teachers", "Groups", "Courses", "Slots", "Duration(ms)", "Pruned", "Nodes", "Backtracks", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(csvRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func csvRecord(result BenchmarkResult) []string {
	return []string{
		result.Test.Name,
		fmt.Sprintf("%v", result.Solver.Spread),
		fmt.Sprintf("%d", result.Solver.Seed),
		fmt.Sprintf("%d", result.Test.Teachers),
		fmt.Sprintf("%d", result.Test.Groups),
		fmt.Sprintf("%d", result.Test.Courses),
		fmt.Sprintf("%d", result.Test.Slots),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%d", result.Pruned),
		fmt.Sprintf("%d", result.Nodes),
		fmt.Sprintf("%d", result.Backtracks),
		resultTypes[result.Result],
	}
}
