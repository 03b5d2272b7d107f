package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbelhadj/timetable-csp/internal/csp"
	"github.com/kbelhadj/timetable-csp/internal/schedule"
)

func runSolve(cmd *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	solver, err := csp.New(cat, csp.Options{SpreadLectures: spread, Seed: seed})
	if err != nil {
		log.Fatalf("cannot build solver: %v", err)
	}

	ctx := context.Background()
	if solveBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveBudget)
		defer cancel()
	}

	a, err := solver.Solve(ctx)
	if err != nil {
		log.Fatalf("solve aborted: %v", err)
	}
	if a == nil {
		fmt.Println("No solution found.")
		printStats(solver.Stats())
		os.Exit(2)
	}
	if !solver.Verify(a) {
		log.Fatal("solver produced a timetable violating its own constraints")
	}

	grouped := schedule.Serialize(a)
	if asJSON {
		payload, err := json.Marshal(grouped)
		if err != nil {
			log.Fatalf("cannot marshal timetable: %v", err)
		}
		// Write the results to the standard output when no outfile is given
		if outPath == "" {
			fmt.Println(string(payload))
		} else if err := os.WriteFile(outPath, payload, 0666); err != nil {
			log.Fatalf("cannot write the output file: %v", err)
		}
	} else {
		schedule.Print(os.Stdout, grouped, cat)
	}

	if withReport {
		schedule.PrintReport(os.Stdout, solver.Report(a))
	}
	printStats(solver.Stats())
}

func printStats(stats csp.Stats) {
	fmt.Printf("Pruned: %v\n", stats.Pruned)
	fmt.Printf("Nodes: %v\n", stats.Nodes)
	fmt.Printf("Backtracks: %v\n", stats.Backtracks)
}
