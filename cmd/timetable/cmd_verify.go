package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbelhadj/timetable-csp/internal/csp"
	"github.com/kbelhadj/timetable-csp/internal/schedule"
)

func runVerify(cmd *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("cannot read the schedule file: %v", err)
	}
	var grouped schedule.Grouped
	if err := json.Unmarshal(raw, &grouped); err != nil {
		log.Fatalf("cannot parse the schedule file %v: %v", args[0], err)
	}

	a, err := schedule.Parse(cat, grouped)
	if err != nil {
		log.Fatalf("cannot rebuild the timetable: %v", err)
	}

	solver, err := csp.New(cat, csp.Options{})
	if err != nil {
		log.Fatalf("cannot build solver: %v", err)
	}

	if !solver.Verify(a) {
		fmt.Println("Timetable violates the hard constraints.")
		os.Exit(3)
	}
	fmt.Println("Timetable is valid.")
}
