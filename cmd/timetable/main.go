// Command timetable builds weekly timetables for a catalog of courses,
// serves them over HTTP and verifies stored ones.
package main

import (
	"log"
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
