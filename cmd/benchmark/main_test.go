package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetTestsDefaultsToBuiltinCatalog(t *testing.T) {
	tests := getTests("")

	assert.Len(t, tests, 1)
	assert.Equal(t, "default", tests[0].Name)
	assert.Equal(t, 14, tests[0].Teachers)
	assert.Equal(t, 23, tests[0].Slots)
}

func TestGetTestsReadsCatalogDirectory(t *testing.T) {
	//**Arrange
	directory := t.TempDir()
	document := `{
		"week": [2, 2],
		"teachers": [1, 2],
		"groups": 2,
		"courses": [
			{"name": "algebra", "sessions": {"lecture": {"teachers": [1]}, "td": {"teachers": [2]}}}
		]
	}`
	assert.Nil(t, os.WriteFile(filepath.Join(directory, "small.json"), []byte(document), 0644))
	assert.Nil(t, os.WriteFile(filepath.Join(directory, "notes.txt"), []byte("skipped"), 0644))

	//**Act
	tests := getTests(directory)

	//**Assert: only the JSON file counts
	assert.Len(t, tests, 1)
	assert.Equal(t, 2, tests[0].Teachers)
	assert.Equal(t, 2, tests[0].Groups)
	assert.Equal(t, 1, tests[0].Courses)
	assert.Equal(t, 4, tests[0].Slots)
}

func TestMeasureSolvesDefaultCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("full default-catalog solve takes a while")
	}

	//**Arrange
	test := getTests("")[0]

	//**Act
	result := measure(test, SolverMetadata{Spread: true, Seed: 1}, 1, 2*time.Minute)

	//**Assert
	assert.Equal(t, solved, result.Result)
	assert.Greater(t, result.Nodes, 0)
}

func TestCsvRecordShape(t *testing.T) {
	result := BenchmarkResult{
		Solver:   SolverMetadata{Spread: true, Seed: 7},
		Test:     TestMetadata{Name: "default", Teachers: 14, Groups: 6, Courses: 8, Slots: 23},
		Duration: 12,
		Pruned:   0,
		Nodes:    50,
		Result:   solved,
	}

	record := csvRecord(result)

	assert.Equal(t, []string{"default", "true", "7", "14", "6", "8", "23", "12", "0", "50", "0", "solved"}, record)
}
