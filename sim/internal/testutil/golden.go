// Package testutil provides shared test infrastructure for the cart simulator.
// It consolidates golden dataset types and fixture helpers used across
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name      string        `json:"name"`
	Track     string        `json:"track"`      // path relative to testdata/
	CartCells string        `json:"cart_cells"` // "raw" or "track"
	Results   GoldenResults `json:"results"`
}

// GoldenPoint is a coordinate as written in the golden file.
type GoldenPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GoldenResults represents the expected outcome of a golden test case.
type GoldenResults struct {
	FirstCollision *GoldenPoint `json:"first_collision"`
	LastSurvivor   *GoldenPoint `json:"last_survivor"`
	Ticks          int          `json:"ticks"`
	StopReason     string       `json:"stop_reason"`
}

// TestdataDir returns the repo root testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func TestdataDir(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata")
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(TestdataDir(t), "goldendataset.json"))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// OpenTrack opens a track fixture by its testdata-relative path.
// The file is closed when the test ends.
func OpenTrack(t *testing.T, rel string) *os.File {
	t.Helper()

	f, err := os.Open(filepath.Join(TestdataDir(t), rel))
	if err != nil {
		t.Fatalf("Failed to open track %s: %v", rel, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}
