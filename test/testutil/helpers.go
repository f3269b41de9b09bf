// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	testDataPath := filepath.Join(filepath.Dir(currentFile), "..", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadRawOffers decodes the "data" array of a provider search response fixture.
func LoadRawOffers(t *testing.T, filename string) []domain.RawOffer {
	t.Helper()

	var body struct {
		Data []domain.RawOffer `json:"data"`
	}
	if err := json.Unmarshal(LoadTestJSON(t, filename), &body); err != nil {
		t.Fatalf("Failed to decode fixture %s: %v", filename, err)
	}
	return body.Data
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// FutureDate returns a date days from now in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(domain.DateLayout)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
