package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTaxonomyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write taxonomy file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Empty Path Returns Defaults", func(t *testing.T) {
		table, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table.Signals[CategoryEmergency]) == 0 {
			t.Errorf("expected default emergency signals")
		}
	})

	t.Run("Category Override", func(t *testing.T) {
		path := writeTaxonomyFile(t, `
categories:
  sleep:
    - phrase: "restless nights"
      weight: 2.0
`)
		table, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table.Signals[CategorySleep]) != 1 {
			t.Fatalf("expected sleep signals replaced, got %d", len(table.Signals[CategorySleep]))
		}
		if table.Signals[CategorySleep][0].Phrase != "restless nights" {
			t.Errorf("unexpected phrase %q", table.Signals[CategorySleep][0].Phrase)
		}
		// Untouched categories keep their defaults.
		if len(table.Signals[CategoryEmergency]) == 0 {
			t.Errorf("expected emergency defaults to survive override")
		}
	})

	t.Run("Unknown Category Rejected", func(t *testing.T) {
		path := writeTaxonomyFile(t, `
categories:
  horoscope:
    - phrase: "star sign"
      weight: 1.0
`)
		if _, err := Load(path); err == nil {
			t.Errorf("expected error for unknown category")
		}
	})

	t.Run("Invalid Weight Rejected", func(t *testing.T) {
		path := writeTaxonomyFile(t, `
categories:
  sleep:
    - phrase: "restless"
      weight: 0
`)
		if _, err := Load(path); err == nil {
			t.Errorf("expected error for non-positive weight")
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := Load("/does/not/exist.yaml"); err == nil {
			t.Errorf("expected error for missing file")
		}
	})
}
