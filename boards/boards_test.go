package boards

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"boardcode-go/boardgen/board"
	"boardcode-go/boardgen/emit"
)

func loadOsprey51(t *testing.T) *board.Definition {
	t.Helper()
	def, err := board.Load("osprey51.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return def
}

func TestOsprey51Validates(t *testing.T) {
	if err := board.Validate(loadOsprey51(t)); err != nil {
		t.Fatalf("osprey51.yaml: %v", err)
	}
}

// TestOsprey51Current regenerates the osprey51 package in memory and checks
// the committed files against it. Both sides go through format.Source first,
// so only content drift fails, not formatting.
func TestOsprey51Current(t *testing.T) {
	files, err := emit.Generate(loadOsprey51(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, f := range files {
		path := filepath.Join("osprey51", f.Name)
		committed, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("%s: %v (regenerate with boardgen)", path, err)
			continue
		}
		norm, err := format.Source(committed)
		if err != nil {
			t.Errorf("%s does not parse: %v", path, err)
			continue
		}
		want, err := format.Source(f.Data)
		if err != nil {
			t.Fatalf("generated %s does not parse: %v", f.Name, err)
		}
		if !bytes.Equal(norm, want) {
			t.Errorf("%s is stale; regenerate with boardgen", path)
		}
	}
}

// TestOsprey51NoStrays checks that every generated-marked file in the
// committed package is still produced by the generator.
func TestOsprey51NoStrays(t *testing.T) {
	files, err := emit.Generate(loadOsprey51(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	produced := make(map[string]bool, len(files))
	for _, f := range files {
		produced[f.Name] = true
	}

	entries, err := os.ReadDir("osprey51")
	if err != nil {
		t.Fatalf("read package dir: %v", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".go" {
			continue
		}
		data, err := os.ReadFile(filepath.Join("osprey51", e.Name()))
		if err != nil {
			t.Fatalf("%s: %v", e.Name(), err)
		}
		if !bytes.HasPrefix(data, []byte("// Code generated by boardgen")) {
			continue // hand-written, e.g. bus.go
		}
		if !produced[e.Name()] {
			t.Errorf("%s is generated but no longer produced; delete it", e.Name())
		}
	}
}
