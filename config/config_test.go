package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexisbouchez/jsbeautify/jsfmt"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if opts != jsfmt.Defaults() {
		t.Errorf("Load(missing) = %+v, want defaults", opts)
	}
}

func TestLoadParsesRecognizedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jsbeautifyrc")
	contents := "indent_size: 2\nindent_char: \"\\t\"\npreserve_newlines: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := jsfmt.Options{IndentSize: 2, IndentChar: "\t", IndentLevel: 0, PreserveNewlines: true}
	if opts != want {
		t.Errorf("Load() = %+v, want %+v", opts, want)
	}
}

func TestLoadMalformedYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jsbeautifyrc")
	if err := os.WriteFile(path, []byte("indent_size: [this is not a scalar"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) error = nil, want an error")
	}
}

func TestMergeOverridesOnlySetFields(t *testing.T) {
	base := jsfmt.Options{IndentSize: 2, IndentChar: "\t", IndentLevel: 0, PreserveNewlines: true}
	override := jsfmt.Options{IndentSize: 8}

	got := Merge(base, override, map[string]bool{"indent_size": true})
	want := jsfmt.Options{IndentSize: 8, IndentChar: "\t", IndentLevel: 0, PreserveNewlines: true}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}
