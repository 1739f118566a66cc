package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pratikdalwadi/docground/model"
)

const scanJSON = `{"pages":[{"page_number":1,"width":1000,"height":1000,"method":"tesseract","words":[
  {"text":"Report","bbox":{"x":100,"y":50,"width":120,"height":30},"confidence":0.95,"font_size":20},
  {"text":"Total:","bbox":{"x":100,"y":400,"width":80,"height":20},"confidence":0.95},
  {"text":"42.00","bbox":{"x":190,"y":400,"width":70,"height":20},"confidence":0.95}
]}]}`

func writeScan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.json")
	if err := os.WriteFile(path, []byte(scanJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("docground %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestAnalyzeCommand(t *testing.T) {
	out := run(t, "analyze", "--compact", writeScan(t))

	var ir model.IR
	if err := json.Unmarshal([]byte(out), &ir); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if ir.TotalPages != 1 || len(ir.Pages[0].KeyValuePairs) != 1 {
		t.Errorf("IR = %+v", ir)
	}
}

func TestChunksCommand(t *testing.T) {
	out := run(t, "chunks", "--format", "csv", writeScan(t))
	if !strings.HasPrefix(out, "id,chunk_type,") {
		t.Errorf("csv output = %q", out)
	}
	if !strings.Contains(out, "42.00") {
		t.Errorf("csv output missing text: %q", out)
	}
}

func TestChunksCommand_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "chunks.jsonl")
	run(t, "chunks", "--format", "jsonl", "--output", dest, writeScan(t))

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"grounding"`) {
		t.Errorf("jsonl = %s", data)
	}
}

func TestMarkdownCommand(t *testing.T) {
	out := run(t, "markdown", writeScan(t))
	if !strings.Contains(out, "Total: 42.00") {
		t.Errorf("markdown = %q", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out := run(t, "config")
	for _, key := range []string{"analyzer:", "workers:"} {
		if !strings.Contains(out, key) {
			t.Errorf("config output missing %q", key)
		}
	}

	path := filepath.Join(t.TempDir(), "docground.yaml")
	run(t, "config", "init", path)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config init did not write file: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	if out := run(t, "version"); !strings.HasPrefix(out, "docground ") {
		t.Errorf("version output = %q", out)
	}
}
