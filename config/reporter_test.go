package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Finalize(t *testing.T) {
	tmpDir := t.TempDir()

	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	stored := filepath.Join(tmpDir, "final.log")
	if err := os.WriteFile(stored, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(tmpDir, "tailwind.css")
	if err := os.WriteFile(copied, []byte(".p-4{padding:1rem}"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("final.log", stored)
	r.Store("missing.log", filepath.Join(tmpDir, "absent.log"))
	r.StoreData("config/config.yaml", []byte("version: 1\n"))
	if err := r.StoreCopy("source/tailwind.css", copied); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	// later changes must not leak into report
	if err := os.WriteFile(copied, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["final.log"] != "log line" {
		t.Errorf("final.log = %q", files["final.log"])
	}
	if files["config/config.yaml"] != "version: 1\n" {
		t.Errorf("config.yaml = %q", files["config/config.yaml"])
	}
	if files["source/tailwind.css"] != ".p-4{padding:1rem}" {
		t.Errorf("tailwind.css = %q", files["source/tailwind.css"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent files must be skipped")
	}

	var m manifest
	if err := yaml.Unmarshal([]byte(files[manifestName]), &m); err != nil {
		t.Fatalf("unable to decode manifest: %v", err)
	}
	if m.Program != "twexp" || len(m.Entries) != 3 {
		t.Fatalf("unexpected manifest %+v", m)
	}
	// natural order of names
	var names []string
	for _, e := range m.Entries {
		names = append(names, e.Name)
	}
	if strings.Join(names, ",") != "config/config.yaml,final.log,source/tailwind.css" {
		t.Errorf("manifest entries = %v", names)
	}
	if e := m.Entries[1]; e.Source != stored || e.Size != len("log line") || len(e.Digest) != 64 {
		t.Errorf("final.log entry = %+v", e)
	}
	if len(m.Skipped) != 1 || m.Skipped[0] != "missing.log" {
		t.Errorf("skipped = %v", m.Skipped)
	}
}

func TestReport_StoreDataVersionsNames(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("tree", []byte("a"))
	r.StoreData("tree", []byte("b"))
	r.StoreData("tree", []byte("c"))
	if string(r.entries["tree.3"].data) != "c" || len(r.entries) != 3 {
		t.Errorf("unexpected entries %v", r.entries)
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "/nonexistent"); err != nil {
		t.Errorf("StoreCopy() on nil report error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil report error: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
}

func TestReport_StoreNames(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("final.log", "/tmp/a.log")
	r.Store("final.log", "/tmp/a.log")
	if len(r.entries) != 1 {
		t.Fatalf("same file stored twice: %d entries", len(r.entries))
	}

	r.Store("final.log", "/tmp/b.log")
	if e, ok := r.entries["final.log.2"]; !ok || e.source != "/tmp/b.log" {
		t.Errorf("expected numbered entry, got %v", r.entries)
	}
}
