package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	res := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		res[f.Name] = string(data)
	}
	return res
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	input := filepath.Join(dir, "input.css")
	if err := os.WriteFile(input, []byte("margin: 1px"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("input.css", input); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	// copy is taken at the time of a call
	if err := os.WriteFile(input, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	r.StoreData("output.css", []byte("margin: 1px;"))
	r.StoreData("output.css", []byte("margin: 2px;"))
	r.Store("absent.log", filepath.Join(dir, "absent.log"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["input.css"] != "margin: 1px" {
		t.Errorf("input.css = %q", files["input.css"])
	}
	if files["output.css"] != "margin: 1px;" {
		t.Errorf("output.css = %q", files["output.css"])
	}
	var versioned int
	for name := range files {
		if strings.HasPrefix(name, "output.css-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned output entry, got %d", versioned)
	}
	if _, ok := files["absent.log"]; ok {
		t.Error("absent files must be skipped")
	}
	if !strings.Contains(files["MANIFEST"], "absent.log") {
		t.Errorf("MANIFEST must list all entries:\n%s", files["MANIFEST"])
	}
}

func TestReport_StorePanicsOnOverwrite(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("log", "/tmp/a.log")
	r.Store("log", "/tmp/a.log") // same path is fine

	defer func() {
		if recover() == nil {
			t.Error("expected panic on overwrite")
		}
	}()
	r.Store("log", "/tmp/b.log")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	r.Store("name", "path")
	r.StoreData("name", nil)
	if err := r.StoreCopy("name", "path"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() of nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
