package cmd

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/museoabiertos/artcat/internal/extract"
)

func writeDocx(t *testing.T, path string, lines ...string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	body := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, line := range lines {
		body += `<w:p><w:r><w:t>` + line + `</w:t></w:r></w:p>`
	}
	body += `</w:body></w:document>`
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExecuteScan(t *testing.T) {
	root := t.TempDir()
	outputDir := t.TempDir()

	dir := filepath.Join(root, "garcia")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	writeDocx(t, filepath.Join(dir, "obra.docx"), "Autor: X", "Año: 1990")
	if err := os.WriteFile(filepath.Join(dir, "obra.jpg"), []byte("jpegdata"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := executeScan(root, outputDir, extract.DefaultRules(), true, true); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatal(err)
	}

	var gotCSV, gotAlerts, gotParquet, gotXLSX bool
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasPrefix(name, "output_") && strings.HasSuffix(name, ".csv"):
			gotCSV = true
			raw, err := os.ReadFile(filepath.Join(outputDir, name))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(raw), `"X"`) || !strings.Contains(string(raw), `"1990"`) {
				t.Errorf("csv missing expected values:\n%s", raw)
			}
		case strings.HasPrefix(name, "alerts_") && strings.HasSuffix(name, ".txt"):
			gotAlerts = true
		case strings.HasSuffix(name, ".parquet"):
			gotParquet = true
		case strings.HasSuffix(name, ".xlsx"):
			gotXLSX = true
		}
	}

	if !gotCSV || !gotAlerts || !gotParquet || !gotXLSX {
		t.Errorf("missing outputs: csv=%v alerts=%v parquet=%v xlsx=%v", gotCSV, gotAlerts, gotParquet, gotXLSX)
	}
}

func TestPromptRoot(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("  /archive/collections\n"))
	cmd.SetOut(&strings.Builder{})

	root, err := promptRoot(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if root != "/archive/collections" {
		t.Errorf("root = %q, want %q", root, "/archive/collections")
	}
}

func TestPromptRootEmpty(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetOut(&strings.Builder{})

	if _, err := promptRoot(cmd); err == nil {
		t.Error("expected error for empty root path")
	}
}
