// Package scan drives a full pass over a collection tree: one level of
// artist/collection directories, each holding .docx artwork sheets and the
// image files they describe. It produces one record per matched image and
// an ordered list of non-fatal alerts.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/museoabiertos/artcat/internal/docx"
	"github.com/museoabiertos/artcat/internal/extract"
	"github.com/museoabiertos/artcat/internal/match"
)

// Record joins one document's extracted fields with one of its images.
// A document matched to N images yields N records sharing the same field
// map but distinct image files.
type Record struct {
	Fields    extract.Fields
	ImageFile string
}

// Result is the outcome of a whole run: the assembled records plus every
// alert raised along the way, in raise order.
type Result struct {
	Records []Record
	Alerts  []string
}

// Scanner walks a root directory one subdirectory deep.
type Scanner struct {
	rules  []extract.Rule
	logger *slog.Logger
}

// New creates a Scanner using the given field rules. A nil logger falls
// back to slog.Default.
func New(rules []extract.Rule, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{rules: rules, logger: logger}
}

// Run processes every visible subdirectory of root, sequentially, in
// listing order. Only a root that cannot be read is fatal; every
// per-document and per-image problem becomes an alert and the run
// continues.
func (s *Scanner) Run(root string) (*Result, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root directory: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			dirs = append(dirs, e.Name())
		}
	}

	s.logger.Info("starting scan", "root", root, "directories", len(dirs))

	result := &Result{}
	for _, dir := range dirs {
		records, alerts := s.processDirectory(filepath.Join(root, dir))
		result.Records = append(result.Records, records...)
		result.Alerts = append(result.Alerts, alerts...)
	}

	s.logger.Info("scan finished", "records", len(result.Records), "alerts", len(result.Alerts))
	return result, nil
}

// processDirectory partitions a directory's visible files into documents
// and an other-files pool, then matches each document against the pool.
// Matched images are claimed and removed immediately, so a later document
// cannot re-claim a file; whatever survives every document is orphaned.
func (s *Scanner) processDirectory(path string) ([]Record, []string) {
	var records []Record
	var alerts []string

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("unreadable directory: %s (%v)", path, err)}
	}

	var docFiles []string
	var pool []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(strings.ToLower(name), ".docx") {
			docFiles = append(docFiles, name)
		} else {
			pool = append(pool, name)
		}
	}

	s.logger.Debug("processing directory", "path", path, "documents", len(docFiles), "other", len(pool))

	for _, doc := range docFiles {
		docPath := filepath.Join(path, doc)

		text, err := docx.ExtractText(docPath)
		if err != nil {
			// A corrupt sheet should not kill an archive-wide run.
			alerts = append(alerts, fmt.Sprintf("unreadable document: %s (%v)", docPath, err))
			continue
		}

		fields, missing := extract.Extract(text, s.rules)
		for _, key := range missing {
			alerts = append(alerts, fmt.Sprintf("%s not found in file: %s", key, docPath))
		}

		images := match.Images(pool, doc)
		if len(images) == 0 {
			alerts = append(alerts, fmt.Sprintf("no images for: %s", docPath))
			continue
		}

		for _, img := range images {
			records = append(records, Record{Fields: fields, ImageFile: img})
			pool = remove(pool, img)
		}
	}

	if len(pool) > 0 {
		alerts = append(alerts, fmt.Sprintf("extra images in: %s -> %s", path, strings.Join(pool, ", ")))
	}

	return records, alerts
}

func remove(files []string, name string) []string {
	for i, f := range files {
		if f == name {
			return append(files[:i], files[i+1:]...)
		}
	}
	return files
}
