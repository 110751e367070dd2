package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReportStore persists the report of a run as JSON.
type ReportStore struct {
	path string
}

// NewReportStore creates a store writing to path (e.g. .commitlint/report.json).
func NewReportStore(path string) *ReportStore {
	return &ReportStore{path: path}
}

// Path returns the report location.
func (s *ReportStore) Path() string {
	return s.path
}

// Read loads the last written report. A missing file is not an error.
func (s *ReportStore) Read() (*Report, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rep Report
	if err := json.NewDecoder(f).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &rep, nil
}

// Write saves the report, creating parent directories as needed.
func (s *ReportStore) Write(rep Report) (err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
