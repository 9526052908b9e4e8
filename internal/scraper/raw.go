package scraper

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/lemina/startup-cli/internal/model"
)

// Snapshot is the on-disk form of one source's scrape output. Keeping
// raw records around lets triangulation be re-run without re-fetching.
type Snapshot struct {
	Source    string            `json:"source"`
	ScrapedAt time.Time         `json:"scraped_at"`
	Count     int               `json:"count"`
	Records   []model.RawRecord `json:"records"`
}

// SaveRaw writes one source's records as a timestamped JSON snapshot
// under dir and returns the file path.
func SaveRaw(dir, source string, records []model.RawRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrap(err, "create raw dir")
	}

	snap := Snapshot{
		Source:    source,
		ScrapedAt: time.Now().UTC(),
		Count:     len(records),
		Records:   records,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "marshal snapshot")
	}

	path := filepath.Join(dir, source+"_"+snap.ScrapedAt.Format("20060102_150405")+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", eris.Wrapf(err, "write snapshot %s", path)
	}
	return path, nil
}

// LoadRaw reads every JSON snapshot in dir and groups the records by
// source. When a source has several snapshots the records accumulate
// in filename order, so newer snapshots come last.
func LoadRaw(dir string) (map[string][]model.RawRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "read raw dir %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	bySource := make(map[string][]model.RawRecord)
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "read snapshot %s", path)
		}

		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, eris.Wrapf(err, "parse snapshot %s", path)
		}
		if snap.Source == "" {
			snap.Source = sourceFromFilename(name)
		}
		bySource[snap.Source] = append(bySource[snap.Source], snap.Records...)
	}
	return bySource, nil
}

// sourceFromFilename recovers the source from names like
// "techcabal_20240315_090000.json".
func sourceFromFilename(name string) string {
	base := strings.TrimSuffix(name, ".json")
	if idx := strings.IndexByte(base, '_'); idx > 0 {
		return base[:idx]
	}
	return base
}
