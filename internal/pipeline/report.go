package pipeline

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// WriteReport writes the run report as YAML under dir and returns the
// file path.
func WriteReport(report *RunReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrap(err, "report: create dir")
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", eris.Wrap(err, "report: marshal")
	}

	path := filepath.Join(dir, "run_"+report.RunID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", eris.Wrapf(err, "report: write %s", path)
	}
	return path, nil
}
