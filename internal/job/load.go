package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a job-definition file.
type File struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// Load reads job definitions from path. The format is chosen by extension:
// .yaml/.yml files are parsed as YAML, everything else as JSON. Jobs
// without an ID get a generated UUID so callers can always address them;
// the file itself is never written back.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse jobs file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse jobs file %s: %w", path, err)
		}
	}

	seen := make(map[string]bool, len(file.Jobs))
	for i := range file.Jobs {
		if file.Jobs[i].ID == "" {
			file.Jobs[i].ID = uuid.NewString()
		}
		if seen[file.Jobs[i].ID] {
			return nil, fmt.Errorf("jobs file %s: duplicate job id %q", path, file.Jobs[i].ID)
		}
		seen[file.Jobs[i].ID] = true
	}

	return file.Jobs, nil
}
