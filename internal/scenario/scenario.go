// Package scenario reads and writes crime type configurations as JSON files,
// so cases beyond the built-in catalog can be authored and shared.
package scenario

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/errors"
)

// DefaultDir is the conventional scenario directory relative to the working
// directory.
const DefaultDir = "scenarios"

// Load reads one scenario file into a crime type configuration.
func Load(path string) (catalog.CrimeType, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return catalog.CrimeType{}, errors.Wrap(err, "read scenario", slog.String("path", path))
	}
	var config catalog.CrimeType
	if err = json.Unmarshal(payload, &config); err != nil {
		return catalog.CrimeType{}, errors.Wrap(err, "parse scenario", slog.String("path", path))
	}
	if err = Validate(config); err != nil {
		return catalog.CrimeType{}, errors.Wrap(err, "validate scenario", slog.String("path", path))
	}
	return config, nil
}

// Save writes a crime type configuration as an indented scenario file,
// creating parent directories as needed.
func Save(config catalog.CrimeType, path string) error {
	if err := Validate(config); err != nil {
		return errors.Wrap(err, "validate scenario", slog.String("path", path))
	}
	payload, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal scenario", slog.String("path", path))
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create scenario directory", slog.String("path", path))
	}
	if err = os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrap(err, "write scenario", slog.String("path", path))
	}
	return nil
}

// List returns the scenario ids (file stems) found in dir, sorted. A missing
// directory is an empty library, not an error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "list scenarios", slog.String("dir", dir))
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Path maps a scenario id to its file path inside dir.
func Path(id, dir string) string {
	return filepath.Join(dir, id+".json")
}

// Validate checks the structural obligations every scenario must satisfy
// before it can seed a playable session.
func Validate(config catalog.CrimeType) error {
	if config.Name == "" {
		return errors.New("scenario must have a name")
	}
	if len(config.AllowedEvidenceTypes) == 0 {
		return errors.New("scenario must allow at least one evidence type",
			slog.String("name", config.Name))
	}
	for _, category := range config.AllowedEvidenceTypes {
		if !catalog.ValidCategory(category) {
			return errors.New("scenario references unknown evidence category",
				slog.String("name", config.Name), slog.String("category", category))
		}
	}
	if len(config.BaselineHypotheses) == 0 {
		return errors.New("scenario must define baseline hypotheses",
			slog.String("name", config.Name))
	}
	if len(config.TurnPressureCurve) == 0 {
		return errors.New("scenario must define a turn pressure curve",
			slog.String("name", config.Name))
	}
	seen := make(map[string]struct{}, len(config.EvidenceTemplates))
	for _, template := range config.EvidenceTemplates {
		if template.ID == "" {
			return errors.New("scenario evidence template must have an id",
				slog.String("name", config.Name))
		}
		if _, dup := seen[template.ID]; dup {
			return errors.New("scenario evidence template id is duplicated",
				slog.String("name", config.Name), slog.String("id", template.ID))
		}
		seen[template.ID] = struct{}{}
		if !catalog.ValidCategory(template.Category) {
			return errors.New("scenario evidence template has unknown category",
				slog.String("name", config.Name), slog.String("id", template.ID),
				slog.String("category", template.Category))
		}
	}
	return nil
}
