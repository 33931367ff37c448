package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is looked up in the working directory by the CLI.
const ManifestFileName = "formal.yml"

// Manifest describes a runnable FormalLang program.
type Manifest struct {
	Path       string
	Name       string
	Entry      string
	StepBudget uint64
	Trace      bool
}

type manifestDisk struct {
	Name       string `yaml:"name"`
	Entry      string `yaml:"entry"`
	StepBudget uint64 `yaml:"step_budget,omitempty"`
	Trace      bool   `yaml:"trace,omitempty"`
}

// LoadManifest parses formal.yml from disk.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	manifest := &Manifest{
		Path:       abs,
		Name:       strings.TrimSpace(raw.Name),
		Entry:      strings.TrimSpace(raw.Entry),
		StepBudget: raw.StepBudget,
		Trace:      raw.Trace,
	}
	if manifest.Entry == "" {
		return nil, fmt.Errorf("manifest: %s: missing entry", abs)
	}
	return manifest, nil
}

// EntryPath resolves the entry file relative to the manifest location.
func (m *Manifest) EntryPath() string {
	if filepath.IsAbs(m.Entry) || m.Path == "" {
		return m.Entry
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}

// WriteManifest serialises the manifest back to disk.
func WriteManifest(m *Manifest, path string) error {
	if m == nil {
		return fmt.Errorf("manifest: nil manifest")
	}
	raw := manifestDisk{
		Name:       m.Name,
		Entry:      m.Entry,
		StepBudget: m.StepBudget,
		Trace:      m.Trace,
	}
	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
