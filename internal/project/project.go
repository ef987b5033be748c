package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Path returns the full path to the manifest for a repository directory.
func Path(repoDir string) string {
	return filepath.Join(repoDir, FileName)
}

// Load reads and parses dts.config.yaml from the given repository directory,
// applying defaults for optional fields. It does not validate; callers that
// generate artifacts go through LoadValidated.
func Load(repoDir string) (*Config, error) {
	path := Path(repoDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project manifest: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing project manifest %s: %w", path, err)
	}

	config.applyDefaults()
	return &config, nil
}

// LoadValidated loads the manifest and rejects it if schema or version
// validation fails. Generation never starts from a bad manifest.
func LoadValidated(repoDir string) (*Config, error) {
	result, err := ValidateFile(Path(repoDir))
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		issue := result.Issues[0]
		return nil, fmt.Errorf("invalid project manifest %s: %s %s (and %d more issues)",
			Path(repoDir), issue.Path, issue.Message, len(result.Issues)-1)
	}
	return Load(repoDir)
}

// Save writes the manifest back to dts.config.yaml.
func Save(repoDir string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling project manifest: %w", err)
	}

	if err := os.WriteFile(Path(repoDir), data, 0644); err != nil {
		return fmt.Errorf("writing project manifest: %w", err)
	}

	return nil
}
