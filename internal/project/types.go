package project

const (
	// FileName is the project manifest filename at the repository root.
	FileName = "dts.config.yaml"

	// DefaultIndex is the reserved per-directory index artifact filename.
	DefaultIndex = "index.d.ts"

	// DefaultNamespace is the namespace identifier scanned for exports.
	DefaultNamespace = "Acode"

	// DefaultTypesDir is the scan root relative to the manifest.
	DefaultTypesDir = "types"
)

// defaultExclude lists filenames excluded from traversal besides the index
// artifact itself.
var defaultExclude = []string{"test.d.ts"}

// Config represents the dts.config.yaml manifest driving generation.
type Config struct {
	// Package is the published module name used in the root artifact's
	// declare-module block (e.g., "acode").
	Package string `yaml:"package" json:"package"`

	// Namespace is the fixed namespace identifier whose members are
	// collected for re-export (e.g., "Acode").
	Namespace string `yaml:"namespace" json:"namespace"`

	// Version is the corpus version; must parse as semver.
	Version string `yaml:"version" json:"version"`

	// Types is the scan root directory, relative to the manifest.
	Types string `yaml:"types,omitempty" json:"types,omitempty"`

	// Index is the reserved index artifact filename (default "index.d.ts").
	Index string `yaml:"index,omitempty" json:"index,omitempty"`

	// Exclude lists additional reserved filenames skipped during traversal
	// (default ["test.d.ts"]).
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`

	// References is the fixed ordered reference list of the root artifact:
	// the root's own generated index first, then the external declaration
	// sources.
	References []string `yaml:"references" json:"references"`
}

// applyDefaults fills optional fields after parsing.
func (c *Config) applyDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.Types == "" {
		c.Types = DefaultTypesDir
	}
	if c.Index == "" {
		c.Index = DefaultIndex
	}
	if c.Exclude == nil {
		c.Exclude = append([]string(nil), defaultExclude...)
	}
}

// Excluded reports whether a directory entry name is reserved and must be
// skipped entirely: the index artifact's own filename and the configured
// test filenames.
func (c *Config) Excluded(name string) bool {
	if name == c.Index {
		return true
	}
	for _, ex := range c.Exclude {
		if name == ex {
			return true
		}
	}
	return false
}
