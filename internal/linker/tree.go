package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acode-labs/dtslink/internal/declscan"
	"github.com/acode-labs/dtslink/internal/project"
)

// WriteFunc persists a generated artifact. The default writes to disk; check
// mode substitutes a comparing writer.
type WriteFunc func(path string, data []byte) error

// DiskWriter overwrites the artifact file in place.
func DiskWriter(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing index artifact %s: %w", path, err)
	}
	return nil
}

// NopWriter discards generated artifacts. Used when only the collected
// export set is wanted.
func NopWriter(string, []byte) error { return nil }

// Result summarizes a completed run.
type Result struct {
	Directories int              // index artifacts written under the scan root
	References  int              // total reference lines emitted
	Exports     declscan.NameSet // collected export names
	RootPath    string           // path of the generated root artifact
}

// Linker regenerates the per-directory index artifacts and the root export
// artifact for a declaration repository.
type Linker struct {
	cfg   *project.Config
	scan  *declscan.Scanner
	write WriteFunc
}

// New returns a Linker that writes artifacts to disk.
func New(cfg *project.Config) *Linker {
	return &Linker{
		cfg:   cfg,
		scan:  declscan.New(cfg.Namespace),
		write: DiskWriter,
	}
}

// WithWriter replaces the artifact writer and returns the Linker.
func (l *Linker) WithWriter(w WriteFunc) *Linker {
	l.write = w
	return l
}

// Run walks the declaration tree under the repository's types directory,
// emits one index artifact per directory, and then renders the root artifact
// from the collected export set. The whole operation is synchronous and
// single-pass; the first filesystem error aborts the run with no recovery
// and no rollback of artifacts already written.
func (l *Linker) Run(repoDir string) (*Result, error) {
	res := &Result{Exports: declscan.NewNameSet()}

	root := filepath.Join(repoDir, l.cfg.Types)
	if err := l.linkDir(root, res); err != nil {
		return nil, err
	}

	// The root artifact depends on the fully populated export set, so it is
	// rendered strictly after the traversal completes.
	res.RootPath = filepath.Join(repoDir, l.cfg.Index)
	if err := l.write(res.RootPath, RenderRoot(l.cfg, res.Exports.Sorted())); err != nil {
		return nil, err
	}

	return res, nil
}

// linkDir processes one directory: children depth-first, then the directory's
// own index artifact. Reference lines keep the order entries were listed in —
// no re-sorting, by contract.
func (l *Linker) linkDir(dir string, res *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	var lines []string
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			// The child's index exists before the parent references it.
			if err := l.linkDir(filepath.Join(dir, name), res); err != nil {
				return err
			}
			lines = append(lines, Reference("./"+name+"/"+l.cfg.Index))
			continue
		}

		// The index artifact itself and reserved test files get no
		// reference line and are never scanned.
		if l.cfg.Excluded(name) {
			continue
		}

		lines = append(lines, Reference("./"+name))

		text, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("reading %s: %w", filepath.Join(dir, name), err)
		}
		l.scan.Collect(text, res.Exports)
	}

	// An empty directory still gets an artifact: a single newline.
	data := []byte(strings.Join(lines, "\n") + "\n")
	if err := l.write(filepath.Join(dir, l.cfg.Index), data); err != nil {
		return err
	}

	res.Directories++
	res.References += len(lines)
	return nil
}

// Reference renders a single reference directive for a relative path.
func Reference(path string) string {
	return `/// <reference path="` + path + `" />`
}
