package linker

import (
	"strings"

	"github.com/acode-labs/dtslink/internal/project"
)

// RenderRoot produces the root artifact text: the manifest's fixed reference
// list, a blank line, then a declare-module block re-exporting every collected
// name under the namespace. Names must already be sorted; given the same
// inputs the output is byte-identical across runs, since the artifact is
// committed and diffed.
func RenderRoot(cfg *project.Config, names []string) []byte {
	var b strings.Builder

	for _, ref := range cfg.References {
		b.WriteString(Reference(ref))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(`declare module "` + cfg.Package + `" {` + "\n")
	for _, name := range names {
		b.WriteString("\texport type " + name + " = " + cfg.Namespace + "." + name + ";\n")
	}
	b.WriteString("}\n")

	return []byte(b.String())
}
