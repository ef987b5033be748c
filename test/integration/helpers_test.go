//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// setupRepo creates a full synthetic declaration repository and returns its root.
func setupRepo(t *testing.T) string {
	t.Helper()
	repo := t.TempDir()

	writeFile(t, filepath.Join(repo, "dts.config.yaml"), `package: acode
namespace: Acode
version: "1.0.0"
references:
  - ./types/index.d.ts
  - ./ace.d.ts
  - ./cordova.d.ts
  - ./html-tag.d.ts
`)

	writeFile(t, filepath.Join(repo, "types", "editor.d.ts"),
		"namespace Acode {\n\tinterface EditorFile {\n\t\tid: string;\n\t}\n\tinterface EditorManager {\n\t\tfiles: EditorFile[];\n\t}\n}\n")
	writeFile(t, filepath.Join(repo, "types", "system.d.ts"),
		"declare namespace Acode {\n\tinterface AppInfo {\n\t\tlabel: string;\n\t}\n\ttype IntentCallback = (uri: string) => void;\n}\n")
	writeFile(t, filepath.Join(repo, "types", "test.d.ts"),
		"declare namespace Acode {\n\tinterface NeverExported {}\n}\n")
	writeFile(t, filepath.Join(repo, "types", "terminal", "pty.d.ts"),
		"declare namespace Acode {\n\tinterface PtyProcess {\n\t\tpid: number;\n\t}\n}\n")

	return repo
}

// assertFileContent fails unless the file at path has exactly want as content.
func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}
