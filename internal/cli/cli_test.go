package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `package: acode
namespace: Acode
version: "1.0.0"
references:
  - ./types/index.d.ts
  - ./ace.d.ts
  - ./cordova.d.ts
  - ./html-tag.d.ts
`

// buildRepo creates a minimal declaration repository in a temp dir.
func buildRepo(t *testing.T) string {
	t.Helper()
	repo := t.TempDir()

	writeTestFile(t, repo, "dts.config.yaml", testManifest)
	writeTestFile(t, repo, "types/editor.d.ts", "declare namespace Acode {\n\tinterface EditorFile {\n\t\tid: string;\n\t}\n}\n")
	writeTestFile(t, repo, "types/terminal/pty.d.ts", "declare namespace Acode {\n\ttype PtyDataCallback = (data: string) => void;\n}\n")

	return repo
}

func writeTestFile(t *testing.T, repo, rel, content string) {
	t.Helper()
	path := filepath.Join(repo, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// runCommand executes the root command with args and returns captured output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateWritesArtifacts(t *testing.T) {
	repo := buildRepo(t)

	out, err := runCommand(t, "generate", repo)
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	for _, rel := range []string{"index.d.ts", "types/index.d.ts", "types/terminal/index.d.ts"} {
		if _, err := os.Stat(filepath.Join(repo, rel)); err != nil {
			t.Errorf("artifact %s not written: %v", rel, err)
		}
	}

	if !strings.Contains(out, "Collected 2 exports") {
		t.Errorf("missing export count in output:\n%s", out)
	}
	if !strings.Contains(out, "Updated ") {
		t.Errorf("missing root confirmation in output:\n%s", out)
	}
}

func TestCheckFreshAndStale(t *testing.T) {
	repo := buildRepo(t)

	if out, err := runCommand(t, "generate", repo); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	out, err := runCommand(t, "check", repo)
	if err != nil {
		t.Fatalf("check on fresh repo: %v\n%s", err, out)
	}
	if !strings.Contains(out, "up to date") {
		t.Errorf("unexpected check output:\n%s", out)
	}

	// A new declaration file makes the directory index and root stale.
	writeTestFile(t, repo, "types/system.d.ts", "declare namespace Acode {\n\tinterface System {}\n}\n")

	out, err = runCommand(t, "check", repo)
	if err == nil {
		t.Fatalf("check on stale repo succeeded:\n%s", out)
	}
	if !strings.Contains(out, "stale: ") {
		t.Errorf("stale paths not listed:\n%s", out)
	}
}

func TestExportsJSON(t *testing.T) {
	repo := buildRepo(t)

	out, err := runCommand(t, "exports", "--json", repo)
	if err != nil {
		t.Fatalf("exports: %v\n%s", err, out)
	}

	var entries []struct {
		Name  string `json:"name"`
		Alias string `json:"alias"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("parsing JSON output: %v\n%s", err, out)
	}

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Name != "EditorFile" || entries[0].Alias != "Acode.EditorFile" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].Name != "PtyDataCallback" {
		t.Errorf("second entry = %+v", entries[1])
	}

	// Listing must not write any artifact.
	if _, err := os.Stat(filepath.Join(repo, "types", "index.d.ts")); !os.IsNotExist(err) {
		t.Error("exports wrote an index artifact")
	}
}

func TestValidateReportsIssues(t *testing.T) {
	repo := t.TempDir()
	writeTestFile(t, repo, "dts.config.yaml", "namespace: Acode\nversion: not-semver\nreferences: []\n")

	out, err := runCommand(t, "validate", repo)
	if err == nil {
		t.Fatalf("validate on broken manifest succeeded:\n%s", out)
	}
}

func TestGenerateRejectsInvalidManifest(t *testing.T) {
	repo := t.TempDir()
	writeTestFile(t, repo, "dts.config.yaml", "package: acode\n")
	writeTestFile(t, repo, "types/a.d.ts", "declare namespace Acode {\n\ttype A = 1;\n}\n")

	if _, err := runCommand(t, "generate", repo); err == nil {
		t.Fatal("generate with invalid manifest succeeded")
	}

	// No artifact may be touched before validation passes.
	if _, err := os.Stat(filepath.Join(repo, "types", "index.d.ts")); !os.IsNotExist(err) {
		t.Error("artifact written despite invalid manifest")
	}
}
