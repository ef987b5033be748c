package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/acode-labs/dtslink/internal/branding"
	"github.com/acode-labs/dtslink/internal/linker"
	"github.com/acode-labs/dtslink/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Verify committed artifacts match regeneration",
	Long: `Regenerate all artifacts in memory and diff them against the committed
files. Exits non-zero when any artifact is stale, which makes this the CI
guard for the repository.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	repoDir := repoDirArg(args)

	cfg, err := project.LoadValidated(repoDir)
	if err != nil {
		return err
	}

	var stale []string
	compare := func(path string, data []byte) error {
		current, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				stale = append(stale, path)
				return nil
			}
			return fmt.Errorf("reading committed artifact %s: %w", path, err)
		}
		if !bytes.Equal(current, data) {
			stale = append(stale, path)
		}
		return nil
	}

	res, err := linker.New(cfg).WithWriter(compare).Run(repoDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(stale) == 0 {
		fmt.Fprintf(out, "All artifacts up to date (%d directories, %d exports)\n",
			res.Directories, res.Exports.Len())
		return nil
	}

	for _, path := range stale {
		fmt.Fprintf(out, "stale: %s\n", path)
	}
	return fmt.Errorf("%d artifact(s) out of date; run '%s generate'", len(stale), branding.CLIName())
}
