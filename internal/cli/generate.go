package cli

import (
	"fmt"

	"github.com/acode-labs/dtslink/internal/linker"
	"github.com/acode-labs/dtslink/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Regenerate index artifacts and the root export module",
	Long: `Walk the declaration tree, rewrite every per-directory index.d.ts, and
regenerate the root index.d.ts from the collected namespace exports. All
artifacts are rewritten in full; the first filesystem error aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	repoDir := repoDirArg(args)

	cfg, err := project.LoadValidated(repoDir)
	if err != nil {
		return err
	}

	res, err := linker.New(cfg).Run(repoDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Linked %d declaration references across %d directories\n", res.References, res.Directories)
	fmt.Fprintf(out, "Collected %d exports from namespace %s\n", res.Exports.Len(), cfg.Namespace)
	fmt.Fprintf(out, "Updated %s\n", res.RootPath)
	return nil
}
