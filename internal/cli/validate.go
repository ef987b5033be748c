package cli

import (
	"fmt"

	"github.com/acode-labs/dtslink/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the project manifest",
	Long: `Check dts.config.yaml against its JSON schema and verify the version
field is valid semver. Prints every issue with its instance path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	repoDir := repoDirArg(args)
	manifestPath := project.Path(repoDir)

	result, err := project.ValidateFile(manifestPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Valid {
		fmt.Fprintf(out, "%s is valid\n", manifestPath)
		return nil
	}

	for _, issue := range result.Issues {
		fmt.Fprintf(out, "  %s [%s]: %s\n", issue.Path, issue.Keyword, issue.Message)
	}
	return fmt.Errorf("%s: %d validation issue(s)", manifestPath, len(result.Issues))
}
