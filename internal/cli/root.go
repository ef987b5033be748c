package cli

import (
	"github.com/acode-labs/dtslink/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` maintains the committed artifacts of the Acode plugin
declaration repository: one index.d.ts of reference directives per directory
under types/, and the root index.d.ts that re-exports every namespace member
as the published module.`,
	SilenceUsage: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// repoDirArg resolves the optional positional repository directory argument.
func repoDirArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}
