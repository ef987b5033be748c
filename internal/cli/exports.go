package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/acode-labs/dtslink/internal/linker"
	"github.com/acode-labs/dtslink/internal/project"
	"github.com/spf13/cobra"
)

var exportsJSON bool

func init() {
	exportsCmd.Flags().BoolVar(&exportsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(exportsCmd)
}

var exportsCmd = &cobra.Command{
	Use:   "exports [dir]",
	Short: "List the collected namespace exports",
	Long: `Scan the declaration tree without writing any artifact and print the
export set that would appear in the root module block, in sorted order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExports,
}

// exportEntry represents one collected export for display.
type exportEntry struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

func runExports(cmd *cobra.Command, args []string) error {
	repoDir := repoDirArg(args)

	cfg, err := project.LoadValidated(repoDir)
	if err != nil {
		return err
	}

	res, err := linker.New(cfg).WithWriter(linker.NopWriter).Run(repoDir)
	if err != nil {
		return err
	}

	entries := make([]exportEntry, 0, res.Exports.Len())
	for _, name := range res.Exports.Sorted() {
		entries = append(entries, exportEntry{
			Name:  name,
			Alias: cfg.Namespace + "." + name,
		})
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No exports collected.")
		return nil
	}

	if exportsJSON {
		return printExportsJSON(cmd, entries)
	}
	return printExportsTable(cmd, entries)
}

func printExportsTable(cmd *cobra.Command, entries []exportEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tALIAS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Alias)
	}
	return w.Flush()
}

func printExportsJSON(cmd *cobra.Command, entries []exportEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
