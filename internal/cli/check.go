package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [collections...]",
		Short: "Validate every record of the given collections",
		Long: `Validate every record of the given collections and report each property
that holds a mapping. Exits with an error when any record is invalid.`,
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	l, names, err := a.load(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed)

	invalid := 0
	for _, name := range names {
		records, _ := l.Get(name)
		findings, _ := l.Validate(name)
		titleColor.Fprintf(w, "%s", name)
		fmt.Fprintf(w, ": %d records, %d invalid\n", len(records), len(findings))
		for _, f := range findings {
			fmt.Fprintf(w, "  record #%d (Id %d, %s)\n", f.Index, f.Record.ID(), f.Record.Name())
			for _, e := range f.Errors {
				errorColor.Fprintf(w, "    %s at %s: %s\n", e.Code, e.Path, e.Message)
			}
		}
		invalid += len(findings)
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s)", invalid)
	}
	successColor.Fprintln(w, "all records valid")
	return nil
}
