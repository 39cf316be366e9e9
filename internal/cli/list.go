package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [collections...]",
		Short: "List collections and their record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, names, err := a.load(args)
			if err != nil {
				return err
			}
			for _, name := range names {
				records, _ := l.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, len(records))
			}
			return nil
		},
	}
}
