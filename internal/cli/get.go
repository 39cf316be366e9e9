package cli

import (
	"fmt"
	"strconv"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func (a *app) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <collection> <id> [key]",
		Short: "Print a record, or one of its properties, as JSON",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  a.runGet,
	}
}

func (a *app) runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[1], err)
	}
	l, _, err := a.load(args[:1])
	if err != nil {
		return err
	}
	r, ok := l.Find(args[0], id)
	if !ok {
		return fmt.Errorf("no record with Id %d in %s", id, args[0])
	}

	v := r.Value()
	if len(args) == 3 {
		p, ok := v.Lookup(args[2])
		if !ok {
			return fmt.Errorf("record %d of %s has no property %q", id, args[0], args[2])
		}
		v = p
	}
	out, err := j.MarshalIndent(v.Any(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s value: %w", v.Kind(), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
