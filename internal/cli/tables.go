package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/syncparse/internal/locate"
	"github.com/mesh-intelligence/syncparse/internal/sqlite"
	"github.com/mesh-intelligence/syncparse/pkg/types"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables <database>",
		Short: "List the tables of a sync database",
		Long:  "Open a database read-only, list its tables and name any table the parser needs that is missing.",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTables,
	}
}

func (a *app) runTables(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := locate.ValidateDatabase(a.fs, path); err != nil {
		return userError(err)
	}

	src, err := sqlite.Open(path)
	if err != nil {
		return databaseError(err)
	}
	defer src.Close()

	tables, err := src.Tables()
	if err != nil {
		return databaseError(err)
	}

	out := cmd.OutOrStdout()
	present := make(map[string]bool, len(tables))
	for _, t := range tables {
		present[t] = true
		fmt.Fprintln(out, t)
	}
	for _, t := range types.RequiredTableNames {
		if !present[t] {
			fmt.Fprintf(out, "missing: %s\n", t)
		}
	}
	return nil
}

// databaseError maps a failure to open or query a database to its exit code.
func databaseError(err error) error {
	if errors.Is(err, types.ErrPathInvalid) {
		return userError(err)
	}
	return sysError(err)
}
