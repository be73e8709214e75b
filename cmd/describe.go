package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bisegni/sqlwalk/pkg/render"
)

var describeCmd = &cobra.Command{
	Use:   "describe <table>",
	Short: "Show the column metadata of a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, conn, err := openDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		t, err := db.Get(args[0])
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("table %q not found", args[0])
		}

		return render.WriteColumns(os.Stdout, t.Columns())
	},
}
