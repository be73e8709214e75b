package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bisegni/sqlwalk/pkg/database"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables of the bound database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, conn, err := openDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		return db.ForEach(func(t *database.Table) {
			fmt.Println(t.Name())
		})
	},
}
