package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <table>",
	Short: "Print the CREATE TABLE statement of a table",
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

		ddl, err := t.CreateTable()
		if err != nil {
			return err
		}
		fmt.Println(ddl)
		return nil
	},
}
