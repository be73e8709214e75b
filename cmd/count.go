package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <table>",
	Short: "Count the rows of a table (SELECT COUNT(*))",
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

		total, err := t.TotalCount()
		if err != nil {
			return err
		}
		fmt.Println(total)
		return nil
	},
}
