package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bisegni/sqlwalk/pkg/database"
	"github.com/bisegni/sqlwalk/pkg/query"
	"github.com/bisegni/sqlwalk/pkg/render"
	"github.com/bisegni/sqlwalk/pkg/sqlconn"
)

var (
	DSN             string
	OutputPretty    bool
	OutputText      bool
	InteractiveMode bool
)

var rootCmd = &cobra.Command{
	Use:   "sqlwalk [query]",
	Short: "Relational database browser",
	Long: `sqlwalk walks a relational database (its tables, rows and columns)
over a live connection, and runs simple SELECT queries against it.

The connection is taken from --dsn or the SQLWALK_DSN environment variable
(MySQL DSN syntax: user:pass@tcp(host:3306)/dbname).

Examples:
  sqlwalk --dsn 'root@tcp(localhost)/shop' tables
  sqlwalk describe users
  sqlwalk "SELECT id, name FROM users WHERE age > 30 ORDER BY name LIMIT 0,10"
  sqlwalk -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if InteractiveMode {
			return RunInteractive()
		}
		if len(args) == 0 {
			return cmd.Help()
		}

		db, conn, err := openDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		return runSelect(db, args[0])
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&DSN, "dsn", "d", "", "Connection DSN (falls back to SQLWALK_DSN)")
	rootCmd.PersistentFlags().BoolVar(&OutputPretty, "pretty", false, "Pretty print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&OutputText, "text", "t", false, "Aligned text output instead of JSON")
	rootCmd.Flags().BoolVarP(&InteractiveMode, "interactive", "i", false, "Interactive REPL mode")

	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(createCmd)
}

// openDatabase binds a traversal root over a fresh connection. The caller
// owns the returned connection and must close it.
func openDatabase() (*database.Database, *sqlconn.Conn, error) {
	dsn := DSN
	if dsn == "" {
		dsn = os.Getenv("SQLWALK_DSN")
	}
	if dsn == "" {
		return nil, nil, fmt.Errorf("no DSN: pass --dsn or set SQLWALK_DSN")
	}

	conn, err := sqlconn.Open(dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Bind(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return db, conn, nil
}

// runSelect parses the mini-SELECT dialect, applies it to the named table's
// query specification and prints the resulting rows.
func runSelect(db *database.Database, input string) error {
	stmt, err := query.ParseSelect(input)
	if err != nil {
		return err
	}

	t, err := db.Get(stmt.Table)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("table %q not found", stmt.Table)
	}

	rows := stmt.Apply(t).Rows()

	encoder := render.NewEncoder()
	encoder.Pretty = OutputPretty
	encoder.Text = OutputText
	return encoder.WriteRows(os.Stdout, rows)
}
