package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/bisegni/sqlwalk/pkg/database"
	"github.com/bisegni/sqlwalk/pkg/render"
)

// RunInteractive binds the database once and serves a REPL over it. Commands:
// tables, describe <t>, count <t>, create <t>, reload, SELECT statements,
// exit/quit.
func RunInteractive() error {
	db, conn, err := openDatabase()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Connected to %s. Type 'exit' or 'quit' to leave.\n", db.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          db.Name() + "> ",
		HistoryFile:     "", // in-memory history for this session
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, "exit") || strings.EqualFold(trimmed, "quit") {
			break
		}

		if err := executeInteractive(db, trimmed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	return nil
}

func executeInteractive(db *database.Database, input string) error {
	cmd, arg := splitCommand(input)

	switch strings.ToLower(cmd) {
	case "tables":
		return db.ForEach(func(t *database.Table) {
			fmt.Println(t.Name())
		})

	case "reload":
		return db.ReloadTables()

	case "describe", "count", "create":
		if arg == "" {
			return fmt.Errorf("%s needs a table name", cmd)
		}
		t, err := db.Get(arg)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("table %q not found", arg)
		}

		switch strings.ToLower(cmd) {
		case "describe":
			return render.WriteColumns(os.Stdout, t.Columns())
		case "count":
			total, err := t.TotalCount()
			if err != nil {
				return err
			}
			fmt.Println(total)
			return nil
		default:
			ddl, err := t.CreateTable()
			if err != nil {
				return err
			}
			fmt.Println(ddl)
			return nil
		}
	}

	if strings.HasPrefix(strings.ToUpper(input), "SELECT") {
		return runSelect(db, input)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func splitCommand(input string) (string, string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
