package query

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/bisegni/sqlwalk/pkg/database"
)

// Lexer definition
var (
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Keyword", Pattern: `(?i)\b(SELECT|FROM|WHERE|ORDER|BY|LIMIT|AND|OR|ASC|DESC|LIKE|TRUE|FALSE|NULL)\b`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Number", Pattern: `[-+]?\d*\.?\d+`},
		{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
		{Name: "Operator", Pattern: `>=|<=|!=|<>|[=<>]`},
		{Name: "Punct", Pattern: `[,.()*]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// Participle parser
	selectParser = participle.MustBuild[SelectStmt](
		participle.Lexer(sqlLexer),
		participle.Unquote("String"),
		participle.CaseInsensitive("Keyword"),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// ParseSelect parses a SELECT string of the mini dialect using Participle.
func ParseSelect(input string) (*SelectStmt, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty query")
	}

	stmt, err := selectParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return stmt, nil
}

// Apply lowers the parsed statement onto the table view's query specification
// via the chaining API. WHERE string literals are quoted through the table's
// connection; everything else renders to plain fragments.
func (s *SelectStmt) Apply(t *database.Table) *database.Table {
	t.Select(s.SelectFragment())
	if s.Where != nil {
		t.Where(s.Where.Fragment(t.Quote))
	}
	if order := s.OrderFragment(); order != "" {
		t.OrderBy(order)
	}
	if limit := s.LimitFragment(); limit != "" {
		t.Limit(limit)
	}
	return t
}
