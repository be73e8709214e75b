package query

import "strings"

// AST for the Participle parser. The dialect is deliberately small: one table,
// flat column list, comparison conditions joined by AND/OR, ORDER BY and
// LIMIT. Parsed statements are lowered to the SQL fragments the table view
// chaining API accepts.

type SelectStmt struct {
	Star    bool          `parser:"'SELECT' ( @'*'"`
	Columns []string      `parser:"| @Ident (',' @Ident)* )"`
	Table   string        `parser:"'FROM' @Ident"`
	Where   *Expr         `parser:"('WHERE' @@)?"`
	Order   []*OrderField `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
	Limit   *LimitClause  `parser:"('LIMIT' @@)?"`
}

type OrderField struct {
	Column string `parser:"@Ident"`
	Dir    string `parser:"@('ASC'|'DESC')?"`
}

type LimitClause struct {
	First  string  `parser:"@Number"`
	Second *string `parser:"(',' @Number)?"`
}

type Expr struct {
	Or []*AndExpr `parser:"@@ ('OR' @@)*"`
}

type AndExpr struct {
	And []*Cond `parser:"@@ ('AND' @@)*"`
}

type Cond struct {
	Grouped *Expr       `parser:"'(' @@ ')'"`
	Cmp     *Comparison `parser:"| @@"`
}

type Comparison struct {
	Column string   `parser:"@Ident"`
	Op     string   `parser:"@('='|'!='|'<>'|'>='|'<='|'>'|'<'|'LIKE')"`
	Value  *Literal `parser:"@@"`
}

type Literal struct {
	Number *string `parser:"@Number"`
	Str    *string `parser:"| @String"`
	Bool   *string `parser:"| @('TRUE'|'FALSE')"`
	Null   bool    `parser:"| @'NULL'"`
}

// Fragment rendering: each method emits the verbatim SQL fragment handed to
// the table view. String literals pass through quote so the rendered WHERE
// stays injection safe.

func (s *SelectStmt) SelectFragment() string {
	if s.Star || len(s.Columns) == 0 {
		return "*"
	}
	return strings.Join(s.Columns, ", ")
}

func (s *SelectStmt) OrderFragment() string {
	if len(s.Order) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s.Order))
	for _, f := range s.Order {
		parts = append(parts, f.Fragment())
	}
	return strings.Join(parts, ", ")
}

func (f *OrderField) Fragment() string {
	if f.Dir == "" {
		return f.Column
	}
	return f.Column + " " + strings.ToUpper(f.Dir)
}

func (s *SelectStmt) LimitFragment() string {
	if s.Limit == nil {
		return ""
	}
	if s.Limit.Second != nil {
		return s.Limit.First + "," + *s.Limit.Second
	}
	return s.Limit.First
}

func (e *Expr) Fragment(quote func(interface{}) string) string {
	parts := make([]string, 0, len(e.Or))
	for _, or := range e.Or {
		parts = append(parts, or.Fragment(quote))
	}
	return strings.Join(parts, " OR ")
}

func (a *AndExpr) Fragment(quote func(interface{}) string) string {
	parts := make([]string, 0, len(a.And))
	for _, c := range a.And {
		parts = append(parts, c.Fragment(quote))
	}
	return strings.Join(parts, " AND ")
}

func (c *Cond) Fragment(quote func(interface{}) string) string {
	if c.Grouped != nil {
		return "(" + c.Grouped.Fragment(quote) + ")"
	}
	return c.Cmp.Fragment(quote)
}

func (c *Comparison) Fragment(quote func(interface{}) string) string {
	return c.Column + " " + strings.ToUpper(c.Op) + " " + c.Value.Fragment(quote)
}

func (l *Literal) Fragment(quote func(interface{}) string) string {
	switch {
	case l.Number != nil:
		return *l.Number
	case l.Str != nil:
		return quote(*l.Str)
	case l.Bool != nil:
		return strings.ToUpper(*l.Bool)
	case l.Null:
		return "NULL"
	default:
		return "NULL"
	}
}
