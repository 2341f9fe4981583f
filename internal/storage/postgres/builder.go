package postgres

import (
	"fmt"
	"strings"
)

// QueryBuilder collects WHERE predicates as (fragment, bound values) pairs
// and renders them with correctly numbered placeholders. Fragments use '?'
// for each bound value; Render rewrites them to $1..$n keeping a running
// counter, so criteria never collide no matter how many were added before.
type QueryBuilder struct {
	conds []string
	args  []any
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (b *QueryBuilder) Where(fragment string, args ...any) *QueryBuilder {
	if n := strings.Count(fragment, "?"); n != len(args) {
		panic(fmt.Sprintf("query builder: fragment %q has %d placeholders but %d args", fragment, n, len(args)))
	}
	b.conds = append(b.conds, b.number(fragment, args))
	return b
}

// Bind registers a single value outside the WHERE clause (ORDER BY
// expressions, LIMIT, OFFSET) and returns its placeholder. Values bound
// after all Where calls always receive the highest numbers.
func (b *QueryBuilder) Bind(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

// WhereClause renders the collected predicates joined with AND. With no
// predicates it renders a tautology so callers can always append it.
func (b *QueryBuilder) WhereClause() string {
	if len(b.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(b.conds, " AND ")
}

func (b *QueryBuilder) Args() []any {
	return b.args
}

func (b *QueryBuilder) number(fragment string, args []any) string {
	var sb strings.Builder
	argIdx := 0
	for _, r := range fragment {
		if r != '?' {
			sb.WriteRune(r)
			continue
		}
		b.args = append(b.args, args[argIdx])
		argIdx++
		fmt.Fprintf(&sb, "$%d", len(b.args))
	}
	return sb.String()
}
