package postgres

import (
	"fmt"
	"strings"

	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
)

// decoratorColumns is the closed set of columns conditions may reference.
// Field names arriving through the ports package are looked up here and never
// spliced into SQL directly.
var decoratorColumns = map[ports.Field]string{
	ports.FieldFlowID:        "logical_flow_id",
	ports.FieldDecoratorKind: "decorator_entity_kind",
	ports.FieldDecoratorID:   "decorator_entity_id",
	ports.FieldRating:        "rating",
	ports.FieldProvenance:    "provenance",
}

// sqlBuilder accumulates a parameterized SQL fragment. Arguments are numbered
// from the configured offset so rendered fragments can follow earlier
// parameters of the enclosing statement.
type sqlBuilder struct {
	sql  strings.Builder
	args []any
	next int
}

func newSQLBuilder(argOffset int) *sqlBuilder {
	return &sqlBuilder{next: argOffset}
}

// bind registers an argument and returns its positional placeholder.
func (b *sqlBuilder) bind(arg any) string {
	b.args = append(b.args, arg)
	placeholder := fmt.Sprintf("$%d", b.next)
	b.next++
	return placeholder
}

// renderCondition walks a condition tree producing a parameterized WHERE
// fragment. Nil nodes, unknown fields and empty composites are errors: a
// condition must never silently widen to "match everything".
func renderCondition(cond ports.Condition, argOffset int) (string, []any, error) {
	if cond == nil {
		return "", nil, fmt.Errorf("condition is nil")
	}
	b := newSQLBuilder(argOffset)
	if err := b.condition(cond); err != nil {
		return "", nil, err
	}
	return b.sql.String(), b.args, nil
}

// renderSelector renders a selector sub-query with its placeholders rebound
// onto the enclosing statement's argument sequence.
func renderSelector(selector ports.Selector, argOffset int) (string, []any, error) {
	b := newSQLBuilder(argOffset)
	sub, err := b.selector(selector)
	if err != nil {
		return "", nil, err
	}
	return sub, b.args, nil
}

func (b *sqlBuilder) condition(cond ports.Condition) error {
	switch c := cond.(type) {
	case ports.Eq:
		column, err := columnFor(c.Field)
		if err != nil {
			return err
		}
		b.sql.WriteString(column + " = " + b.bind(normalizeValue(c.Value)))

	case ports.Ne:
		column, err := columnFor(c.Field)
		if err != nil {
			return err
		}
		b.sql.WriteString(column + " <> " + b.bind(normalizeValue(c.Value)))

	case ports.In:
		column, err := columnFor(c.Field)
		if err != nil {
			return err
		}
		if len(c.Values) == 0 {
			return fmt.Errorf("in condition on %s has no values", c.Field)
		}
		b.sql.WriteString(column + " IN (")
		for i, v := range c.Values {
			if i > 0 {
				b.sql.WriteString(", ")
			}
			b.sql.WriteString(b.bind(normalizeValue(v)))
		}
		b.sql.WriteString(")")

	case ports.InSelector:
		column, err := columnFor(c.Field)
		if err != nil {
			return err
		}
		sub, err := b.selector(c.Selector)
		if err != nil {
			return err
		}
		b.sql.WriteString(column + " IN (" + sub + ")")

	case ports.And:
		return b.composite("AND", c.Conditions)

	case ports.Or:
		return b.composite("OR", c.Conditions)

	case ports.Not:
		if c.Wrapped == nil {
			return fmt.Errorf("not condition wraps nothing")
		}
		b.sql.WriteString("NOT (")
		if err := b.condition(c.Wrapped); err != nil {
			return err
		}
		b.sql.WriteString(")")

	default:
		return fmt.Errorf("unsupported condition %T", cond)
	}
	return nil
}

func (b *sqlBuilder) composite(op string, conditions []ports.Condition) error {
	if len(conditions) == 0 {
		return fmt.Errorf("%s condition has no operands", strings.ToLower(op))
	}
	b.sql.WriteString("(")
	for i, inner := range conditions {
		if i > 0 {
			b.sql.WriteString(" " + op + " ")
		}
		if inner == nil {
			return fmt.Errorf("%s condition has a nil operand", strings.ToLower(op))
		}
		if err := b.condition(inner); err != nil {
			return err
		}
	}
	b.sql.WriteString(")")
	return nil
}

// selector renders a selector sub-query, rebinding its `?` placeholders onto
// the builder's argument sequence.
func (b *sqlBuilder) selector(selector ports.Selector) (string, error) {
	if selector.IsZero() {
		return "", fmt.Errorf("selector is empty")
	}
	args := selector.Args()
	var out strings.Builder
	used := 0
	for _, r := range selector.Query() {
		if r != '?' {
			out.WriteRune(r)
			continue
		}
		if used >= len(args) {
			return "", fmt.Errorf("selector has more placeholders than arguments")
		}
		out.WriteString(b.bind(args[used]))
		used++
	}
	if used != len(args) {
		return "", fmt.Errorf("selector binds %d of %d arguments", used, len(args))
	}
	return out.String(), nil
}

func columnFor(field ports.Field) (string, error) {
	column, ok := decoratorColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown condition field %q", field)
	}
	return column, nil
}

// normalizeValue lowers typed domain enums to the strings they are stored as.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case domain.AuthoritativenessRating:
		return string(t)
	case domain.EntityKind:
		return string(t)
	case domain.EntityLifecycleStatus:
		return string(t)
	case domain.FlowDirection:
		return string(t)
	}
	return v
}
