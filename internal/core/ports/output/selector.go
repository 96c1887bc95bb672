package ports

// Selector yields a set of entity ids used to scope flow aggregation. It is
// either a literal id set or a caller-supplied sub-query returning a single
// bigint column. Sub-queries use `?` placeholders; the datastore adapter
// rebinds them to its positional style.
type Selector struct {
	query string
	args  []any
}

// IDSelector builds a selector over a literal set of entity ids.
func IDSelector(ids ...int64) Selector {
	return Selector{query: "SELECT unnest(?::bigint[])", args: []any{ids}}
}

// SubquerySelector wraps an arbitrary sub-query yielding a single bigint
// column of entity ids. The query must use `?` placeholders for its
// arguments.
func SubquerySelector(query string, args ...any) Selector {
	return Selector{query: query, args: args}
}

// Query returns the selector sub-query in `?` placeholder form.
func (s Selector) Query() string { return s.query }

// Args returns the arguments bound to the sub-query placeholders.
func (s Selector) Args() []any { return s.args }

// IsZero reports whether the selector was never populated.
func (s Selector) IsZero() bool { return s.query == "" }
