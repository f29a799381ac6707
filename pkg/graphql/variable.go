package graphql

// Variable is a named, typed placeholder declared on a query. Fields
// reference it as a filter value; its wire form is "$<key>" and its concrete
// value travels in the request's variables payload instead of the query
// text. A nil value means "unset": the declaration is omitted from the
// compiled header and every filter referencing it is dropped.
type Variable struct {
	key   string
	typ   string
	value any
}

// Key returns the variable name used in the query header and in filters.
func (v *Variable) Key() string {
	return v.key
}

// Type returns the GraphQL type declaration, e.g. "String!" or "[String!]".
func (v *Variable) Type() string {
	return v.typ
}

// Value returns the currently bound value, nil when unset.
func (v *Variable) Value() any {
	return v.value
}
