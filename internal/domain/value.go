// Package domain contains the core types for frontmatter validation.
package domain

// ValueKind distinguishes scalar from list frontmatter values.
type ValueKind int

const (
	// KindScalar is a plain string value.
	KindScalar ValueKind = iota
	// KindList is an ordered list of string values.
	KindList
)

// Value is a tagged frontmatter value: either a scalar string or an
// ordered list of strings. The zero Value is an empty scalar.
type Value struct {
	kind   ValueKind
	scalar string
	list   []string
}

// Scalar constructs a scalar Value.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// List constructs a list Value. A nil slice is a valid empty list.
func List(items []string) Value {
	return Value{kind: KindList, list: items}
}

// Kind reports whether the value is a scalar or a list.
func (v Value) Kind() ValueKind { return v.kind }

// IsList reports whether the value was parsed from bracket syntax.
func (v Value) IsList() bool { return v.kind == KindList }

// String returns the scalar text. For list values it returns "".
func (v Value) String() string {
	if v.kind != KindScalar {
		return ""
	}
	return v.scalar
}

// Items returns the list elements in parse order. For scalar values it
// returns nil.
func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Record is a parsed frontmatter block: field name to value. Duplicate
// keys in the source overwrite earlier ones, so a Record holds the last
// written value per key.
type Record map[string]Value

// Has reports whether the record contains the named field.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}
