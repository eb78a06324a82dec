package httpclient

import "strconv"

// Kind discriminates the scalar held by a Value.
type Kind int

const (
	// KindAbsent marks a parameter that is never transmitted.
	KindAbsent Kind = iota
	KindString
	KindBool
	KindInt
)

// Value is a parameter value: a string, bool, int, or absent.
// The zero Value is absent.
type Value struct {
	kind Kind
	s    string
	b    bool
	i    int64
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int) Value { return Value{kind: KindInt, i: int64(i)} }

// Absent returns the absent value.
func Absent() Value { return Value{} }

// OptString returns String(*p), or Absent when p is nil.
func OptString(p *string) Value {
	if p == nil {
		return Absent()
	}
	return String(*p)
}

// OptBool returns Bool(*p), or Absent when p is nil.
func OptBool(p *bool) Value {
	if p == nil {
		return Absent()
	}
	return Bool(*p)
}

// OptInt returns Int(*p), or Absent when p is nil.
func OptInt(p *int) Value {
	if p == nil {
		return Absent()
	}
	return Int(*p)
}

// NonEmpty returns String(s), or Absent when s is empty.
func NonEmpty(s string) Value {
	if s == "" {
		return Absent()
	}
	return String(s)
}

// Kind reports which scalar v holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is absent.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text renders v in its canonical textual form. ok is false for absent values.
func (v Value) Text() (s string, ok bool) {
	switch v.kind {
	case KindString:
		return v.s, true
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	default:
		return "", false
	}
}

// Params is the per-call parameter set.
type Params map[string]Value

// Encode drops absent entries and renders the rest as strings.
func (p Params) Encode() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if s, ok := v.Text(); ok {
			out[k] = s
		}
	}
	return out
}

// Lookup returns the textual value of key. ok is false when the key is
// missing or absent.
func (p Params) Lookup(key string) (string, bool) {
	v, found := p[key]
	if !found {
		return "", false
	}
	return v.Text()
}

// LookupString is like Lookup but only accepts string-kinded values.
func (p Params) LookupString(key string) (string, bool) {
	v, found := p[key]
	if !found || v.kind != KindString {
		return "", false
	}
	return v.s, true
}
