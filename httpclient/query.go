package httpclient

import (
	"sort"
	"strings"
)

// Slack rejects these characters unescaped in a query string even though
// generic URL rules allow them. Applied in order to the already-encoded query.
var strictEscapes = strings.NewReplacer(
	">", "%3E",
	"<", "%3C",
	"@", "%40",
	"?", "%3F",
	"+", "%2B",
)

// EncodeQuery renders params as a query string: absent entries dropped, keys
// sorted, keys and values percent-encoded, then the strict escapes applied.
func EncodeQuery(params Params) string {
	encoded := params.Encode()
	if len(encoded) == 0 {
		return ""
	}

	keys := make([]string, 0, len(encoded))
	for k := range encoded {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeQueryComponent(k))
		b.WriteByte('=')
		b.WriteString(escapeQueryComponent(encoded[k]))
	}
	return applyStrictEscapes(b.String())
}

// applyStrictEscapes performs literal replacement on an encoded query. It
// never touches '%', so existing escapes are not doubled.
func applyStrictEscapes(query string) string {
	return strictEscapes.Replace(query)
}

const upperhex = "0123456789ABCDEF"

// escapeQueryComponent percent-encodes every byte outside the query-safe set.
// Space becomes %20, never '+'. The characters '+', '?' and '@' are left for
// applyStrictEscapes.
func escapeQueryComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isQuerySafe(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isQuerySafe(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

// isQuerySafe reports whether c may appear literally inside a query key or
// value: RFC 3986 unreserved characters plus the query sub-delimiters that
// do not separate pairs.
func isQuerySafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~',
		'!', '$', '\'', '(', ')', '*', ',', ';', ':', '/',
		'+', '?', '@':
		return true
	}
	return false
}
