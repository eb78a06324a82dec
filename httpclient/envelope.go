package httpclient

import "encoding/json"

// Envelope is a decoded top-level JSON object returned by the Web API.
// Numbers decode as float64.
type Envelope map[string]any

// OK reports whether the envelope carries "ok": true.
func (e Envelope) OK() bool {
	ok, _ := e.Bool("ok")
	return ok
}

// String returns the string at key.
func (e Envelope) String(key string) (string, bool) {
	s, ok := e[key].(string)
	return s, ok
}

// Bool returns the boolean at key.
func (e Envelope) Bool(key string) (bool, bool) {
	b, ok := e[key].(bool)
	return b, ok
}

// Int returns the number at key truncated to an int.
func (e Envelope) Int(key string) (int, bool) {
	switch n := e[key].(type) {
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case int:
		return n, true
	}
	return 0, false
}

// Object returns the nested object at key.
func (e Envelope) Object(key string) (Envelope, bool) {
	m, ok := e[key].(map[string]any)
	return Envelope(m), ok
}

// Objects returns the array of objects at key. Non-object elements are skipped.
func (e Envelope) Objects(key string) ([]Envelope, bool) {
	raw, ok := e[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]Envelope, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Envelope(m))
		}
	}
	return out, true
}

// Strings returns the array of strings at key. Non-string elements are skipped.
func (e Envelope) Strings(key string) ([]string, bool) {
	raw, ok := e[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// Decode re-marshals the value at key into v. An empty key decodes the
// whole envelope. A missing key leaves v untouched and returns false.
func (e Envelope) Decode(key string, v any) (bool, error) {
	var src any = map[string]any(e)
	if key != "" {
		val, ok := e[key]
		if !ok || val == nil {
			return false, nil
		}
		src = val
	}
	data, err := json.Marshal(src)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}
