package design

import (
	"bytes"
	"encoding/json"
)

// Token is one named design value.
type Token struct {
	Name  string
	Value string
}

// Tokens is an ordered token set. It marshals to a JSON object that keeps
// the declaration order.
type Tokens []Token

var brandTokens = Tokens{
	{"primary_color", "#1a73e8"},
	{"secondary_color", "#34a853"},
	{"surface_color", "#ffffff"},
	{"background_color", "#f8f9fa"},
	{"text_primary", "#202124"},
	{"text_secondary", "#5f6368"},
	{"border_color", "#dadce0"},
	{"font_family", "Google Sans, Roboto, Arial, sans-serif"},
	{"border_radius", "8px"},
	{"spacing_unit", "8px"},
	{"elevation_1", "0 1px 2px 0 rgba(60,64,67,.3), 0 1px 3px 1px rgba(60,64,67,.15)"},
	{"elevation_2", "0 1px 2px 0 rgba(60,64,67,.3), 0 2px 6px 2px rgba(60,64,67,.15)"},
}

// BrandTokens returns a copy of the fixed reference tokens. They are not
// derived from any page.
func BrandTokens() Tokens {
	out := make(Tokens, len(brandTokens))
	copy(out, brandTokens)
	return out
}

// Map returns the tokens keyed by name.
func (t Tokens) Map() map[string]string {
	m := make(map[string]string, len(t))
	for _, tok := range t {
		m[tok.Name] = tok.Value
	}
	return m
}

func (t Tokens) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tok := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(tok.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(tok.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
