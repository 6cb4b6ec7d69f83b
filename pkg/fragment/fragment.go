// Package fragment decodes and encodes the shareable view state carried in
// a URL fragment, such as "#model=GPT-4o" or "#search=image".
package fragment

import (
	"net/url"
	"strings"

	"github.com/agentstation/ainything/pkg/errors"
)

// Recognised fragment keys.
const (
	KeyModel  = "model"
	KeySearch = "search"
)

// ErrMalformed is matched by every Parse failure.
var ErrMalformed = errors.ErrMalformed

// State is the typed content of a fragment. Empty fields are absent.
type State struct {
	Model  string `json:"model,omitempty"`
	Search string `json:"search,omitempty"`
}

// IsZero reports whether neither key is present.
func (s State) IsZero() bool {
	return s.Model == "" && s.Search == ""
}

// Parse decodes a fragment. The input may carry a leading "#" or be a full
// URL, in which case only the part after "#" is used. Pairs are separated
// by "&" and decoded one at a time, so a bad pair under an unknown key is
// ignored. Only a recognised key with an undecodable value is an error.
// Values are percent-decoded exactly once and the first occurrence wins.
func Parse(raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[i+1:]
	}

	var st State
	seen := map[string]bool{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || (key != KeyModel && key != KeySearch) || seen[key] {
			continue
		}
		seen[key] = true

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return State{}, errors.NewParseError("fragment", "", "invalid "+key+" value "+quote(rawValue), err)
		}
		switch key {
		case KeyModel:
			st.Model = value
		case KeySearch:
			st.Search = value
		}
	}
	return st, nil
}

// Encode renders the state as a fragment without the leading "#".
// The model key comes first.
func Encode(s State) string {
	var parts []string
	if s.Model != "" {
		parts = append(parts, KeyModel+"="+escape(s.Model))
	}
	if s.Search != "" {
		parts = append(parts, KeySearch+"="+escape(s.Search))
	}
	return strings.Join(parts, "&")
}

// String returns the encoded fragment.
func (s State) String() string {
	return Encode(s)
}

// Link joins the encoded state onto base, replacing any existing fragment.
func (s State) Link(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.WrapValidation("base_url", err)
	}
	u.Fragment = ""
	u.RawFragment = ""
	link := u.String()
	if enc := Encode(s); enc != "" {
		link += "#" + enc
	}
	return link, nil
}

// ForModel is the outbound fragment for a detail view.
func ForModel(name string) string {
	return Encode(State{Model: name})
}

// escape percent-encodes a value, using %20 for spaces so links survive
// clients that do not treat "+" as a space.
func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

func quote(s string) string {
	const limit = 64
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return `"` + s + `"`
}
