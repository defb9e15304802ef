package exa

// Secret holds the API key and redacts it everywhere except the single
// point where the auth header is built. It defeats accidental disclosure
// through fmt verbs, %#v, and JSON encoding alike.
type Secret struct {
	v string
}

// NewSecret wraps a credential in a redacting holder.
func NewSecret(v string) Secret { return Secret{v: v} }

const redacted = "[REDACTED]"

func (s Secret) String() string   { return redacted }
func (s Secret) GoString() string { return redacted }

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (s Secret) expose() string { return s.v }
