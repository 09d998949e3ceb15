package pattern

// Binding pairs one wildcard token with the substring captured for it.
type Binding struct {
	Token string
	Value string
}

// Bindings is the ordered token/value list produced by a successful match.
// Order follows left-to-right token appearance in the matched template.
type Bindings []Binding

// Lookup returns the value bound to token, if any.
func (b Bindings) Lookup(token string) (string, bool) {
	for _, bd := range b {
		if bd.Token == token {
			return bd.Value, true
		}
	}
	return "", false
}

// Tokens returns the bound tokens in order.
func (b Bindings) Tokens() []string {
	tokens := make([]string, len(b))
	for i, bd := range b {
		tokens[i] = bd.Token
	}
	return tokens
}
