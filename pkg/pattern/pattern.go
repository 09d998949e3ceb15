package pattern

import (
	"regexp"
	"strings"
)

// Compiled is a template compiled to an anchored matcher plus the ordered
// list of wildcard tokens it declares.
type Compiled struct {
	source string
	re     *regexp.Regexp
	tokens []string
}

// isToken reports whether s[i:] starts a %1..%9 wildcard token.
func isToken(s string, i int) bool {
	return s[i] == '%' && i+1 < len(s) && s[i+1] >= '1' && s[i+1] <= '9'
}

// Compile turns a template into a Compiled matcher. Every string is a valid
// template; a template without tokens matches only its literal self.
func Compile(template string) *Compiled {
	var expr strings.Builder
	expr.WriteString(`(?s)\A`)

	var tokens []string
	seen := make(map[string]bool)

	lit := 0 // start of the pending literal run
	for i := 0; i < len(template); {
		if !isToken(template, i) {
			i++
			continue
		}
		expr.WriteString(regexp.QuoteMeta(template[lit:i]))
		token := template[i : i+2]
		if seen[token] {
			// Repeated token: the first occurrence is authoritative, later
			// ones match any run without capturing.
			expr.WriteString(`.*`)
		} else {
			seen[token] = true
			tokens = append(tokens, token)
			expr.WriteString(`(.*)`)
		}
		i += 2
		lit = i
	}
	expr.WriteString(regexp.QuoteMeta(template[lit:]))
	expr.WriteString(`\z`)

	return &Compiled{
		source: template,
		re:     regexp.MustCompile(expr.String()),
		tokens: tokens,
	}
}

// String returns the original template.
func (c *Compiled) String() string {
	return c.source
}

// Tokens returns the wildcard tokens in left-to-right order of appearance.
func (c *Compiled) Tokens() []string {
	return c.tokens
}

// Match tests path against the template. On success it returns the bindings
// pairing each token with its captured substring, positionally.
func (c *Compiled) Match(path string) (Bindings, bool) {
	m := c.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	bindings := make(Bindings, 0, len(c.tokens))
	for i, token := range c.tokens {
		bindings = append(bindings, Binding{Token: token, Value: m[i+1]})
	}
	return bindings, true
}

// Expand substitutes bindings into a template in a single left-to-right
// scan, replacing every occurrence of each bound token with its value.
// Substituted values are never rescanned, so token-shaped text inside a
// captured value stays literal. Tokens without a binding pass through
// literally; the caller's existence check will reject the result.
func Expand(template string, bindings Bindings) string {
	var out strings.Builder
	lit := 0
	for i := 0; i < len(template); {
		if !isToken(template, i) {
			i++
			continue
		}
		out.WriteString(template[lit:i])
		token := template[i : i+2]
		if value, ok := bindings.Lookup(token); ok {
			out.WriteString(value)
		} else {
			out.WriteString(token)
		}
		i += 2
		lit = i
	}
	out.WriteString(template[lit:])
	return out.String()
}
