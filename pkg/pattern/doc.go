// Package pattern compiles relfiles path templates into anchored matchers.
//
// A template is a literal file path that may embed the positional wildcard
// tokens %1..%9. Each token matches any run of characters (greedy, possibly
// empty); everything else, dots included, matches verbatim. Matching is
// always against the full path, never a substring.
package pattern
