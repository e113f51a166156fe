// Package names implements identifier sanitization for trace output.
//
package names

// Sanitize maps an arbitrary signal or module name to a valid trace
// identifier. Letters, digits and underscores are kept; any other rune is
// replaced by an underscore. A name starting with a digit is prefixed with
// an underscore, and an empty name becomes a single underscore.
//
// Sanitize is a pure function: equal inputs always yield equal outputs.
//
func Sanitize(name string) string {
	if name == "" {
		return "_"
	}
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if isIdent(r) {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	if '0' <= out[0] && out[0] <= '9' {
		out = append([]rune{'_'}, out...)
	}
	return string(out)
}

func isIdent(r rune) bool {
	return r == '_' ||
		'a' <= r && r <= 'z' ||
		'A' <= r && r <= 'Z' ||
		'0' <= r && r <= '9'
}
