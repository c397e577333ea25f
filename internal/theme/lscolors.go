package theme

import (
	"strings"

	"github.com/vladdoster/eza/internal/style"
)

// pair is one key=value entry of a colon-separated specification
// string. The key is either a UI code or a glob pattern; the value is
// an SGR numeric sequence.
type pair struct {
	key   string
	value string
}

func (p pair) toStyle() style.Style {
	return style.ParseSGR(p.value)
}

// eachPair walks the entries of a specification string in declaration
// order. Chunks without an equals sign, with an empty key or value, or
// with a second equals sign are not entries and are skipped.
func eachPair(spec string, fn func(pair)) {
	for _, chunk := range strings.Split(spec, ":") {
		key, value, ok := strings.Cut(chunk, "=")
		if !ok || key == "" || value == "" || strings.Contains(value, "=") {
			continue
		}
		fn(pair{key: key, value: value})
	}
}
