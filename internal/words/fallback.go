package words

import (
	_ "embed"
	"strings"
)

//go:embed fallback.txt
var fallbackText string

// Fallback returns the embedded word list used when no other source works.
func Fallback() []string {
	return strings.Fields(fallbackText)
}
