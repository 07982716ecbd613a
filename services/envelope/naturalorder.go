package envelope

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// sortedKeys returns the keys so that "2" comes before "10".
func sortedKeys[V any](m map[string]V) []string {
	return slices.SortedFunc(maps.Keys(m), naturalCompare)
}

func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		if isDigit(a[0]) && isDigit(b[0]) {
			numA, restA := splitDigits(a)
			numB, restB := splitDigits(b)

			trimmedA := strings.TrimLeft(numA, "0")
			trimmedB := strings.TrimLeft(numB, "0")
			if len(trimmedA) != len(trimmedB) {
				return cmp.Compare(len(trimmedA), len(trimmedB))
			}
			if c := strings.Compare(trimmedA, trimmedB); c != 0 {
				return c
			}
			if len(numA) != len(numB) {
				return cmp.Compare(len(numA), len(numB))
			}
			a, b = restA, restB
			continue
		}

		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		a, b = a[1:], b[1:]
	}
	return cmp.Compare(len(a), len(b))
}

func splitDigits(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
