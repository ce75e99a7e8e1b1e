// Package utils contains small helpers shared by the commands.
package utils

import "strings"

// StringInSlice reports whether a is contained in list. The comparison
// is case insensitive.
func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if strings.EqualFold(a, b) {
			return true
		}
	}
	return false
}
