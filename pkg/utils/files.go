package utils

import (
	"path/filepath"
	"strings"
)

// OutputPath derives an output file name from in by swapping its extension
// for ext. A path without an extension just gets ext appended.
func OutputPath(in, ext string) string {
	old := filepath.Ext(in)
	if old == "" {
		return in + ext
	}
	return strings.TrimSuffix(in, old) + ext
}
