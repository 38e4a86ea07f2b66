package common

import (
	"strings"
)

// ItemPath returns the path of a single item under some prefix,
// eg. ItemPath("/storage/imports/", "abc") -> "/storage/imports/abc"
func ItemPath(prefix, id string) string {
	return strings.TrimRight(prefix, "/") + "/" + id
}
