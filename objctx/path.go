package objctx

import "strings"

// JoinKey returns the canonical slash delimited key formed from the given root and the path segments produced by a
// naming convention; parts are trimmed of surrounding separators, empty and "." parts are dropped, and the result
// never begins or ends with a separator. The result is independent of the host platforms path separator, and
// re-joining the output yields the same key.
func JoinKey(root string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)

	for _, part := range append([]string{root}, segments...) {
		if part = strings.Trim(part, "/"); part != "" && part != "." {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, "/")
}
