package bindq

import (
	"regexp"
	"strconv"
	"strings"
)

// jsonField matches expressions of the form expr->>'field'.
var jsonField = regexp.MustCompile(`^(.+?)\s*->>\s*'([^']*)'$`)

// simplifyName reduces a column expression to a placeholder identifier.
// The qualifier is cut at the last dot before the JSON rewrite, even when
// that dot sits inside a quoted key: data->>'a.b' becomes b'.
func simplifyName(candidate string) string {
	if i := strings.LastIndex(candidate, "."); i >= 0 {
		candidate = candidate[i+1:]
	}
	name := strings.ToLower(strings.TrimSpace(candidate))
	if m := jsonField.FindStringSubmatch(name); m != nil {
		name = m[1] + "_" + m[2]
	}
	return name
}

// uniqueName derives a bind name from candidate that no variable in binds
// already uses. Existing names are never changed.
func uniqueName(candidate string, binds []BindVariable) string {
	name := simplifyName(candidate)

	taken := make(map[string]struct{}, len(binds))
	for _, b := range binds {
		taken[b.Name()] = struct{}{}
	}
	if _, ok := taken[name]; !ok {
		return name
	}

	// At most len(binds) names are taken, so one of the first
	// len(binds)+1 suffixes is free.
	for n := 2; ; n++ {
		next := name + strconv.Itoa(n)
		if _, ok := taken[next]; !ok {
			return next
		}
	}
}
