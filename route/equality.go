package route

import "strings"

// IsSameRoute reports whether two routes resolve to the same place: equal
// paths after trailing-slash normalization, equal hash, and equal query and
// params maps regardless of key order. The Start sentinel is only equal to
// itself.
func IsSameRoute(a, b *Route) bool {
	if b == Start || a == Start {
		return a == b
	}
	if a == nil || b == nil {
		return false
	}
	return cleanPath(a.Path) == cleanPath(b.Path) &&
		a.Hash == b.Hash &&
		sameStringMap(a.Query, b.Query) &&
		sameStringMap(a.Params, b.Params)
}

// IsIncludedRoute reports whether target is a prefix of current: current's
// path starts with target's normalized path, current's query contains every
// entry of target's query, and target's hash is empty or equal to
// current's. Used for link active-state highlighting.
func IsIncludedRoute(current, target *Route) bool {
	if current == nil || target == nil {
		return false
	}
	return strings.HasPrefix(cleanPath(current.Path), cleanPath(target.Path)) &&
		(target.Hash == "" || current.Hash == target.Hash) &&
		queryIncludes(current.Query, target.Query)
}

// cleanPath strips a trailing slash so "/a/" and "/a" compare equal. The
// root path is left alone.
func cleanPath(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}

func sameStringMap(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || bv != v {
			return false
		}
	}
	return true
}

func queryIncludes(current, target map[string]string) bool {
	for k, v := range target {
		cv, ok := current[k]
		if !ok || cv != v {
			return false
		}
	}
	return true
}
