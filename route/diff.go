package route

// DiffRecords partitions a transition's matched chains into the records kept
// across the transition, the records being entered, and the records being
// left. The walk stops at the first index where the chains stop sharing
// record identity; the matcher guarantees identical *Record pointers for
// unchanged ancestors.
//
// Identical chains yield empty activated and deactivated sets; fully
// disjoint chains yield an empty updated set.
func DiffRecords(current, next []*Record) (updated, activated, deactivated []*Record) {
	max := len(next)
	if len(current) < max {
		max = len(current)
	}

	i := 0
	for ; i < max; i++ {
		if current[i] != next[i] {
			break
		}
	}

	return next[:i], next[i:], current[i:]
}
