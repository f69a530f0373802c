package pipeline

import "github.com/routewise/routewise/route"

// Iterator executes one guard. It must call next exactly once: next(true)
// advances the queue, next(false) stops it without running the remaining
// guards or the completion callback. An iterator that never calls next
// stalls the queue, which is how a superseded transition dies quietly.
type Iterator func(g route.Guard, next func(ok bool))

// RunQueue drives queue through iter one guard at a time. Nil entries are
// skipped. done runs exactly once, after the last guard advanced the queue.
// Each call is an independent traversal; the runner keeps no state beyond
// the index captured by its step closure.
func RunQueue(queue []route.Guard, iter Iterator, done func()) {
	var step func(index int)
	step = func(index int) {
		for index < len(queue) && queue[index] == nil {
			index++
		}
		if index >= len(queue) {
			done()
			return
		}
		iter(queue[index], func(ok bool) {
			if !ok {
				return
			}
			step(index + 1)
		})
	}
	step(0)
}
