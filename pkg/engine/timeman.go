package engine

import (
	"time"
)

// Limits carries the clock fields of a host "go" command, in
// milliseconds as they arrive on the wire.
type Limits struct {
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MovesToGo      int
	MoveTime       int
}

// timePlan is the per-move budget: optimum is when an iteration should
// stop starting new work, maximum is the hard cutoff. When nodestime is
// in use the budget is additionally expressed as a node count.
type timePlan struct {
	optimum time.Duration
	maximum time.Duration
	nodes   int64
}

const defaultMovesToGo = 40

// PlanMove turns the host clock into a move budget using the time
// options (Move Overhead, Minimum Thinking Time, Slow Mover, nodestime,
// Ponder). A zero plan means no time control applies.
func (eng *Engine) PlanMove(limits Limits, whiteMove bool) timePlan {
	var o = eng.options
	var overhead = time.Duration(o.Find("Move Overhead").Int()) * time.Millisecond
	var minThinking = time.Duration(o.Find("Minimum Thinking Time").Int()) * time.Millisecond
	var slowMover = o.Find("Slow Mover").Int()

	var plan timePlan
	if limits.MoveTime > 0 {
		var d = time.Duration(limits.MoveTime) * time.Millisecond
		plan.optimum = d
		plan.maximum = d
	} else {
		var main, inc time.Duration
		if whiteMove {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		if main == 0 {
			return plan
		}
		main -= overhead
		if main < minThinking {
			main = minThinking
		}
		var moves = limits.MovesToGo
		if moves == 0 || moves > defaultMovesToGo {
			moves = defaultMovesToGo
		}
		var ideal = (main/time.Duration(moves) + inc) * time.Duration(slowMover) / 100
		plan.optimum = limitDuration(ideal*7/10, minThinking, main)
		plan.maximum = limitDuration(ideal*21/10, minThinking, main)
	}

	// When pondering we expect extra time while the opponent thinks.
	if o.Find("Ponder").Int() != 0 {
		plan.optimum += plan.optimum / 4
		if plan.optimum > plan.maximum {
			plan.optimum = plan.maximum
		}
	}

	if npmsec := o.Find("nodestime").Int(); npmsec > 0 {
		plan.nodes = int64(npmsec) * plan.maximum.Milliseconds()
	}

	return plan
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
