package craft

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-craft/internal/models"
)

// ErrOutOfBounds is returned when a query state has no slot in the table
var ErrOutOfBounds = errors.New("state out of bounds")

// Step is one action of a replayed rotation
type Step struct {
	State  State  `json:"state"`
	Action Action `json:"action"`
	Reward uint32 `json:"reward"`
	Total  uint32 `json:"total"`
}

// Trace is the rotation the policy chooses from a start state
type Trace struct {
	Start State  `json:"start"`
	Steps []Step `json:"steps"`
	Final State  `json:"final"`
	Total uint32 `json:"total"`
}

// Replay follows the policy from start until it reaches CannotAction
func Replay(setting models.Setting, policy *Table[Action], start State) (*Trace, error) {
	if !policy.Contains(start) {
		return nil, fmt.Errorf("%w: 0<=cp<=%d && %d<=durability<=%d && durability%%%d==0",
			ErrOutOfBounds, setting.MaxCP, DurabilityStep, setting.MaxDurability, DurabilityStep)
	}

	trace := &Trace{Start: start}
	s := start
	for {
		a := policy.Get(s)
		if a == CannotAction {
			break
		}
		next, q := s.Apply(setting, a)
		trace.Total += q
		trace.Steps = append(trace.Steps, Step{State: s, Action: a, Reward: q, Total: trace.Total})
		s = next
	}
	trace.Final = s
	return trace, nil
}
