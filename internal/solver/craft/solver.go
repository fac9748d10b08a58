package craft

import (
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/napolitain/solver-craft/internal/logging"
	"github.com/napolitain/solver-craft/internal/models"
)

// DefaultChunkSize is the number of states one worker evaluates per task
const DefaultChunkSize = 1024

// ProgressFunc is called after each CP layer with the number of finished
// layers and the total. It must not retain the solver.
type ProgressFunc func(done, total int)

// Solver fills the value and policy tables by backward induction over CP
type Solver struct {
	setting   models.Setting
	space     *StateSpace
	workers   int
	chunkSize int
	progress  ProgressFunc
	logger    *slog.Logger
}

// Option configures a Solver
type Option func(*Solver)

// WithWorkers bounds the number of goroutines evaluating a layer
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithChunkSize sets how many states a worker evaluates per task
func WithChunkSize(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithProgress registers a layer progress callback
func WithProgress(fn ProgressFunc) Option {
	return func(s *Solver) {
		s.progress = fn
	}
}

// NewSolver creates a solver for a validated setting
func NewSolver(setting models.Setting, opts ...Option) *Solver {
	s := &Solver{
		setting:   setting,
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		logger:    logging.New("solver"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.space = NewStateSpace(setting)
	return s
}

// Space returns the state space the solver fills
func (s *Solver) Space() *StateSpace {
	return s.space
}

// Solve computes the best total quality and the best first action of every state.
//
// Layers are processed in increasing CP. Every action costs CP, so a layer
// only reads layers below it and the states of one layer can be evaluated
// concurrently; errgroup.Wait is the barrier between layers.
func (s *Solver) Solve() (*Table[uint32], *Table[Action]) {
	start := time.Now()
	values := NewTable[uint32](s.space)
	policy := NewTable[Action](s.space)

	s.logger.Info("building table",
		"buffs", len(s.space.Buffs()),
		"states", s.space.Size(),
		"workers", s.workers,
		"sustain", s.setting.Sustain)

	total := s.setting.MaxCP + 1
	layerSize := s.space.LayerSize()

	// Layer 0 keeps the zero values: quality 0, CannotAction
	s.report(1, total)

	for cp := 1; cp <= s.setting.MaxCP; cp++ {
		lower := values.below(cp)
		vc := values.layer(cp)
		ac := policy.layer(cp)

		var g errgroup.Group
		g.SetLimit(s.workers)
		for lo := 0; lo < layerSize; lo += s.chunkSize {
			hi := min(lo+s.chunkSize, layerSize)
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					ac[i], vc[i] = s.bestAction(lower, s.space.StateAt(cp, i))
				}
				return nil
			})
		}
		_ = g.Wait() // barrier; chunks never fail

		s.logger.Debug("layer done", "cp", cp)
		s.report(cp+1, total)
	}

	s.logger.Info("table built", "elapsed", time.Since(start).Round(time.Millisecond))
	return values, policy
}

func (s *Solver) report(done, total int) {
	if s.progress != nil {
		s.progress(done, total)
	}
}

// bestAction evaluates every candidate against the finished lower layers.
// Only a strictly greater total replaces the current best.
func (s *Solver) bestAction(lower []uint32, st State) (Action, uint32) {
	best := CannotAction
	var bestValue uint32

	for _, a := range CandidateActions {
		if !st.CanApply(a) {
			continue
		}
		next, q := st.Apply(s.setting, a)
		idx, ok := s.space.Index(next)
		if !ok {
			continue
		}
		if v := q + lower[idx]; v > bestValue {
			best = a
			bestValue = v
		}
	}
	return best, bestValue
}

// BuildTable solves a setting and returns the value and policy tables
func BuildTable(setting models.Setting, opts ...Option) (*Table[uint32], *Table[Action]) {
	return NewSolver(setting, opts...).Solve()
}
