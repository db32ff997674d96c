package approx

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/stcount/contract"
	"github.com/katalvlaran/stcount/wilson"
)

// Estimator runs the sequential ratio estimation on one graph.
type Estimator struct {
	g       *contract.Graph
	cfg     Config
	log     zerolog.Logger
	rng     *rand.Rand
	sampler *wilson.Sampler

	order []int // pivot position -> edge id
	pos   []int // edge id -> pivot position, -1 for edges dead at construction
	stats []PivotStats

	// stamp[id] == gen marks the edges of the current sample.
	stamp []uint64
	gen   uint64

	drawn          int64
	contracted     int
	removed        int
	shortCircuited int
	consumed       bool
}

// New prepares an estimator that will own and consume g. The pivots are the
// edges live at this moment, in id order unless cfg.Shuffle is set.
func New(g *contract.Graph, cfg Config, opts ...Option) (*Estimator, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	e := &Estimator{
		g:   g,
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = wilson.RandFromSeed(cfg.Seed)
	}
	e.sampler = wilson.NewSampler(g, wilson.WithRand(e.rng))

	e.order = g.LiveEdges()
	if cfg.Shuffle {
		wilson.Shuffle(e.order, e.rng)
	}
	e.pos = make([]int, g.EdgeCountAll())
	for id := range e.pos {
		e.pos[id] = -1
	}
	e.stats = make([]PivotStats, len(e.order))
	for k, id := range e.order {
		e.pos[id] = k
		e.stats[k] = newPivotStats(id, cfg)
	}
	e.stamp = make([]uint64, g.EdgeCountAll())

	return e, nil
}

// Count is New followed by Run.
func Count(ctx context.Context, g *contract.Graph, cfg Config, opts ...Option) (Result, error) {
	e, err := New(g, cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return e.Run(ctx)
}

// Order returns a copy of the processing order (pivot position -> edge id).
func (e *Estimator) Order() []int {
	return append([]int(nil), e.order...)
}

// Stats returns a deep copy of the per-pivot state.
func (e *Estimator) Stats() []PivotStats {
	out := make([]PivotStats, len(e.stats))
	for k, ps := range e.stats {
		ps.Buffer = append([]float64(nil), ps.Buffer...)
		out[k] = ps
	}
	return out
}

// Run resolves every pivot and returns the estimate. It can be called once;
// the graph is fully reduced afterwards.
func (e *Estimator) Run(ctx context.Context) (Result, error) {
	if e.consumed {
		return Result{}, fmt.Errorf("Run: %w", ErrConsumed)
	}
	e.consumed = true

	start := time.Now()
	K := len(e.order)
	e.log.Info().
		Int("vertices", e.g.VertexCount()).
		Int("edges", e.g.EdgeCount()).
		Int("pivots", K).
		Stringer("convergence", e.cfg.Convergence).
		Stringer("ripple", e.cfg.Ripple).
		Bool("shuffle", e.cfg.Shuffle).
		Msg("Starting spanning tree estimation")

	announced := -1
	for k := 0; k < K; {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("Run: pivot %d: %w", k, err)
		}

		ps := &e.stats[k]
		if !e.g.IsEdgeValid(ps.Edge) {
			if err := e.shortCircuit(k); err != nil {
				return Result{}, err
			}
			k++
			continue
		}

		if announced != k {
			announced = k
			e.log.Debug().
				Int("pivot", k).
				Int("edge", ps.Edge).
				Int64("inherited", ps.Present+ps.Absent).
				Stringer("mode", ps.Mode).
				Int("updates", ps.Updates).
				Msg("Pivot started")
		}

		if ps.Mode != ModeUnspecified && ps.full() {
			if ratio, ok := Converged(*ps, e.cfg); ok {
				if err := e.commit(k, ratio); err != nil {
					return Result{}, err
				}
				k++
				continue
			}
			ps.Batch = GrowBatch(*ps, e.cfg)
		}

		if err := e.sampleBatch(k); err != nil {
			return Result{}, err
		}
	}

	res, err := e.result()
	if err != nil {
		return Result{}, err
	}
	e.log.Info().
		Float64("count", res.Count).
		Float64("count_log", res.CountLog).
		Int64("effective_samples", res.EffectiveSamples).
		Int64("actual_samples", res.ActualSamples).
		Int("contracted", res.Contracted).
		Int("removed", res.Removed).
		Int("short_circuited", res.ShortCircuited).
		Dur("duration", time.Since(start)).
		Msg("Spanning tree estimation completed")

	return res, nil
}

// shortCircuit finalizes a pivot whose edge a contraction already merged.
func (e *Estimator) shortCircuit(k int) error {
	ps := &e.stats[k]
	if ps.Finalized && ps.Ratio != 1 {
		return fmt.Errorf("Run: pivot %d (edge %d) invalid with ratio %v: %w", k, ps.Edge, ps.Ratio, ErrInvariant)
	}
	ps.Ratio, ps.Finalized = 1, true
	e.shortCircuited++
	e.log.Debug().Int("pivot", k).Int("edge", ps.Edge).Msg("Pivot short-circuited")

	return nil
}

// commit finalizes pivot k with ratio and applies its mode to the graph.
func (e *Estimator) commit(k int, ratio float64) error {
	ps := &e.stats[k]
	ps.Ratio, ps.Finalized = ratio, true

	switch ps.Mode {
	case ModePresence:
		side, err := e.g.ContractEdge(ps.Edge, true)
		if err != nil {
			return fmt.Errorf("Run: contract pivot %d: %w", k, err)
		}
		for _, id := range side {
			j := e.pos[id]
			if j <= k {
				return fmt.Errorf("Run: contraction of pivot %d invalidated edge %d at position %d: %w", k, id, j, ErrInvariant)
			}
			e.stats[j].Ratio, e.stats[j].Finalized = 1, true
		}
		e.contracted++
	case ModeAbsence:
		if err := e.g.RemoveEdge(ps.Edge); err != nil {
			return fmt.Errorf("Run: remove pivot %d: %w", k, err)
		}
		e.removed++
	default:
		return fmt.Errorf("Run: pivot %d converged without a mode: %w", k, ErrInvariant)
	}

	e.log.Debug().
		Int("pivot", k).
		Int("edge", ps.Edge).
		Stringer("mode", ps.Mode).
		Float64("ratio", ratio).
		Int64("samples", ps.Total).
		Int("batch", ps.Batch).
		Msg("Pivot converged")

	return nil
}

// sampleBatch draws the batch requested by pivot k, feeds every sample to k
// and rippled downstream pivots, then folds and classifies.
func (e *Estimator) sampleBatch(k int) error {
	K := len(e.stats)
	batch := e.stats[k].Batch

	root, err := e.root()
	if err != nil {
		return fmt.Errorf("Run: pivot %d: %w", k, err)
	}

	horizon := K
	if e.cfg.Ripple == RippleOff {
		horizon = k + 1
	}
	for i := 0; i < batch; i++ {
		tree, err := e.sampler.Sample(root)
		if err != nil {
			return fmt.Errorf("Run: pivot %d: %w", k, err)
		}
		if c := e.sampler.Components(); c > 1 {
			return fmt.Errorf("Run: pivot %d: live graph has %d components: %w", k, c, contract.ErrDisconnected)
		}
		e.drawn++

		e.gen++
		for _, id := range tree {
			if !e.g.IsEdgeValid(id) {
				return fmt.Errorf("Run: sample holds dead edge %d: %w", id, ErrInvariant)
			}
			e.stamp[id] = e.gen
		}

		for j := k; j < horizon; j++ {
			ps := &e.stats[j]
			if ps.Finalized || !e.g.IsEdgeValid(ps.Edge) {
				if j == k {
					return fmt.Errorf("Run: current pivot %d is not pending: %w", k, ErrInvariant)
				}
				continue
			}
			if !ps.observe(e.stamp[ps.Edge] == e.gen) {
				if e.cfg.Ripple == RipplePerBatch {
					horizon = j + 1
				}
				break
			}
		}
	}

	for j := k; j < K; j++ {
		ps := &e.stats[j]
		if ps.Finalized || !e.g.IsEdgeValid(ps.Edge) {
			continue
		}
		ps.fold()
		if ps.Mode == ModeUnspecified {
			mode, ok := Classify(*ps, e.cfg)
			if !ok {
				break
			}
			ps.Mode = mode
		}
	}

	e.log.Trace().
		Int("pivot", k).
		Int("root", root).
		Int("batch", batch).
		Int("horizon", horizon).
		Int64("drawn", e.drawn).
		Msg("Batch sampled")

	return nil
}

func (e *Estimator) root() (int, error) {
	if e.cfg.RandomRoot {
		return e.g.RandomConnectedVertex(e.rng)
	}
	return e.g.FirstConnectedVertex()
}

// result checks the final ratios and multiplies them out.
func (e *Estimator) result() (Result, error) {
	K := len(e.stats)
	res := Result{
		Count:          1,
		ActualSamples:  e.drawn,
		Pivots:         K,
		Contracted:     e.contracted,
		Removed:        e.removed,
		ShortCircuited: e.shortCircuited,
		Ratios:         make([]float64, K),
	}
	if K == 0 {
		return res, nil
	}
	if last := e.stats[K-1]; last.Ratio != 1 {
		return Result{}, fmt.Errorf("Run: last pivot ratio %v, want 1: %w", last.Ratio, ErrInvariant)
	}

	for k, ps := range e.stats {
		if !ps.Finalized || !(ps.Ratio > 0) || ps.Ratio > 1 {
			return Result{}, fmt.Errorf("Run: pivot %d final ratio %v: %w", k, ps.Ratio, ErrInvariant)
		}
		res.Ratios[k] = ps.Ratio
		res.Count *= 1 / ps.Ratio
		res.CountLog += math.Log(1 / ps.Ratio)
		res.EffectiveSamples += ps.Present + ps.Absent
	}

	return res, nil
}
