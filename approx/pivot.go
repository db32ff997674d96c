package approx

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ratioUnset marks a pivot that has not folded a ratio yet.
const ratioUnset = -1.0

// PivotStats is the running state of one pivot. The convergence logic lives
// in the pure functions Converged, GrowBatch and Classify.
type PivotStats struct {
	Edge      int       // edge id handled at this position
	Present   int64     // observations with the edge in the tree
	Absent    int64     // observations without it
	Total     int64     // observations folded into Ratio
	Mode      CountMode // set once, never changed
	Ratio     float64   // current estimate, ratioUnset before the first fold
	Finalized bool
	Buffer    []float64 // circular buffer of 1/Ratio snapshots
	Updates   int       // snapshots taken; Buffer is full once Updates ≥ len(Buffer)
	Batch     int       // requested batch size, never shrinks
}

func newPivotStats(edge int, cfg Config) PivotStats {
	return PivotStats{
		Edge:   edge,
		Ratio:  ratioUnset,
		Buffer: make([]float64, cfg.BufferSize),
		Batch:  cfg.InitialBatchSize,
	}
}

// observe records one sample and reports whether it agrees with the
// committed mode. Unspecified never agrees.
func (ps *PivotStats) observe(present bool) bool {
	if present {
		ps.Present++
		return ps.Mode == ModePresence
	}
	ps.Absent++
	return ps.Mode == ModeAbsence
}

// fold takes a snapshot once Batch new observations have accumulated since
// the last fold. It reports whether a snapshot entered the buffer; an
// unclassified pivot advances Total only.
func (ps *PivotStats) fold() bool {
	seen := ps.Present + ps.Absent
	if seen < ps.Total+int64(ps.Batch) {
		return false
	}
	ps.Total = seen

	switch ps.Mode {
	case ModePresence:
		ps.Ratio = float64(ps.Present) / float64(seen)
	case ModeAbsence:
		ps.Ratio = float64(ps.Absent) / float64(seen)
	default:
		return false
	}
	ps.Buffer[ps.Updates%len(ps.Buffer)] = 1 / ps.Ratio
	ps.Updates++

	return true
}

// full reports whether every buffer slot holds a snapshot.
func (ps *PivotStats) full() bool { return ps.Updates >= len(ps.Buffer) }

// Converged applies cfg.Convergence to ps and returns the final ratio.
// It never converges an unclassified pivot or one whose buffer is not yet
// full.
func Converged(ps PivotStats, cfg Config) (float64, bool) {
	if ps.Mode == ModeUnspecified || len(ps.Buffer) == 0 || !ps.full() {
		return 0, false
	}

	switch cfg.Convergence {
	case ConvergenceRatio:
		rmax, rmin := floats.Max(ps.Buffer), floats.Min(ps.Buffer)
		if rmax/rmin < 1+cfg.RatioThreshold {
			return 1 / (0.5 * (rmax + rmin)), true
		}
	case ConvergenceVariance:
		mean, std := stat.PopMeanStdDev(ps.Buffer, nil)
		if std/mean < cfg.VarianceThreshold {
			return 1 / mean, true
		}
	case ConvergenceConstant:
		if ps.Total > cfg.ConstantThreshold {
			return ps.Ratio, true
		}
	}

	return 0, false
}

// GrowBatch returns the batch size for a pivot that failed to converge:
// roughly a tenth of the samples folded per buffer slot, never smaller than
// the current request.
func GrowBatch(ps PivotStats, cfg Config) int {
	grown := ps.Total / int64(cfg.BufferSize) / 10
	if grown > int64(ps.Batch) {
		return int(grown)
	}
	return ps.Batch
}

// Classify decides the permanent mode of ps once PresampleSize samples have
// been folded. A mode that is already set is returned unchanged.
func Classify(ps PivotStats, cfg Config) (CountMode, bool) {
	if ps.Mode != ModeUnspecified {
		return ps.Mode, true
	}
	if ps.Total < cfg.PresampleSize {
		return ModeUnspecified, false
	}
	if float64(ps.Present)/float64(ps.Present+ps.Absent) > 0.5 {
		return ModePresence, true
	}
	return ModeAbsence, true
}
