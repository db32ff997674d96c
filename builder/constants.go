package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomConnected   = "RandomConnected"
	MethodRandomRegular     = "RandomRegular"
	MethodChord             = "Chord"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest simple cycle.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with an edge.
const MinPathNodes = 2

// MinStarNodes is one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a triangle rim plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes allows the single-vertex K_1.
const MinCompleteNodes = 1

// MinGridDim is the smallest grid side; a 1×1 grid has no edges.
const MinGridDim = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

// Probability bounds for RandomConnected, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
