package contract_test

import "testing"

// BenchmarkContractEdge_Complete measures contracting K_60 down to a single
// vertex; the graph is cloned outside the timed region.
func BenchmarkContractEdge_Complete(b *testing.B) {
	base := complete(b, 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		for id := 0; id < g.EdgeCountAll(); id++ {
			if g.IsEdgeValid(id) {
				_, _ = g.ContractEdge(id, true)
			}
		}
	}
}

// BenchmarkRemoveEdge_Complete removes every other edge of K_60.
func BenchmarkRemoveEdge_Complete(b *testing.B) {
	base := complete(b, 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		for id := 0; id < g.EdgeCountAll(); id += 2 {
			_ = g.RemoveEdge(id)
		}
	}
}
