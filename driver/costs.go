package driver

import (
	"errors"

	"github.com/katalvlaran/smctpd/core"
	"github.com/katalvlaran/smctpd/timing"
)

// ErrZeroBandwidth indicates a VM pair reports non-positive bandwidth, a
// violation of the data model's "positive real for i!=j" invariant that
// core.NewGraph does not itself check (it only checks completeness).
var ErrZeroBandwidth = errors.New("driver: vm pair reports non-positive bandwidth")

// buildAveragedCostTable derives pass 1's cost table: every edge (u,v) is
// priced as dataVolume(u,v) scaled by the mean of 1/bandwidth(k,l) over
// every ordered VM pair k!=l, then re-expressed at the canonical
// BaseBandwidth the rest of the engine expects a CostTable to be
// normalized to (see timing.CostTable's doc comment). With a single VM
// (no cross-VM pair exists) every edge costs 0.
func buildAveragedCostTable(g *core.Graph, dataVolume timing.CostTable) (timing.CostTable, error) {
	vms := g.VMs()
	out := make(timing.CostTable, len(dataVolume))

	if len(vms) < 2 {
		for edge := range dataVolume {
			out[edge] = 0
		}
		return out, nil
	}

	var sumInverse float64
	var pairs int
	for _, a := range vms {
		for _, b := range vms {
			if a.ID == b.ID {
				continue
			}
			bw, ok := a.Bandwidth[b.ID]
			if !ok || bw <= 0 {
				return nil, ErrZeroBandwidth
			}
			sumInverse += 1 / bw
			pairs++
		}
	}
	avgInverse := sumInverse / float64(pairs)

	for edge, volume := range dataVolume {
		out[edge] = volume * avgInverse * timing.BaseBandwidth
	}
	return out, nil
}

// buildAssignmentCostTable derives a later pass's cost table from a prior
// pass's placement: every edge (u,v) with u and v on the same VM costs 0;
// otherwise it is priced at the actual bandwidth between their two VMs,
// re-expressed at canonical BaseBandwidth the same way pass 1's table is.
// An edge whose endpoint is missing from placement (should not happen once
// SMGT has placed every task) falls back to the global average.
func buildAssignmentCostTable(g *core.Graph, dataVolume timing.CostTable, placement map[core.TaskID]core.VmIndex) (timing.CostTable, error) {
	avg, err := buildAveragedCostTable(g, dataVolume)
	if err != nil {
		return nil, err
	}

	out := make(timing.CostTable, len(dataVolume))
	for edge, volume := range dataVolume {
		uVM, uOK := placement[edge.From]
		vVM, vOK := placement[edge.To]
		if !uOK || !vOK {
			out[edge] = avg[edge]
			continue
		}
		if uVM == vVM {
			out[edge] = 0
			continue
		}
		vmU, err := g.VMByIndex(uVM)
		if err != nil {
			return nil, err
		}
		vmV, err := g.VMByIndex(vVM)
		if err != nil {
			return nil, err
		}
		bw, ok := vmU.Bandwidth[vmV.ID]
		if !ok || bw <= 0 {
			return nil, ErrZeroBandwidth
		}
		out[edge] = volume * timing.BaseBandwidth / bw
	}
	return out, nil
}
