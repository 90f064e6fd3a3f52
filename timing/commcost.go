package timing

import "github.com/katalvlaran/smctpd/core"

// CommCost computes the actual communication time for the edge u->v when u
// runs on vmFrom and v runs on vmTo, given the normalized cost table entry
// for (u,v). Same-VM communication is always zero. Otherwise the table's
// normalized value (at BaseBandwidth) is rescaled by the ratio of the
// canonical bandwidth to the actual pairwise bandwidth between the two VMs:
//
//	cost = table(u,v) * BaseBandwidth / bandwidth(vmFrom, vmTo)
//
// If u has no entry in the table (e.g. u has no successors reaching v), 0
// is returned along with ok=false so callers can distinguish "no edge" from
// "free transfer".
func CommCost(table CostTable, u, v core.TaskID, vmFrom, vmTo *core.VM) (float64, bool) {
	if vmFrom.Index == vmTo.Index {
		return 0, true
	}
	base, ok := table.Lookup(u, v)
	if !ok {
		return 0, false
	}
	bw, bwOK := vmFrom.Bandwidth[vmTo.ID]
	if !bwOK || bw <= 0 {
		return 0, false
	}
	return base * BaseBandwidth / bw, true
}
