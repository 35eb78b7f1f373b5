package campaign

import "outflow/internal/types"

// delayPolicy is the inclusive delay range applied to every synthesized step
// after the first.
type delayPolicy struct {
	Min  int
	Max  int
	Unit types.DelayUnit
}

// cadencePolicies is the fixed cadence table.
var cadencePolicies = map[types.Cadence]delayPolicy{
	types.CadenceAggressive: {Min: 1, Max: 2, Unit: types.DelayDays},
	types.CadenceModerate:   {Min: 2, Max: 4, Unit: types.DelayDays},
	types.CadenceGentle:     {Min: 3, Max: 7, Unit: types.DelayDays},
}

// policyFor returns the delay policy for a cadence, defaulting to moderate
// for the zero value or anything unrecognized.
func policyFor(c types.Cadence) delayPolicy {
	if p, ok := cadencePolicies[c]; ok {
		return p
	}
	return cadencePolicies[types.CadenceModerate]
}

// drawDelay picks a delay uniformly within the policy's [Min, Max], inclusive.
func drawDelay(r Rand, p delayPolicy) int {
	return p.Min + r.Intn(p.Max-p.Min+1)
}
