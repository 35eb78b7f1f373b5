package campaign

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"outflow/internal/types"
)

func TestCadenceTable(t *testing.T) {
	tests := []struct {
		cadence  types.Cadence
		min, max int
	}{
		{types.CadenceAggressive, 1, 2},
		{types.CadenceModerate, 2, 4},
		{types.CadenceGentle, 3, 7},
	}

	for _, tt := range tests {
		p := policyFor(tt.cadence)
		assert.Equal(t, tt.min, p.Min, "cadence %s", tt.cadence)
		assert.Equal(t, tt.max, p.Max, "cadence %s", tt.cadence)
		assert.Equal(t, types.DelayDays, p.Unit, "cadence %s", tt.cadence)
	}
}

func TestPolicyForDefaultsToModerate(t *testing.T) {
	assert.Equal(t, cadencePolicies[types.CadenceModerate], policyFor(""))
	assert.Equal(t, cadencePolicies[types.CadenceModerate], policyFor(types.Cadence("/frantic")))
}

func TestDrawDelayWithinRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, cadence := range []types.Cadence{types.CadenceAggressive, types.CadenceModerate, types.CadenceGentle} {
		p := policyFor(cadence)
		hitMin, hitMax := false, false
		for i := 0; i < 200; i++ {
			d := drawDelay(r, p)
			assert.GreaterOrEqual(t, d, p.Min)
			assert.LessOrEqual(t, d, p.Max)
			hitMin = hitMin || d == p.Min
			hitMax = hitMax || d == p.Max
		}
		// Both endpoints are reachable: the range is inclusive.
		assert.True(t, hitMin, "cadence %s never drew its minimum", cadence)
		assert.True(t, hitMax, "cadence %s never drew its maximum", cadence)
	}
}
