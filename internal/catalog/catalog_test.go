package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outflow/internal/types"
)

func TestLoadEmbeddedLibrary(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Len(), 8, "library should cover the category set")
}

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

// Every template in the library honors the catalog invariants. Load already
// enforces this; the explicit walk keeps the invariants visible as tests.
func TestAllTemplatesStepOrderContiguous(t *testing.T) {
	for _, tpl := range Default().All() {
		for i, s := range tpl.Steps {
			assert.Equal(t, i+1, s.Order, "template %s step %d", tpl.ID, i)
		}
		assert.Zero(t, tpl.Steps[0].Delay, "template %s first step must have no delay", tpl.ID)
	}
}

func TestAllTemplatesConditionTargets(t *testing.T) {
	for _, tpl := range Default().All() {
		for _, s := range tpl.Steps {
			for _, c := range s.Conditions {
				if c.Action == types.ActionSwitchChannel {
					assert.NotEmpty(t, c.Target, "template %s step %d", tpl.ID, s.Order)
				} else {
					assert.Empty(t, c.Target, "template %s step %d", tpl.ID, s.Order)
				}
			}
		}
	}
}

func TestAllTemplatesChannelsAreStepUnion(t *testing.T) {
	for _, tpl := range Default().All() {
		used := make(map[types.Channel]bool)
		for _, s := range tpl.Steps {
			used[s.Channel] = true
		}
		assert.Len(t, tpl.Channels, len(used), "template %s", tpl.ID)
		for _, ch := range tpl.Channels {
			assert.True(t, used[ch], "template %s declares unused channel %s", tpl.ID, ch)
		}
	}
}

func TestGet(t *testing.T) {
	c := Default()

	tpl, err := c.Get("/tpl_cold_email_classic")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryColdOutreach, tpl.Category)

	_, err = c.Get("/tpl_does_not_exist")
	assert.True(t, errors.Is(err, types.ErrTemplateNotFound))
}

func TestByCategory(t *testing.T) {
	c := Default()

	networking := c.ByCategory(types.CategoryNetworking)
	require.NotEmpty(t, networking)
	for _, tpl := range networking {
		assert.Equal(t, types.CategoryNetworking, tpl.Category)
	}

	assert.Empty(t, c.ByCategory(types.Category("/no_such_category")))
}

func TestCategoriesSorted(t *testing.T) {
	cats := Default().Categories()
	require.NotEmpty(t, cats)
	for i := 1; i < len(cats); i++ {
		assert.Less(t, string(cats[i-1]), string(cats[i]))
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	assert.NotEmpty(t, c.Search("recruit"), "matches the recruiting template by tag/category")
	assert.NotEmpty(t, c.Search("RECRUIT"), "search is case-insensitive")
	assert.NotEmpty(t, c.Search("cold email"), "matches by name")
	assert.Empty(t, c.Search("quantum blockchain"))
	assert.Nil(t, c.Search(""), "empty query matches nothing")
	assert.Nil(t, c.Search("   "))
}
