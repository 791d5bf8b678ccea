package scenario

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"what-if-engine/internal/assumptions"
)

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	reg, err := NewRegistry(assumptions.MustDefault(), opts...)
	require.NoError(t, err)
	return reg
}

func TestRegistryOrder(t *testing.T) {
	reg := newTestRegistry(t)

	all, err := reg.List(AllCategories)
	require.NoError(t, err)

	var ids []string
	for _, sc := range all {
		ids = append(ids, sc.ID)
	}
	want := []string{"bitcoin", "tesla", "coffee", "sidehustle", "savings", "sleep", "walking", "reading", "coding"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("registration order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryGet(t *testing.T) {
	reg := newTestRegistry(t)

	sc, err := reg.Get("coffee")
	require.NoError(t, err)
	assert.Equal(t, "COFFEE_SAVINGS", sc.Title)
	assert.Equal(t, "finance", sc.Category)

	_, err = reg.Get("lottery")
	assert.ErrorIs(t, err, ErrUnknownScenario)
	assert.False(t, reg.Has("lottery"))
}

func TestListByCategory(t *testing.T) {
	reg := newTestRegistry(t)

	health, err := reg.List("health")
	require.NoError(t, err)
	require.Len(t, health, 2)
	assert.Equal(t, "sleep", health[0].ID)
	assert.Equal(t, "walking", health[1].ID)

	empty, err := reg.List("environment")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = reg.List("astrology")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryPartition(t *testing.T) {
	reg := newTestRegistry(t)

	all, err := reg.List(AllCategories)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, c := range reg.Categories() {
		if c.Key == AllCategories {
			continue
		}
		members, err := reg.List(c.Key)
		require.NoError(t, err)
		for _, sc := range members {
			assert.Equal(t, c.Key, sc.Category)
			seen[sc.ID]++
		}
	}

	require.Len(t, seen, len(all))
	for _, sc := range all {
		assert.Equal(t, 1, seen[sc.ID], "scenario %s", sc.ID)
	}
}

func TestCategoriesStartWithAll(t *testing.T) {
	reg := newTestRegistry(t)
	cats := reg.Categories()
	require.Len(t, cats, 10)
	assert.Equal(t, AllCategories, cats[0].Key)
	assert.Equal(t, "ALL_SCENARIOS", cats[0].Name)

	// Callers cannot mutate the catalog through the returned slice.
	cats[0].Name = "changed"
	assert.Equal(t, "ALL_SCENARIOS", reg.Categories()[0].Name)
}

func TestEveryScenarioCategoryIsKnown(t *testing.T) {
	reg := newTestRegistry(t)
	all, _ := reg.List(AllCategories)
	for _, sc := range all {
		assert.True(t, reg.HasCategory(sc.Category), "scenario %s", sc.ID)
		assert.NotEqual(t, AllCategories, sc.Category)
	}
}

func TestDefaults(t *testing.T) {
	reg := newTestRegistry(t)
	defaults := reg.Defaults()
	assert.Len(t, defaults, 9)
	assert.Equal(t, NumberInput(1000), defaults["bitcoin"])
	assert.Equal(t, NumberInput(5000), defaults["walking"])
	assert.Equal(t, "bitcoin", reg.First().ID)
}

func TestNewRegistryRejectsBadPolicy(t *testing.T) {
	_, err := NewRegistry(assumptions.MustDefault(), WithBoundaryPolicy("reject"))
	assert.Error(t, err)

	_, err = NewRegistry(nil)
	assert.Error(t, err)
}
