package graph

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_StripsPlaceholders(t *testing.T) {
	snapshot := `{
		"nodes": [
			{"id": "a", "kind": "profileVisit"},
			{"id": "x", "kind": "addStep"},
			{"id": "b", "kind": "likePost", "config": {"recentPostDays": 14}}
		],
		"edges": [
			{"source": "a", "target": "b", "delay": {"magnitude": 15, "unit": "m"}},
			{"source": "b", "target": "x"},
			{"source": "x", "target": "a"}
		]
	}`

	g, err := Parse([]byte(snapshot))
	require.NoError(t, err)

	assert.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "a", g.Edges[0].Source)
	assert.Equal(t, "b", g.Edges[0].Target)
	assert.Equal(t, 15*time.Minute, g.Edges[0].Delay.Duration())

	b, ok := g.Node("b")
	require.True(t, ok)
	assert.EqualValues(t, 14, b.Config["recentPostDays"])
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"nodes": [`))
	assert.Error(t, err)
}

func TestDelay_Duration(t *testing.T) {
	tests := []struct {
		delay Delay
		want  time.Duration
	}{
		{Delay{30, UnitSeconds}, 30 * time.Second},
		{Delay{15, UnitMinutes}, 15 * time.Minute},
		{Delay{2, UnitHours}, 2 * time.Hour},
		{Delay{2, UnitDays}, 48 * time.Hour},
		{Delay{1, UnitWeeks}, 7 * 24 * time.Hour},
		{Delay{5, Unit("bogus")}, 5 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.delay.Duration())
	}
}

func TestGraph_Topology(t *testing.T) {
	g := &Graph{
		Nodes: []Node{
			{ID: "a", Kind: KindProfileVisit},
			{ID: "b", Kind: KindLikePost},
			{ID: "c", Kind: KindSendConnectionRequest},
		},
		Edges: []Edge{
			{Source: "a", Target: "c"},
			{Source: "b", Target: "c"},
		},
	}

	assert.Equal(t, []string{"a", "b"}, g.Sources())
	assert.Equal(t, map[string]int{"a": 0, "b": 0, "c": 2}, g.InDegrees())
	assert.Len(t, g.Adjacency()["a"], 1)
}

// Serializing and reloading a graph must not change its topology — the
// execution trace for identical inputs depends only on the snapshot.
func TestGraph_RoundTrip(t *testing.T) {
	g := &Graph{
		Nodes: []Node{
			{ID: "a", Kind: KindProfileVisit},
			{ID: "b", Kind: KindSendConnectionRequest},
			{ID: "c", Kind: KindSendFollowup},
			{ID: "d", Kind: KindWithdrawRequest},
		},
		Edges: []Edge{
			{Source: "a", Target: "b", Delay: &Delay{2, UnitDays}},
			{Source: "b", Target: "c", Condition: &Condition{BranchPositive}},
			{Source: "b", Target: "d", Condition: &Condition{BranchNegative}},
		},
	}
	require.NoError(t, g.Validate())

	data, err := json.Marshal(g)
	require.NoError(t, err)

	reloaded, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, g.Nodes, reloaded.Nodes)
	assert.Equal(t, g.Edges, reloaded.Edges)
	assert.Equal(t, g.Sources(), reloaded.Sources())
}

func TestValidate(t *testing.T) {
	valid := func() *Graph {
		return &Graph{
			Nodes: []Node{
				{ID: "a", Kind: KindProfileVisit},
				{ID: "b", Kind: KindSendConnectionRequest},
				{ID: "c", Kind: KindSendFollowup},
				{ID: "d", Kind: KindWithdrawRequest},
			},
			Edges: []Edge{
				{Source: "a", Target: "b"},
				{Source: "b", Target: "c", Condition: &Condition{BranchPositive}},
				{Source: "b", Target: "d", Condition: &Condition{BranchNegative}},
			},
		}
	}

	t.Run("valid graph passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("cycle rejected", func(t *testing.T) {
		g := valid()
		g.Edges = append(g.Edges, Edge{Source: "c", Target: "a"})
		err := g.Validate()
		require.ErrorIs(t, err, ErrInvalidGraph)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("no source node rejected", func(t *testing.T) {
		g := &Graph{
			Nodes: []Node{
				{ID: "a", Kind: KindProfileVisit},
				{ID: "b", Kind: KindLikePost},
			},
			Edges: []Edge{
				{Source: "a", Target: "b"},
				{Source: "b", Target: "a"},
			},
		}
		// A two-node cycle has no source; the cycle check fires first.
		assert.ErrorIs(t, g.Validate(), ErrInvalidGraph)
	})

	t.Run("missing negative branch rejected", func(t *testing.T) {
		g := valid()
		g.Edges = g.Edges[:2] // drop the negative edge
		err := g.Validate()
		require.ErrorIs(t, err, ErrInvalidGraph)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("mixed conditional and plain edges rejected", func(t *testing.T) {
		g := valid()
		g.Nodes = append(g.Nodes, Node{ID: "e", Kind: KindWebhook})
		g.Edges = append(g.Edges, Edge{Source: "b", Target: "e"})
		err := g.Validate()
		require.ErrorIs(t, err, ErrInvalidGraph)
		assert.Contains(t, err.Error(), "mixes")
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		g := valid()
		g.Nodes[0].Kind = "teleport"
		assert.ErrorIs(t, g.Validate(), ErrInvalidGraph)
	})

	t.Run("duplicate node id rejected", func(t *testing.T) {
		g := valid()
		g.Nodes = append(g.Nodes, Node{ID: "a", Kind: KindWebhook})
		assert.ErrorIs(t, g.Validate(), ErrInvalidGraph)
	})

	t.Run("edge to unknown node rejected", func(t *testing.T) {
		g := valid()
		g.Edges = append(g.Edges, Edge{Source: "a", Target: "ghost"})
		assert.ErrorIs(t, g.Validate(), ErrInvalidGraph)
	})

	t.Run("empty graph rejected", func(t *testing.T) {
		g := &Graph{}
		assert.ErrorIs(t, g.Validate(), ErrInvalidGraph)
	})
}
