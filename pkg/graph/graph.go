// Package graph models the campaign workflow graph: outreach nodes connected
// by edges that carry optional delays and conditional branches. The graph is
// parsed from the JSON snapshot stored on the campaign, stripped of UI-only
// placeholder nodes, and validated before the first lead workflow starts.
package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

// NodeKind enumerates the executable node types.
type NodeKind string

// Executable node kinds and the UI-only placeholder.
const (
	KindProfileVisit          NodeKind = "profileVisit"
	KindLikePost              NodeKind = "likePost"
	KindCommentPost           NodeKind = "commentPost"
	KindSendConnectionRequest NodeKind = "sendConnectionRequest"
	KindSendFollowup          NodeKind = "sendFollowup"
	KindSendInmail            NodeKind = "sendInmail"
	KindWithdrawRequest       NodeKind = "withdrawRequest"
	KindWebhook               NodeKind = "webhook"

	// KindAddStep is the editor's "add a step here" placeholder. It must be
	// stripped before execution; edges touching it are dropped.
	KindAddStep NodeKind = "addStep"
)

// Branch identifies which side of a conditional split an edge belongs to.
type Branch string

// Conditional branches. The positive branch is followed when the source node
// succeeded, the negative branch when it failed.
const (
	BranchPositive Branch = "positive"
	BranchNegative Branch = "negative"
)

// Unit is a delay magnitude unit.
type Unit string

// Delay units.
const (
	UnitSeconds Unit = "s"
	UnitMinutes Unit = "m"
	UnitHours   Unit = "h"
	UnitDays    Unit = "d"
	UnitWeeks   Unit = "w"
)

// Node is a single outreach action in the graph.
type Node struct {
	ID     string         `json:"id"`
	Kind   NodeKind       `json:"kind"`
	Config map[string]any `json:"config,omitempty"`
}

// Delay is the wait applied before the target of an edge becomes ready.
type Delay struct {
	Magnitude int  `json:"magnitude"`
	Unit      Unit `json:"unit"`
}

// Duration converts the delay to a time.Duration. Unknown units count as
// seconds so a malformed snapshot degrades to a short wait instead of a hang.
func (d Delay) Duration() time.Duration {
	m := time.Duration(d.Magnitude)
	switch d.Unit {
	case UnitMinutes:
		return m * time.Minute
	case UnitHours:
		return m * time.Hour
	case UnitDays:
		return m * 24 * time.Hour
	case UnitWeeks:
		return m * 7 * 24 * time.Hour
	default:
		return m * time.Second
	}
}

// Condition marks an edge as conditional on its source node's success flag.
type Condition struct {
	Branch Branch `json:"branch"`
}

// Edge is a directed connection between two nodes.
type Edge struct {
	Source    string     `json:"source"`
	Target    string     `json:"target"`
	Delay     *Delay     `json:"delay,omitempty"`
	Condition *Condition `json:"condition,omitempty"`
}

// IsConditional reports whether following this edge depends on the source
// node's result.
func (e Edge) IsConditional() bool {
	return e.Condition != nil
}

// Graph is the executable campaign graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Parse decodes a graph snapshot, strips placeholder nodes, and validates the
// result. This is the only entry point the engine uses to load a graph.
func Parse(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	stripped := g.Strip()
	if err := stripped.Validate(); err != nil {
		return nil, err
	}
	return stripped, nil
}

// Strip returns a copy of the graph without UI placeholder nodes. Edges whose
// source or target is a placeholder are dropped.
func (g *Graph) Strip() *Graph {
	placeholder := make(map[string]bool)
	nodes := make([]Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Kind == KindAddStep {
			placeholder[n.ID] = true
			continue
		}
		nodes = append(nodes, n)
	}

	edges := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if placeholder[e.Source] || placeholder[e.Target] {
			continue
		}
		edges = append(edges, e)
	}

	return &Graph{Nodes: nodes, Edges: edges}
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Adjacency returns outgoing edges per source node, in snapshot order.
func (g *Graph) Adjacency() map[string][]Edge {
	adj := make(map[string][]Edge, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], e)
	}
	return adj
}

// InDegrees returns the incoming-edge count for every node.
func (g *Graph) InDegrees() map[string]int {
	in := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		in[n.ID] = 0
	}
	for _, e := range g.Edges {
		in[e.Target]++
	}
	return in
}

// Sources returns the ids of nodes with no incoming edges, in snapshot order.
func (g *Graph) Sources() []string {
	in := g.InDegrees()
	var sources []string
	for _, n := range g.Nodes {
		if in[n.ID] == 0 {
			sources = append(sources, n.ID)
		}
	}
	return sources
}
