package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is wrapped by every validation failure so callers can treat
// any of them as a campaign configuration error.
var ErrInvalidGraph = errors.New("invalid graph")

// Validate checks the structural invariants a graph must satisfy before any
// lead workflow may interpret it:
//
//   - acyclic (after placeholder stripping)
//   - at least one source node
//   - a conditional source node has exactly one positive and one negative
//     outgoing conditional edge
//   - conditional and unconditional edges never mix on the same source
//
// Validation runs once at campaign start so configuration errors surface
// before the first node executes.
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return fmt.Errorf("%w: no executable nodes", ErrInvalidGraph)
	}

	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node with empty id", ErrInvalidGraph)
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: duplicate node id %q", ErrInvalidGraph, n.ID)
		}
		seen[n.ID] = true
		switch n.Kind {
		case KindProfileVisit, KindLikePost, KindCommentPost, KindSendConnectionRequest,
			KindSendFollowup, KindSendInmail, KindWithdrawRequest, KindWebhook:
		default:
			return fmt.Errorf("%w: node %q has unknown kind %q", ErrInvalidGraph, n.ID, n.Kind)
		}
	}

	for _, e := range g.Edges {
		if !seen[e.Source] {
			return fmt.Errorf("%w: edge references unknown source %q", ErrInvalidGraph, e.Source)
		}
		if !seen[e.Target] {
			return fmt.Errorf("%w: edge references unknown target %q", ErrInvalidGraph, e.Target)
		}
	}

	if err := g.checkAcyclic(); err != nil {
		return err
	}
	if len(g.Sources()) == 0 {
		return fmt.Errorf("%w: no source node (every node has incoming edges)", ErrInvalidGraph)
	}
	return g.checkConditionalEdges()
}

// checkAcyclic runs Kahn's algorithm; leftover nodes mean a cycle.
func (g *Graph) checkAcyclic() error {
	in := g.InDegrees()
	adj := g.Adjacency()

	queue := g.Sources()
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, e := range adj[id] {
			in[e.Target]--
			if in[e.Target] == 0 {
				queue = append(queue, e.Target)
			}
		}
	}

	if visited != len(g.Nodes) {
		return fmt.Errorf("%w: cycle detected", ErrInvalidGraph)
	}
	return nil
}

// checkConditionalEdges enforces the branch pairing rules per source node.
func (g *Graph) checkConditionalEdges() error {
	for source, edges := range g.Adjacency() {
		var positive, negative, plain int
		for _, e := range edges {
			if !e.IsConditional() {
				plain++
				continue
			}
			switch e.Condition.Branch {
			case BranchPositive:
				positive++
			case BranchNegative:
				negative++
			default:
				return fmt.Errorf("%w: edge %s->%s has unknown branch %q",
					ErrInvalidGraph, e.Source, e.Target, e.Condition.Branch)
			}
		}
		conditional := positive + negative
		if conditional > 0 && plain > 0 {
			return fmt.Errorf("%w: node %q mixes conditional and unconditional edges",
				ErrInvalidGraph, source)
		}
		if conditional > 0 && (positive != 1 || negative != 1) {
			return fmt.Errorf("%w: node %q needs exactly one positive and one negative branch, got %d/%d",
				ErrInvalidGraph, source, positive, negative)
		}
	}
	return nil
}
