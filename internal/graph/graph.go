// Package graph holds the planned build actions and the dependency edges
// between them. It is the planner's registration surface: exactly one node
// per constructed action, with deterministic traversal order so that an
// external orchestrator's caching stays sound.
package graph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hdlforge/hdlforge/internal/action"
)

// Graph is a collection of registered actions and their dependencies.
// All operations are concurrency-safe.
type Graph struct {
	mutex sync.RWMutex
	nodes map[string]*node
}

// node is a single registered action plus its edges. It is un-exported to
// force interaction through the Graph API using action names.
type node struct {
	act        *action.Action
	deps       map[string]*node
	dependents map[string]*node
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// Register adds an action to the graph. Action names must be unique; a
// duplicate registration is an error because it would make the plan depend on
// registration order.
func (g *Graph) Register(act *action.Action) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[act.Name]; ok {
		return fmt.Errorf("action %q registered twice", act.Name)
	}
	g.nodes[act.Name] = &node{
		act:        act,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	return nil
}

// AddEdge records that the toName action depends on the fromName action. An
// error is returned if either action is unregistered or the edge would be a
// self-reference.
func (g *Graph) AddEdge(fromName, toName string) error {
	if fromName == toName {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromName, fromName)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromName]
	if !ok {
		return fmt.Errorf("source action not found: %s", fromName)
	}
	toNode, ok := g.nodes[toName]
	if !ok {
		return fmt.Errorf("destination action not found: %s", toName)
	}

	toNode.deps[fromName] = fromNode
	fromNode.dependents[toName] = toNode
	return nil
}

// Action returns the registered action with the given name.
func (g *Graph) Action(name string) (*action.Action, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return nil, false
	}
	return n.act, true
}

// Actions returns every registered action sorted by name.
func (g *Graph) Actions() []*action.Action {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	actions := make([]*action.Action, 0, len(names))
	for _, name := range names {
		actions = append(actions, g.nodes[name].act)
	}
	return actions
}

// Dependencies returns the names of the actions the given action depends on,
// sorted.
func (g *Graph) Dependencies(name string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("action not found: %s", name)
	}

	deps := make([]string, 0, len(n.deps))
	for depName := range n.deps {
		deps = append(deps, depName)
	}
	sort.Strings(deps)
	return deps, nil
}

// Len returns the number of registered actions.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// DetectCycles checks the graph for cycles and returns a non-nil error
// naming the first node found inside one.
func (g *Graph) DetectCycles() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	// Classic depth-first search with permanent and temporary marks.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(name string, n *node) error
	visit = func(name string, n *node) error {
		if permanent[name] {
			return nil
		}
		if temporary[name] {
			return fmt.Errorf("cycle detected involving action '%s'", name)
		}

		temporary[name] = true
		for depName, dependent := range n.dependents {
			if err := visit(depName, dependent); err != nil {
				return err
			}
		}
		delete(temporary, name)
		permanent[name] = true
		return nil
	}

	for name, n := range g.nodes {
		if !permanent[name] {
			if err := visit(name, n); err != nil {
				return err
			}
		}
	}
	return nil
}
