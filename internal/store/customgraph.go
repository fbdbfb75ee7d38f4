package store

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/skilltree/internal/schemas"
	"github.com/jonathan/skilltree/internal/types"
)

// customGraphKey is the backend key holding the persisted custom graph.
const customGraphKey = "custom-graph"

// ErrNoCustomGraph is returned by Export when nothing has been authored.
var ErrNoCustomGraph = fmt.Errorf("no custom graph stored")

// ImportError wraps a rejected import. The previous state is untouched.
type ImportError struct {
	Cause error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import rejected: %v", e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// CustomGraphStore persists the user-authored node/edge layer.
type CustomGraphStore struct {
	backend Backend
}

// NewCustomGraphStore returns a store over the given backend.
func NewCustomGraphStore(backend Backend) *CustomGraphStore {
	return &CustomGraphStore{backend: backend}
}

// Load reads the persisted custom graph. An absent key, a document that
// fails the structural contract, or an undecodable document all degrade
// silently to an empty graph.
func (s *CustomGraphStore) Load() (*types.CustomGraph, error) {
	data, ok, err := s.backend.Get(customGraphKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom graph: %w", err)
	}
	if !ok {
		return &types.CustomGraph{}, nil
	}

	g, err := decodeCustomGraph(data)
	if err != nil {
		return &types.CustomGraph{}, nil
	}
	return g, nil
}

// Save persists the custom graph.
func (s *CustomGraphStore) Save(g *types.CustomGraph) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal custom graph: %w", err)
	}
	if err := s.backend.Put(customGraphKey, data); err != nil {
		return fmt.Errorf("failed to save custom graph: %w", err)
	}
	return nil
}

// Append adds nodes and edges to the stored graph and persists the result.
func (s *CustomGraphStore) Append(nodes []types.GraphNode, edges []types.GraphEdge) (*types.CustomGraph, error) {
	g, err := s.Load()
	if err != nil {
		return nil, err
	}
	g.Nodes = append(g.Nodes, nodes...)
	g.Edges = append(g.Edges, edges...)
	if err := s.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Export returns the persisted custom graph as a downloadable document.
// Exporting with nothing stored returns ErrNoCustomGraph.
func (s *CustomGraphStore) Export() ([]byte, error) {
	g, err := s.Load()
	if err != nil {
		return nil, err
	}
	if g.Empty() {
		return nil, ErrNoCustomGraph
	}
	return json.MarshalIndent(g, "", "  ")
}

// Import validates the document against the structural contract and, on
// success, fully replaces the persisted custom graph. On failure it
// returns an *ImportError and writes nothing.
func (s *CustomGraphStore) Import(data []byte) (*types.CustomGraph, error) {
	g, err := decodeCustomGraph(data)
	if err != nil {
		return nil, &ImportError{Cause: err}
	}
	if err := s.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Clear deletes the entire persisted custom graph.
func (s *CustomGraphStore) Clear() error {
	if err := s.backend.Delete(customGraphKey); err != nil {
		return fmt.Errorf("failed to clear custom graph: %w", err)
	}
	return nil
}

func decodeCustomGraph(data []byte) (*types.CustomGraph, error) {
	if err := schemas.ValidateCustomGraph(data); err != nil {
		return nil, err
	}
	var g types.CustomGraph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	if g.Nodes == nil {
		g.Nodes = []types.GraphNode{}
	}
	if g.Edges == nil {
		g.Edges = []types.GraphEdge{}
	}
	return &g, nil
}
