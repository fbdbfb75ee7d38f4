package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skilltree/internal/types"
)

func sampleCustomGraph() *types.CustomGraph {
	return &types.CustomGraph{
		Nodes: []types.GraphNode{
			{ID: "custom-solar-12345678", Kind: types.KindCareer, Title: "Solar Installer"},
		},
		Edges: []types.GraphEdge{
			{ID: "e1", Source: "skilled-trades", Target: "custom-solar-12345678"},
		},
	}
}

func TestCustomGraphStore_LoadAbsentIsEmpty(t *testing.T) {
	s := NewCustomGraphStore(NewMemBackend())

	g, err := s.Load()
	require.NoError(t, err)
	assert.True(t, g.Empty())
}

func TestCustomGraphStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewCustomGraphStore(NewMemBackend())
	require.NoError(t, s.Save(sampleCustomGraph()))

	g, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleCustomGraph(), g)
}

func TestCustomGraphStore_CorruptDocumentDegradesToEmpty(t *testing.T) {
	backend := NewMemBackend()
	require.NoError(t, backend.Put("custom-graph", []byte(`{"nodes": "nope"}`)))

	g, err := NewCustomGraphStore(backend).Load()
	require.NoError(t, err, "corrupt custom data degrades silently")
	assert.True(t, g.Empty())
}

func TestCustomGraphStore_Append(t *testing.T) {
	s := NewCustomGraphStore(NewMemBackend())

	node := types.GraphNode{ID: "custom-a-11111111", Kind: types.KindCareer, Title: "A"}
	edge := types.GraphEdge{ID: "e-a", Source: "it-security", Target: node.ID}
	g, err := s.Append([]types.GraphNode{node}, []types.GraphEdge{edge})
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 1)
	assert.Len(t, g.Edges, 1)

	// Appending persists immediately.
	reloaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, g, reloaded)
}

func TestCustomGraphStore_ExportEmpty(t *testing.T) {
	s := NewCustomGraphStore(NewMemBackend())

	_, err := s.Export()
	assert.ErrorIs(t, err, ErrNoCustomGraph)
}

func TestCustomGraphStore_ExportImportRoundTrip(t *testing.T) {
	first := NewCustomGraphStore(NewMemBackend())
	require.NoError(t, first.Save(sampleCustomGraph()))

	data, err := first.Export()
	require.NoError(t, err)

	second := NewCustomGraphStore(NewMemBackend())
	imported, err := second.Import(data)
	require.NoError(t, err)
	assert.Equal(t, sampleCustomGraph(), imported)
}

func TestCustomGraphStore_ImportInvalidLeavesStateUntouched(t *testing.T) {
	s := NewCustomGraphStore(NewMemBackend())
	require.NoError(t, s.Save(sampleCustomGraph()))

	_, err := s.Import([]byte(`{"nodes":[],"edges":"not-a-list"}`))
	require.Error(t, err)

	var importErr *ImportError
	assert.True(t, errors.As(err, &importErr))

	g, loadErr := s.Load()
	require.NoError(t, loadErr)
	assert.Equal(t, sampleCustomGraph(), g, "failed import must not write")
}

func TestCustomGraphStore_ImportReplacesEntirely(t *testing.T) {
	s := NewCustomGraphStore(NewMemBackend())
	require.NoError(t, s.Save(sampleCustomGraph()))

	_, err := s.Import([]byte(`{"nodes": [], "edges": []}`))
	require.NoError(t, err)

	g, err := s.Load()
	require.NoError(t, err)
	assert.True(t, g.Empty(), "import fully replaces the stored graph")
}

func TestCustomGraphStore_Clear(t *testing.T) {
	s := NewCustomGraphStore(NewMemBackend())
	require.NoError(t, s.Save(sampleCustomGraph()))
	require.NoError(t, s.Clear())

	g, err := s.Load()
	require.NoError(t, err)
	assert.True(t, g.Empty())

	// Clearing an already-empty store is fine.
	assert.NoError(t, s.Clear())
}
