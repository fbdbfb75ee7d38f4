package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/skilltree/internal/filter"
	"github.com/jonathan/skilltree/internal/store"
	"github.com/jonathan/skilltree/internal/types"
)

func testServer() *Server {
	return NewWithBackend(store.NewMemBackend(), zap.NewNop())
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHandleGraph_DefaultView(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/graph", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view filter.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.NotEmpty(t, view.Nodes)
	assert.NotEmpty(t, view.Edges)
	assert.Equal(t, len(view.Nodes), view.Counts.Total)
}

func TestHandleGraph_DefaultProfileUnlocksSOCAnalystButNotHVAC(t *testing.T) {
	// Defaults hold securityplus but HS education, so soc-analyst is
	// locked on education and hvac-tech on the missing EPA license.
	rec := doRequest(t, testServer(), http.MethodGet, "/graph", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view filter.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	soc, ok := view.Node("soc-analyst")
	require.True(t, ok)
	assert.Equal(t, types.StatusLocked, soc.Result.Status)

	hvac, ok := view.Node("hvac-tech")
	require.True(t, ok)
	assert.Equal(t, types.StatusLocked, hvac.Result.Status)
}

func TestHandleGraph_HideLocked(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/graph?show_locked=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view filter.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Zero(t, view.Counts.Locked)
}

func TestHandleGraph_QueryAndCategory(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/graph?q=hvac&category=skilled-trades", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view filter.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, 1, view.Counts.Total)
	assert.Equal(t, "hvac-tech", view.Nodes[0].ID)
}

func TestHandleGraphNode(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/graph/nodes/help-desk", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Help Desk Technician")

	rec = doRequest(t, testServer(), http.MethodGet, "/graph/nodes/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetProfile_Defaults(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc store.ProfileDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.NotNil(t, doc.Education)
	assert.Equal(t, "hs", *doc.Education)
	assert.Equal(t, []string{"securityplus"}, doc.Credentials)
}

func TestHandleUpdateProfile_OverlayAndPersist(t *testing.T) {
	s := testServer()

	body := []byte(`{"education": "associate", "credentials": ["securityplus", "epa-608"]}`)
	rec := doRequest(t, s, http.MethodPut, "/profile", body)
	require.Equal(t, http.StatusOK, rec.Code)

	// The mutation changed node eligibility on the next graph read.
	rec = doRequest(t, s, http.MethodGet, "/graph", nil)
	var view filter.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	hvac, ok := view.Node("hvac-tech")
	require.True(t, ok)
	assert.Equal(t, types.StatusRisk, hvac.Result.Status,
		"education and license now pass; only the relocation preference mismatches")

	soc, ok := view.Node("soc-analyst")
	require.True(t, ok)
	assert.Equal(t, types.StatusEligible, soc.Result.Status)
}

func TestHandleUpdateProfile_InvalidBody(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPut, "/profile", []byte(`{{{`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateCustomNode(t *testing.T) {
	s := testServer()

	body := []byte(`{
		"title": "Solar Installer",
		"subtitle": "Rooftop PV",
		"tags": ["skilled-trades"],
		"requirements": [{"kind": "has", "credential": "osha-10"}],
		"link_from": "skilled-trades"
	}`)
	rec := doRequest(t, s, http.MethodPost, "/custom/nodes", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID    string            `json:"id"`
		Graph types.CustomGraph `json:"graph"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.ID, "custom-solar-installer-"))
	assert.Len(t, resp.Graph.Nodes, 1)
	assert.Len(t, resp.Graph.Edges, 1)

	// The custom node shows up annotated in the merged graph.
	rec = doRequest(t, s, http.MethodGet, "/graph", nil)
	var view filter.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	n, ok := view.Node(resp.ID)
	require.True(t, ok)
	assert.Equal(t, types.StatusLocked, n.Result.Status, "default profile lacks osha-10")
}

func TestHandleCreateCustomNode_Invalid(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/custom/nodes", []byte(`{"title": ""}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, testServer(), http.MethodPost, "/custom/nodes",
		[]byte(`{"title": "X", "requirements": [{"kind": "weird"}]}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown requirement kind")
}

func TestHandleExportCustom_EmptyReturnsNotFound(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/custom/export", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No custom graph")
}

func TestHandleExportImportRoundTrip(t *testing.T) {
	s := testServer()
	doRequest(t, s, http.MethodPost, "/custom/nodes", []byte(`{"title": "Wind Tech"}`))

	rec := doRequest(t, s, http.MethodGet, "/custom/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	exported := rec.Body.Bytes()

	other := testServer()
	rec = doRequest(t, other, http.MethodPost, "/custom/import", exported)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, other, http.MethodGet, "/custom", nil)
	var g types.CustomGraph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Len(t, g.Nodes, 1)
}

func TestHandleImportCustom_InvalidLeavesStateUntouched(t *testing.T) {
	s := testServer()
	doRequest(t, s, http.MethodPost, "/custom/nodes", []byte(`{"title": "Keep Me"}`))

	rec := doRequest(t, s, http.MethodPost, "/custom/import",
		[]byte(`{"nodes":[],"edges":"not-a-list"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "import rejected")

	rec = doRequest(t, s, http.MethodGet, "/custom", nil)
	var g types.CustomGraph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "Keep Me", g.Nodes[0].Title)
}

func TestHandleClearCustom(t *testing.T) {
	s := testServer()
	doRequest(t, s, http.MethodPost, "/custom/nodes", []byte(`{"title": "Gone Soon"}`))

	rec := doRequest(t, s, http.MethodDelete, "/custom", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/custom", nil)
	var g types.CustomGraph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Empty(t, g.Nodes)
}

func TestHandleResume(t *testing.T) {
	s := testServer()
	doRequest(t, s, http.MethodPut, "/profile", []byte(`{"name": "Jordan Reyes"}`))

	rec := doRequest(t, s, http.MethodPost, "/resume",
		[]byte(`{"target_career_id": "hvac-tech", "notes": "Available now."}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	doc := rec.Body.String()
	assert.True(t, strings.HasPrefix(doc, "Jordan Reyes\n"))
	assert.Contains(t, doc, "HVAC Technician")
	assert.Contains(t, doc, "Available now.")
	assert.Contains(t, doc, "CERTIFICATIONS")
}

func TestCORSPreflight(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodOptions, "/graph", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
