package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skilltree/internal/eval"
	"github.com/jonathan/skilltree/internal/filter"
	"github.com/jonathan/skilltree/internal/graph"
	"github.com/jonathan/skilltree/internal/resume"
	"github.com/jonathan/skilltree/internal/store"
	"github.com/jonathan/skilltree/internal/types"
)

// maxImportSize caps custom-graph import payloads.
const maxImportSize = 1 << 20

// CreateNodeRequest represents the request body for POST /custom/nodes.
type CreateNodeRequest struct {
	Title        string              `json:"title" validate:"required,min=1"`
	Subtitle     string              `json:"subtitle,omitempty"`
	Tags         []string            `json:"tags,omitempty"`
	Requirements []types.Requirement `json:"requirements,omitempty"`
	LinkFrom     string              `json:"link_from,omitempty"` // optional source node for a structural edge
}

// Validate validates the CreateNodeRequest using the validator.
func (r *CreateNodeRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	for _, req := range r.Requirements {
		switch req.Kind {
		case types.ReqHas, types.ReqMin, types.ReqEdu, types.ReqFlag:
		default:
			return errors.New("unknown requirement kind: " + string(req.Kind))
		}
	}
	return nil
}

// ResumeRequest represents the request body for POST /resume.
type ResumeRequest struct {
	TargetCareerID string `json:"target_career_id,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// annotatedView loads the current profile and custom graph, builds the
// merged tree, evaluates it, and applies the filter query. Every request
// recomputes from persisted state; results are never cached.
func (s *Server) annotatedView(q filter.Query) (*filter.View, error) {
	profile, err := s.profiles.Load()
	if err != nil {
		return nil, err
	}
	custom, err := s.custom.Load()
	if err != nil {
		return nil, err
	}

	nodes, edges := graph.Build(custom)
	annotated := eval.Annotate(nodes, profile)
	view := filter.Apply(annotated, edges, q)
	return &view, nil
}

// handleGraph returns the filtered, annotated graph for rendering.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	q := filter.Query{
		Text:       r.URL.Query().Get("q"),
		Category:   r.URL.Query().Get("category"),
		ShowLocked: r.URL.Query().Get("show_locked") != "false",
	}

	view, err := s.annotatedView(q)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build graph: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, view)
}

// handleGraphNode returns a single annotated node by id, unfiltered.
func (s *Server) handleGraphNode(w http.ResponseWriter, r *http.Request) {
	view, err := s.annotatedView(filter.Query{ShowLocked: true})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build graph: "+err.Error())
		return
	}

	n, ok := view.Node(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Node not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, n)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	profile, err := s.profiles.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, store.DocFromProfile(profile))
}

// handleUpdateProfile overlays the submitted fields onto the stored
// profile and persists the result. Absent fields are left untouched, so
// the UI can save field-by-field mutations.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var doc store.ProfileDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := s.profiles.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}

	doc.Apply(profile)
	if err := s.profiles.Save(profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, store.DocFromProfile(profile))
}

func (s *Server) handleGetCustom(w http.ResponseWriter, _ *http.Request) {
	g, err := s.custom.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load custom graph: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, g)
}

func (s *Server) handleCreateCustomNode(w http.ResponseWriter, r *http.Request) {
	var req CreateNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid node: "+err.Error())
		return
	}

	node := graph.NewCustomNode(req.Title, req.Subtitle, req.Tags, req.Requirements)
	var edges []types.GraphEdge
	if req.LinkFrom != "" {
		edges = append(edges, graph.NewCustomEdge(req.LinkFrom, node.ID))
	}

	g, err := s.custom.Append([]types.GraphNode{node}, edges)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save custom node: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":    node.ID,
		"graph": g,
	})
}

func (s *Server) handleExportCustom(w http.ResponseWriter, _ *http.Request) {
	data, err := s.custom.Export()
	if errors.Is(err, store.ErrNoCustomGraph) {
		s.errorResponse(w, http.StatusNotFound, "No custom graph to export")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export custom graph: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="skilltree-custom.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleImportCustom validates the uploaded document and, on success,
// fully replaces the persisted custom graph. A rejected import leaves
// the existing state untouched.
func (s *Server) handleImportCustom(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read import body")
		return
	}

	g, err := s.custom.Import(data)
	if err != nil {
		var importErr *store.ImportError
		if errors.As(err, &importErr) {
			s.errorResponse(w, http.StatusBadRequest, importErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to import custom graph: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, g)
}

func (s *Server) handleClearCustom(w http.ResponseWriter, _ *http.Request) {
	if err := s.custom.Clear(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to clear custom graph: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleResume renders the plaintext resume for the stored profile.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := s.profiles.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}
	custom, err := s.custom.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load custom graph: "+err.Error())
		return
	}

	nodes, _ := graph.Build(custom)
	index := graph.Lookup(nodes)
	doc := resume.Generate(profile, req.TargetCareerID, req.Notes, func(id string) *types.GraphNode {
		return index[id]
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
