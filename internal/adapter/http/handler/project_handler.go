package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finbooks/internal/adapter/http/dto"
	"github.com/iho/finbooks/internal/domain"
	"github.com/iho/finbooks/internal/usecase"
)

// ProjectService defines the behavior needed by ProjectHandler.
type ProjectService interface {
	CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	AddCost(ctx context.Context, input usecase.RecordEntryInput) (*domain.ProjectCost, error)
	AddBilling(ctx context.Context, input usecase.RecordEntryInput) (*domain.Billing, error)
}

// WIPService defines the valuation behavior needed by ProjectHandler.
type WIPService interface {
	Valuation(ctx context.Context) (*domain.WIPValuation, error)
	ProjectWIP(ctx context.Context, projectID string) (*domain.ProjectWIP, error)
}

// ProjectHandler handles project and WIP HTTP requests.
type ProjectHandler struct {
	projectUC ProjectService
	wipUC     WIPService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectUC ProjectService, wipUC WIPService) *ProjectHandler {
	return &ProjectHandler{
		projectUC: projectUC,
		wipUC:     wipUC,
	}
}

// Create creates a new project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	project, err := h.projectUC.CreateProject(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create project", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ProjectFromDomain(project))
}

// Get retrieves a project with its records and derived WIP.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing project ID", "")
		return
	}

	project, err := h.projectUC.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get project", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectFromDomain(project))
}

// List lists all projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectUC.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListProjectsResponse{
		Projects: dto.ProjectsFromDomain(projects),
		Total:    int64(len(projects)),
	})
}

// AddCost records a cost against a project.
func (h *ProjectHandler) AddCost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing project ID", "")
		return
	}

	var req dto.RecordEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	cost, err := h.projectUC.AddCost(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record cost", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ProjectCostFromDomain(cost))
}

// AddBilling records a billing against a project.
func (h *ProjectHandler) AddBilling(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing project ID", "")
		return
	}

	var req dto.RecordEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	billing, err := h.projectUC.AddBilling(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record billing", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BillingFromDomain(billing))
}

// WIP returns the derived WIP position of one project.
func (h *ProjectHandler) WIP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing project ID", "")
		return
	}

	wip, err := h.wipUC.ProjectWIP(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to value project", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectWIPResponse{
		ProjectID: wip.ProjectID,
		Name:      wip.Name,
		WIP:       wip.WIP,
	})
}

// Valuation returns the aggregate WIP valuation across all projects.
func (h *ProjectHandler) Valuation(w http.ResponseWriter, r *http.Request) {
	valuation, err := h.wipUC.Valuation(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to value projects", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.WIPValuationFromDomain(valuation))
}
