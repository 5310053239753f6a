package usecase

import (
	"context"

	"github.com/iho/finbooks/internal/domain"
)

// WIPUseCase derives work-in-progress valuations from project cost and
// billing records. The derived valuation, not the ledger's WIP account,
// is authoritative for statement totals.
type WIPUseCase struct {
	projectRepo ProjectRepository
}

// NewWIPUseCase creates a new WIPUseCase.
func NewWIPUseCase(projectRepo ProjectRepository) *WIPUseCase {
	return &WIPUseCase{projectRepo: projectRepo}
}

// Valuation computes the WIP valuation over all projects.
func (uc *WIPUseCase) Valuation(ctx context.Context) (*domain.WIPValuation, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.ValueProjects(projects), nil
}

// ProjectWIP computes the valuation of a single project.
func (uc *WIPUseCase) ProjectWIP(ctx context.Context, projectID string) (*domain.ProjectWIP, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectWIP{
		ProjectID: project.ID,
		Name:      project.Name,
		WIP:       project.WIP(),
	}, nil
}
