package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbooks/internal/domain"
)

// ProjectUseCase handles projects and their cost and billing records.
type ProjectUseCase struct {
	projectRepo ProjectRepository
	idGen       IDGenerator
}

// NewProjectUseCase creates a new ProjectUseCase.
func NewProjectUseCase(projectRepo ProjectRepository, idGen IDGenerator) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		idGen:       idGen,
	}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name   string
	Status string
}

// CreateProject creates a new project.
func (uc *ProjectUseCase) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		ID:     uc.idGen.Generate(),
		Name:   input.Name,
		Status: input.Status,
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// GetProject retrieves a project with its costs and billings.
func (uc *ProjectUseCase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

// ListProjects lists all projects with their costs and billings.
func (uc *ProjectUseCase) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return uc.projectRepo.List(ctx)
}

// RecordEntryInput represents input for a cost or billing record.
type RecordEntryInput struct {
	ProjectID   string
	Amount      decimal.Decimal
	Date        time.Time
	Status      string
	Description string
}

// AddCost records a cost against a project.
func (uc *ProjectUseCase) AddCost(ctx context.Context, input RecordEntryInput) (*domain.ProjectCost, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if _, err := uc.projectRepo.GetByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	cost := &domain.ProjectCost{
		ID:          uc.idGen.Generate(),
		ProjectID:   input.ProjectID,
		Amount:      input.Amount,
		Date:        entryDate(input.Date),
		Status:      input.Status,
		Description: input.Description,
	}

	if err := uc.projectRepo.AddCost(ctx, cost); err != nil {
		return nil, err
	}

	return cost, nil
}

// AddBilling records a billing against a project.
func (uc *ProjectUseCase) AddBilling(ctx context.Context, input RecordEntryInput) (*domain.Billing, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if _, err := uc.projectRepo.GetByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	billing := &domain.Billing{
		ID:          uc.idGen.Generate(),
		ProjectID:   input.ProjectID,
		Amount:      input.Amount,
		Date:        entryDate(input.Date),
		Status:      input.Status,
		Description: input.Description,
	}

	if err := uc.projectRepo.AddBilling(ctx, billing); err != nil {
		return nil, err
	}

	return billing, nil
}

func entryDate(d time.Time) time.Time {
	if d.IsZero() {
		return time.Now().UTC()
	}
	return d
}
