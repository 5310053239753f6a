package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finbooks/internal/domain"
)

// ProjectRepository implements usecase.ProjectRepository.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Create inserts a project.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO projects (id, name, status)
		VALUES ($1, $2, $3)`,
		project.ID, project.Name, project.Status,
	)

	return err
}

// GetByID retrieves a project with its costs and billings.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, status
		FROM projects
		WHERE id = $1`, id)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	if err := r.loadRecords(ctx, r.pool, project); err != nil {
		return nil, err
	}

	return project, nil
}

// List returns all projects with their costs and billings.
func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, status
		FROM projects
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}

	return projects, attachRecords(ctx, r.pool, projects)
}

// AddCost inserts a cost record.
func (r *ProjectRepository) AddCost(ctx context.Context, cost *domain.ProjectCost) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO project_costs (id, project_id, amount, date, status, description)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		cost.ID, cost.ProjectID, decimalToNumeric(cost.Amount),
		timeToPgTimestamptz(cost.Date), cost.Status, cost.Description,
	)

	return err
}

// AddBilling inserts a billing record.
func (r *ProjectRepository) AddBilling(ctx context.Context, billing *domain.Billing) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO billings (id, project_id, amount, date, status, description)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		billing.ID, billing.ProjectID, decimalToNumeric(billing.Amount),
		timeToPgTimestamptz(billing.Date), billing.Status, billing.Description,
	)

	return err
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so record
// loading can run standalone or inside a snapshot transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *ProjectRepository) loadRecords(ctx context.Context, q querier, project *domain.Project) error {
	return attachRecords(ctx, q, []*domain.Project{project})
}

// attachRecords loads cost and billing records for the given projects
// in two queries.
func attachRecords(ctx context.Context, q querier, projects []*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Project, len(projects))
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	costRows, err := q.Query(ctx, `
		SELECT id, project_id, amount, date, status, description
		FROM project_costs
		WHERE project_id = ANY($1)
		ORDER BY date, id`, ids)
	if err != nil {
		return err
	}
	defer costRows.Close()

	for costRows.Next() {
		cost, err := scanProjectCost(costRows)
		if err != nil {
			return err
		}
		if p, ok := byID[cost.ProjectID]; ok {
			p.Costs = append(p.Costs, *cost)
		}
	}
	if err := costRows.Err(); err != nil {
		return err
	}

	billingRows, err := q.Query(ctx, `
		SELECT id, project_id, amount, date, status, description
		FROM billings
		WHERE project_id = ANY($1)
		ORDER BY date, id`, ids)
	if err != nil {
		return err
	}
	defer billingRows.Close()

	for billingRows.Next() {
		billing, err := scanBilling(billingRows)
		if err != nil {
			return err
		}
		if p, ok := byID[billing.ProjectID]; ok {
			p.Billings = append(p.Billings, *billing)
		}
	}

	return billingRows.Err()
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	if err := row.Scan(&project.ID, &project.Name, &project.Status); err != nil {
		return nil, err
	}

	return &project, nil
}

func collectProjects(rows pgx.Rows) ([]*domain.Project, error) {
	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func scanProjectCost(row pgx.Row) (*domain.ProjectCost, error) {
	var (
		cost   domain.ProjectCost
		amount pgtype.Numeric
		date   pgtype.Timestamptz
	)
	if err := row.Scan(&cost.ID, &cost.ProjectID, &amount, &date, &cost.Status, &cost.Description); err != nil {
		return nil, err
	}

	cost.Amount = numericToDecimal(amount)
	cost.Date = date.Time

	return &cost, nil
}

func scanBilling(row pgx.Row) (*domain.Billing, error) {
	var (
		billing domain.Billing
		amount  pgtype.Numeric
		date    pgtype.Timestamptz
	)
	if err := row.Scan(&billing.ID, &billing.ProjectID, &amount, &date, &billing.Status, &billing.Description); err != nil {
		return nil, err
	}

	billing.Amount = numericToDecimal(amount)
	billing.Date = date.Time

	return &billing, nil
}
