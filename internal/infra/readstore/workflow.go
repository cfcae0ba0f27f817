package readstore

import (
	"context"

	"meeting-scheduler/internal/domain/workflow"
	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type WorkflowQueries interface {
	ListActiveWorkflowSteps(ctx context.Context, db sqlc.DBTX, workflowID uuid.UUID) ([]sqlc.WorkflowSteps, error)
}

type WorkflowReadStore struct {
	queries WorkflowQueries
	db      sqlc.DBTX
}

func NewWorkflowReadStore(queries WorkflowQueries, db sqlc.DBTX) *WorkflowReadStore {
	return &WorkflowReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActiveSteps returns nothing for a paused or unknown workflow.
func (r *WorkflowReadStore) FindActiveSteps(ctx context.Context, workflowID uuid.UUID) ([]workflow.Step, error) {
	rows, err := r.queries.ListActiveWorkflowSteps(ctx, r.db, workflowID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workflow steps", err)
	}

	steps := make([]workflow.Step, 0, len(rows))
	for _, row := range rows {
		step, err := workflow.NewStep(row.ID, workflow.Timing(row.Timing), int(row.Minutes), row.Action)
		if err != nil {
			return nil, infra.WrapRepoErr("stored workflow step is invalid", err, infra.KindDBFailure)
		}
		steps = append(steps, step)
	}

	return steps, nil
}
