// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.
// source: workflows.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const listActiveWorkflowSteps = `-- name: ListActiveWorkflowSteps :many
SELECT s.id, s.workflow_id, s.timing, s.minutes, s.action, s.position
FROM workflow_steps s
JOIN workflows w ON w.id = s.workflow_id
WHERE s.workflow_id = $1 AND w.state = 'active'
ORDER BY s.position
`

func (q *Queries) ListActiveWorkflowSteps(ctx context.Context, db DBTX, workflowID uuid.UUID) ([]WorkflowSteps, error) {
	rows, err := db.Query(ctx, listActiveWorkflowSteps, workflowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WorkflowSteps
	for rows.Next() {
		var i WorkflowSteps
		if err := rows.Scan(
			&i.ID,
			&i.WorkflowID,
			&i.Timing,
			&i.Minutes,
			&i.Action,
			&i.Position,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
