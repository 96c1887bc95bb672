package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
)

// ============================================================================
// Logical Flow Repository Implementation
// ============================================================================

type logicalFlowRepo struct {
	pool *pgxpool.Pool
}

// NewLogicalFlowRepository creates a new PostgreSQL logical flow repository
func NewLogicalFlowRepository(pool *pgxpool.Pool) ports.LogicalFlowRepository {
	return &logicalFlowRepo{pool: pool}
}

// GetByID retrieves a logical flow by its id.
func (r *logicalFlowRepo) GetByID(ctx context.Context, id int64) (*domain.LogicalFlow, error) {
	query := `
		SELECT lf.id, lf.source_entity_kind, lf.source_entity_id,
		       lf.target_entity_kind, lf.target_entity_id,
		       lf.entity_lifecycle_status, lf.is_removed, lf.provenance,
		       lf.created_at, lf.last_updated_at, lf.last_updated_by
		FROM logical_flow lf
		WHERE lf.id = $1
	`

	flow, err := scanLogicalFlow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to get logical flow: %w", err)
	}

	return flow, nil
}

// FindBySelector returns live flows with either endpoint in the selector.
func (r *logicalFlowRepo) FindBySelector(ctx context.Context, selector ports.Selector) ([]domain.LogicalFlow, error) {
	srcSub, srcArgs, err := renderSelector(selector, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to render selector: %w", err)
	}
	tgtSub, tgtArgs, err := renderSelector(selector, 1+len(srcArgs))
	if err != nil {
		return nil, fmt.Errorf("failed to render selector: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT lf.id, lf.source_entity_kind, lf.source_entity_id,
		       lf.target_entity_kind, lf.target_entity_id,
		       lf.entity_lifecycle_status, lf.is_removed, lf.provenance,
		       lf.created_at, lf.last_updated_at, lf.last_updated_by
		FROM logical_flow lf
		WHERE (lf.source_entity_id IN (%s) OR lf.target_entity_id IN (%s))
		  AND %s
		ORDER BY lf.id
	`, srcSub, tgtSub, notRemovedClause)

	rows, err := r.pool.Query(ctx, query, append(srcArgs, tgtArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query logical flows: %w", err)
	}
	defer rows.Close()

	var flows []domain.LogicalFlow
	for rows.Next() {
		flow, err := scanLogicalFlow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan logical flow: %w", err)
		}
		flows = append(flows, *flow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logical flows: %w", err)
	}

	return flows, nil
}

// scanLogicalFlow maps a flow row onto the domain model.
func scanLogicalFlow(row pgx.Row) (*domain.LogicalFlow, error) {
	var (
		flow       domain.LogicalFlow
		sourceKind string
		targetKind string
		status     string
	)

	err := row.Scan(
		&flow.ID,
		&sourceKind,
		&flow.Source.ID,
		&targetKind,
		&flow.Target.ID,
		&status,
		&flow.IsRemoved,
		&flow.Provenance,
		&flow.CreatedAt,
		&flow.LastUpdatedAt,
		&flow.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if flow.Source.Kind, err = domain.ParseEntityKind(sourceKind); err != nil {
		return nil, err
	}
	if flow.Target.Kind, err = domain.ParseEntityKind(targetKind); err != nil {
		return nil, err
	}
	if flow.LifecycleStatus, err = domain.ParseEntityLifecycleStatus(status); err != nil {
		return nil, err
	}

	return &flow, nil
}
