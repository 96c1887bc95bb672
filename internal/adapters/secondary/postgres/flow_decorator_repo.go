package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avibiton/waltz/internal/core/domain"
	ports "github.com/avibiton/waltz/internal/core/ports/output"
	"github.com/avibiton/waltz/internal/metrics"
)

// notRemovedClause excludes logically removed flows from every aggregation.
// A flow is live only when its lifecycle status is not REMOVED and its
// removal flag is unset.
const notRemovedClause = "lf.entity_lifecycle_status <> 'REMOVED' AND lf.is_removed = false"

// ============================================================================
// Flow Decorator Repository Implementation
// ============================================================================

type flowDecoratorRepo struct {
	pool *pgxpool.Pool
}

// NewFlowDecoratorRepository creates a new PostgreSQL flow decorator repository
func NewFlowDecoratorRepository(pool *pgxpool.Pool) ports.FlowDecoratorRepository {
	return &flowDecoratorRepo{pool: pool}
}

// SummarizeInboundForSelector counts decorators on live flows whose target
// is in the selector, grouped by decorator and rating.
func (r *flowDecoratorRepo) SummarizeInboundForSelector(ctx context.Context, selector ports.Selector) ([]domain.DecoratorRatingSummary, error) {
	return r.summarizeForEndpoint(ctx, "lf.target_entity_id", selector)
}

// SummarizeOutboundForSelector counts decorators on live flows whose source
// is in the selector, grouped by decorator and rating.
func (r *flowDecoratorRepo) SummarizeOutboundForSelector(ctx context.Context, selector ports.Selector) ([]domain.DecoratorRatingSummary, error) {
	return r.summarizeForEndpoint(ctx, "lf.source_entity_id", selector)
}

// SummarizeForAll counts decorators across every live flow, grouped by
// decorator and rating.
func (r *flowDecoratorRepo) SummarizeForAll(ctx context.Context) ([]domain.DecoratorRatingSummary, error) {
	rows, err := r.pool.Query(ctx, summaryQuery(""))
	if err != nil {
		return nil, fmt.Errorf("failed to query decorator summaries: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *flowDecoratorRepo) summarizeForEndpoint(ctx context.Context, endpointColumn string, selector ports.Selector) ([]domain.DecoratorRatingSummary, error) {
	sub, args, err := renderSelector(selector, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to render selector: %w", err)
	}

	query := summaryQuery(fmt.Sprintf("%s IN (%s)", endpointColumn, sub))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query decorator summaries: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// summaryQuery assembles the grouped rating count. membershipClause, when
// non-empty, is ANDed with the not-removed filter.
func summaryQuery(membershipClause string) string {
	where := notRemovedClause
	if membershipClause != "" {
		where = membershipClause + " AND " + notRemovedClause
	}
	return fmt.Sprintf(`
		SELECT lfd.decorator_entity_kind, lfd.decorator_entity_id, lfd.rating,
		       COUNT(lfd.decorator_entity_id) AS decorator_count
		FROM logical_flow_decorator lfd
		JOIN logical_flow lf ON lf.id = lfd.logical_flow_id
		WHERE %s
		GROUP BY lfd.decorator_entity_kind, lfd.decorator_entity_id, lfd.rating
	`, where)
}

// FindByFlowIDs returns the decorators attached to the given flows.
func (r *flowDecoratorRepo) FindByFlowIDs(ctx context.Context, flowIDs []int64) ([]domain.LogicalFlowDecorator, error) {
	if len(flowIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, logical_flow_id, decorator_entity_kind, decorator_entity_id,
		       rating, provenance, last_updated_at, last_updated_by
		FROM logical_flow_decorator
		WHERE logical_flow_id = ANY($1)
		ORDER BY logical_flow_id, decorator_entity_kind, decorator_entity_id
	`

	rows, err := r.pool.Query(ctx, query, flowIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query decorators by flow ids: %w", err)
	}
	defer rows.Close()

	var decorators []domain.LogicalFlowDecorator
	for rows.Next() {
		decorator, err := scanDecorator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decorator: %w", err)
		}
		decorators = append(decorators, decorator)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decorators: %w", err)
	}

	return decorators, nil
}

// RemoveAllDecoratorsForFlowIDs deletes every decorator attached to the given
// flows and reports how many rows went away.
//
// Deprecated: use RemoveDecoratorsForFlow, which verifies the flow exists and
// scopes the delete to a single flow.
func (r *flowDecoratorRepo) RemoveAllDecoratorsForFlowIDs(ctx context.Context, flowIDs []int64) (int64, error) {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM logical_flow_decorator WHERE logical_flow_id = ANY($1)`, flowIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete decorators for flows: %w", err)
	}

	deleted := result.RowsAffected()
	metrics.DecoratorsDeleted.Add(float64(deleted))
	return deleted, nil
}

// RemoveDecoratorsForFlow deletes every decorator attached to one flow.
func (r *flowDecoratorRepo) RemoveDecoratorsForFlow(ctx context.Context, flowID int64) (int64, error) {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM logical_flow_decorator WHERE logical_flow_id = $1`, flowID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete decorators for flow: %w", err)
	}

	deleted := result.RowsAffected()
	metrics.DecoratorsDeleted.Add(float64(deleted))
	return deleted, nil
}

// UpdateRatingsByCondition sets the rating on every decorator matching the
// condition and reports how many rows changed.
func (r *flowDecoratorRepo) UpdateRatingsByCondition(ctx context.Context, rating domain.AuthoritativenessRating, condition ports.Condition) (int64, error) {
	where, args, err := renderCondition(condition, 2)
	if err != nil {
		return 0, fmt.Errorf("failed to render condition: %w", err)
	}

	query := fmt.Sprintf(`UPDATE logical_flow_decorator SET rating = $1 WHERE %s`, where)

	result, err := r.pool.Exec(ctx, query, append([]any{string(rating)}, args...)...)
	if err != nil {
		return 0, fmt.Errorf("failed to update decorator ratings: %w", err)
	}

	updated := result.RowsAffected()
	metrics.DecoratorRatingsUpdated.Add(float64(updated))
	return updated, nil
}

// FlowIDsByDataTypeAndDirection groups the ids of live flows touching the
// selector by data type decorator and by direction relative to the selector.
// A flow whose source and target are both selected is INTRA, source only is
// OUTBOUND, target only is INBOUND.
func (r *flowDecoratorRepo) FlowIDsByDataTypeAndDirection(ctx context.Context, selector ports.Selector) (map[domain.DataTypeDirectionKey][]int64, error) {
	srcSub, srcArgs, err := renderSelector(selector, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to render selector: %w", err)
	}
	tgtSub, tgtArgs, err := renderSelector(selector, 1+len(srcArgs))
	if err != nil {
		return nil, fmt.Errorf("failed to render selector: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT lfd.decorator_entity_id,
		       src.id IS NOT NULL AS source_hit,
		       tgt.id IS NOT NULL AS target_hit,
		       lf.id
		FROM logical_flow lf
		JOIN logical_flow_decorator lfd
			ON lfd.logical_flow_id = lf.id AND lfd.decorator_entity_kind = 'DATA_TYPE'
		LEFT JOIN (%s) AS src(id) ON src.id = lf.source_entity_id
		LEFT JOIN (%s) AS tgt(id) ON tgt.id = lf.target_entity_id
		WHERE (src.id IS NOT NULL OR tgt.id IS NOT NULL) AND %s
	`, srcSub, tgtSub, notRemovedClause)

	rows, err := r.pool.Query(ctx, query, append(srcArgs, tgtArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flow ids by data type: %w", err)
	}
	defer rows.Close()

	grouped := make(map[domain.DataTypeDirectionKey][]int64)
	for rows.Next() {
		var (
			dataTypeID int64
			sourceHit  bool
			targetHit  bool
			flowID     int64
		)
		if err := rows.Scan(&dataTypeID, &sourceHit, &targetHit, &flowID); err != nil {
			return nil, fmt.Errorf("failed to scan flow direction row: %w", err)
		}
		key := domain.DataTypeDirectionKey{
			DataTypeID: dataTypeID,
			Direction:  domain.DirectionFor(sourceHit, targetHit),
		}
		grouped[key] = append(grouped[key], flowID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate flow direction rows: %w", err)
	}

	return grouped, nil
}

// scanSummaries collects grouped rating counts from the summary queries.
func scanSummaries(rows pgx.Rows) ([]domain.DecoratorRatingSummary, error) {
	var summaries []domain.DecoratorRatingSummary
	for rows.Next() {
		var (
			kind   string
			id     int64
			rating string
			count  int
		)
		if err := rows.Scan(&kind, &id, &rating, &count); err != nil {
			return nil, fmt.Errorf("failed to scan decorator summary: %w", err)
		}

		decoratorKind, err := domain.ParseEntityKind(kind)
		if err != nil {
			return nil, fmt.Errorf("failed to read decorator summary: %w", err)
		}
		decoratorRating, err := domain.ParseAuthoritativenessRating(rating)
		if err != nil {
			return nil, fmt.Errorf("failed to read decorator summary: %w", err)
		}

		summaries = append(summaries, domain.DecoratorRatingSummary{
			Decorator: domain.EntityReference{Kind: decoratorKind, ID: id},
			Rating:    decoratorRating,
			Count:     count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decorator summaries: %w", err)
	}

	return summaries, nil
}

// scanDecorator maps a decorator row onto the domain model.
func scanDecorator(row pgx.Row) (domain.LogicalFlowDecorator, error) {
	var (
		decorator domain.LogicalFlowDecorator
		kind      string
		rating    string
	)

	err := row.Scan(
		&decorator.ID,
		&decorator.LogicalFlowID,
		&kind,
		&decorator.Decorator.ID,
		&rating,
		&decorator.Provenance,
		&decorator.LastUpdatedAt,
		&decorator.LastUpdatedBy,
	)
	if err != nil {
		return domain.LogicalFlowDecorator{}, err
	}

	if decorator.Decorator.Kind, err = domain.ParseEntityKind(kind); err != nil {
		return domain.LogicalFlowDecorator{}, err
	}
	if decorator.Rating, err = domain.ParseAuthoritativenessRating(rating); err != nil {
		return domain.LogicalFlowDecorator{}, err
	}

	return decorator, nil
}
