package repository

import (
	"context"
	"fmt"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var suggestionColumns = []string{
	"id", "profile_id", "title", "description", "category", "price_band",
	"estimated_cost", "source_prompt_hash", "content_hash", "budget_breakdown_json", "created_at",
}

type SuggestionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSuggestionRepository(db *pgxpool.Pool, logger *zap.Logger) *SuggestionRepository {
	return &SuggestionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SuggestionRepository) ExistsByContentHash(ctx context.Context, profileID uuid.UUID, contentHash string) (bool, error) {
	query := squirrel.Select("1").
		Prefix("SELECT EXISTS (").
		From("suggestions").
		Where(squirrel.Eq{"profile_id": profileID, "content_hash": contentHash}).
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Save inserts the suggestion unless the profile already owns its content
// hash. The boolean reports whether a row was written.
func (r *SuggestionRepository) Save(ctx context.Context, s *models.Suggestion) (bool, error) {
	breakdown, err := json.Marshal(s.BudgetBreakdown)
	if err != nil {
		return false, fmt.Errorf("failed to encode budget breakdown: %w", err)
	}

	query := squirrel.Insert("suggestions").
		Columns(suggestionColumns...).
		Values(
			s.ID, s.ProfileID, s.Title, s.Description,
			nullableString(s.Category), nullableString(s.PriceBand),
			nullableDecimal(s.EstimatedCost), s.SourcePromptHash, s.ContentHash, string(breakdown), s.CreatedAt,
		).
		Suffix("ON CONFLICT (profile_id, content_hash) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindUnratedByProfile returns the profile's suggestions that have no
// feedback from that profile, oldest first.
func (r *SuggestionRepository) FindUnratedByProfile(ctx context.Context, profileID uuid.UUID) ([]*models.Suggestion, error) {
	query := squirrel.Select(prefixed("s", suggestionColumns)...).
		From("suggestions s").
		LeftJoin("suggestion_feedback f ON f.suggestion_id = s.id AND f.profile_id = s.profile_id").
		Where(squirrel.Eq{"s.profile_id": profileID}).
		Where("f.id IS NULL").
		OrderBy("s.created_at ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *SuggestionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Suggestion, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := squirrel.Select(suggestionColumns...).
		From("suggestions").
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *SuggestionRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Suggestion, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []*models.Suggestion
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, rows.Err()
}

func (r *SuggestionRepository) scan(rows pgx.Rows) (*models.Suggestion, error) {
	var (
		s                   models.Suggestion
		category, priceBand *string
		estimatedCost       decimal.NullDecimal
		breakdown           string
	)
	if err := rows.Scan(
		&s.ID, &s.ProfileID, &s.Title, &s.Description, &category, &priceBand,
		&estimatedCost, &s.SourcePromptHash, &s.ContentHash, &breakdown, &s.CreatedAt,
	); err != nil {
		return nil, err
	}

	if category != nil {
		c := models.SpendingCategory(*category)
		s.Category = &c
	}
	if priceBand != nil {
		p := models.PriceBand(*priceBand)
		s.PriceBand = &p
	}
	if estimatedCost.Valid {
		s.EstimatedCost = &estimatedCost.Decimal
	}

	s.BudgetBreakdown = []models.BudgetItem{}
	if breakdown != "" {
		if err := json.Unmarshal([]byte(breakdown), &s.BudgetBreakdown); err != nil {
			r.logger.Warn("Failed to decode stored budget breakdown",
				zap.String("suggestion_id", s.ID.String()),
				zap.Error(err),
			)
			s.BudgetBreakdown = []models.BudgetItem{}
		}
	}

	return &s, nil
}

func nullableString[T ~string](v *T) interface{} {
	if v == nil {
		return nil
	}
	return string(*v)
}

func nullableDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
