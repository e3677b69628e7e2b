package repository

import (
	"context"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var feedbackColumns = []string{"id", "suggestion_id", "profile_id", "verdict", "reason", "created_at"}

type FeedbackRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFeedbackRepository(db *pgxpool.Pool, logger *zap.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FeedbackRepository) ExistsFor(ctx context.Context, suggestionID, profileID uuid.UUID) (bool, error) {
	query := squirrel.Select("1").
		Prefix("SELECT EXISTS (").
		From("suggestion_feedback").
		Where(squirrel.Eq{"suggestion_id": suggestionID, "profile_id": profileID}).
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

// Save inserts the feedback unless the (suggestion, profile) pair already
// has a record. The boolean reports whether a row was written.
func (r *FeedbackRepository) Save(ctx context.Context, f *models.Feedback) (bool, error) {
	query := squirrel.Insert("suggestion_feedback").
		Columns(feedbackColumns...).
		Values(f.ID, f.SuggestionID, f.ProfileID, string(f.Verdict), f.Reason, f.CreatedAt).
		Suffix("ON CONFLICT (suggestion_id, profile_id) DO NOTHING").
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

func (r *FeedbackRepository) FindByProfileAndVerdict(ctx context.Context, profileID uuid.UUID, verdict models.Verdict) ([]*models.Feedback, error) {
	query := squirrel.Select(feedbackColumns...).
		From("suggestion_feedback").
		Where(squirrel.Eq{"profile_id": profileID, "verdict": string(verdict)}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

// FindByProfileOrderedDesc returns the most recent feedback first. A
// non-positive limit returns everything.
func (r *FeedbackRepository) FindByProfileOrderedDesc(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Feedback, error) {
	query := squirrel.Select(feedbackColumns...).
		From("suggestion_feedback").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return r.query(ctx, query)
}

func (r *FeedbackRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Feedback, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []*models.Feedback
	for rows.Next() {
		var (
			f       models.Feedback
			verdict string
		)
		if err := rows.Scan(&f.ID, &f.SuggestionID, &f.ProfileID, &verdict, &f.Reason, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Verdict = models.Verdict(verdict)
		feedback = append(feedback, &f)
	}

	return feedback, rows.Err()
}
