package repository

import (
	"context"
	"errors"

	"github.com/CoooPi/bucketlist-poc/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var profileColumns = []string{
	"id", "gender", "age", "capital", "mode",
	"personality_json", "preferences_json", "prior_experiences_json",
	"created_at", "updated_at",
}

type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := squirrel.Insert("profiles").
		Columns(profileColumns...).
		Values(
			profile.ID, string(profile.Gender), profile.Age, profile.Capital, string(profile.Mode),
			profile.PersonalityJSON, profile.PreferencesJSON, profile.PriorExperiencesJSON,
			profile.CreatedAt, profile.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByID returns nil, nil when the profile does not exist.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := squirrel.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		profile      models.Profile
		gender, mode string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID, &gender, &profile.Age, &profile.Capital, &mode,
		&profile.PersonalityJSON, &profile.PreferencesJSON, &profile.PriorExperiencesJSON,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	profile.Gender = models.Gender(gender)
	profile.Mode = models.SuggestionMode(mode)
	return &profile, nil
}
