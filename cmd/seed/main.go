package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/CoooPi/bucketlist-poc/internal/dto"
	"github.com/CoooPi/bucketlist-poc/internal/models"
	"github.com/CoooPi/bucketlist-poc/internal/repository"
	"github.com/CoooPi/bucketlist-poc/internal/service"
	"github.com/CoooPi/bucketlist-poc/pkg/config"
	"github.com/CoooPi/bucketlist-poc/pkg/logger"
	"github.com/CoooPi/bucketlist-poc/pkg/postgres"
	"github.com/CoooPi/bucketlist-poc/pkg/validator"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// seedProfile is one demo profile, optionally with categories to pre-generate.
type seedProfile struct {
	Name       string          `json:"name"`
	Gender     string          `json:"gender"`
	Age        int             `json:"age"`
	Capital    decimal.Decimal `json:"capital"`
	Mode       string          `json:"mode"`
	Categories []string        `json:"categories"`
}

type seededProfile struct {
	ProfileID string    `json:"profile_id"`
	Hash      string    `json:"hash"`
	SeededAt  time.Time `json:"seeded_at"`
}

// seedCache remembers which demo profiles already exist, keyed by name.
type seedCache struct {
	Profiles map[string]seededProfile `json:"profiles"`
}

func main() {
	seedFile := flag.String("file", filepath.Join("cmd", "seed", "profiles.json"), "demo profiles to seed")
	cacheFile := flag.String("cache", filepath.Join("cmd", "seed", ".seed_cache.json"), "cache of seeded profiles")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	profileRepo := repository.NewProfileRepository(db, appLogger)
	suggestionRepo := repository.NewSuggestionRepository(db, appLogger)
	feedbackRepo := repository.NewFeedbackRepository(db, appLogger)

	llmService := service.NewLLMService(&cfg.LLM, appLogger)
	defer llmService.Close()
	if cfg.LLM.APIKey != "" {
		if err := llmService.ValidateAndStoreAPIKey(ctx, cfg.LLM.APIKey); err != nil {
			appLogger.Warn("API key rejected, profiles will use defaults", zap.Error(err))
		}
	}

	feedbackService := service.NewFeedbackService(feedbackRepo, suggestionRepo, cfg.Suggestion.FeedbackHistoryLimit, appLogger)
	profileService := service.NewProfileService(profileRepo, llmService, cfg.Suggestion.Currency, appLogger)
	suggestionService := service.NewSuggestionService(profileRepo, suggestionRepo, feedbackService, llmService, &cfg.Suggestion, appLogger)

	appLogger.Info("Starting database seeding...")

	profiles, err := loadSeedProfiles(*seedFile)
	if err != nil {
		appLogger.Fatal("Failed to load seed profiles", zap.Error(err))
	}

	cache, err := loadCache(*cacheFile)
	if err != nil {
		appLogger.Warn("Failed to load cache, will seed all profiles", zap.Error(err))
		cache = &seedCache{Profiles: make(map[string]seededProfile)}
	}

	for _, p := range profiles {
		seedOne(ctx, p, cache, profileService, suggestionService, llmService.HasValidCredential(), appLogger)
	}

	if err := saveCache(*cacheFile, cache); err != nil {
		appLogger.Warn("Failed to save cache", zap.Error(err))
	} else {
		appLogger.Info("Cache saved", zap.Int("seeded_profiles", len(cache.Profiles)))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedOne(
	ctx context.Context,
	p seedProfile,
	cache *seedCache,
	profiles *service.ProfileService,
	suggestions *service.SuggestionService,
	canGenerate bool,
	logger *zap.Logger,
) {
	hash, err := profileHash(p)
	if err != nil {
		logger.Error("Failed to hash seed profile", zap.String("name", p.Name), zap.Error(err))
		return
	}

	if cached, ok := cache.Profiles[p.Name]; ok && cached.Hash == hash {
		logger.Info("Profile already seeded, skipping",
			zap.String("name", p.Name),
			zap.String("profile_id", cached.ProfileID),
			zap.Time("seeded_at", cached.SeededAt),
		)
		return
	}

	req := &dto.CreateProfileRequest{
		Gender:  p.Gender,
		Age:     p.Age,
		Capital: p.Capital,
		Mode:    p.Mode,
	}
	if err := validator.Struct(req); err != nil {
		logger.Warn("Invalid seed profile, skipping", zap.String("name", p.Name), zap.Error(err))
		return
	}

	created, err := profiles.CreateProfile(ctx, req)
	if err != nil {
		logger.Error("Failed to create profile", zap.String("name", p.Name), zap.Error(err))
		return
	}
	logger.Info("Seeded profile", zap.String("name", p.Name), zap.String("profile_id", created.ProfileID))

	cache.Profiles[p.Name] = seededProfile{
		ProfileID: created.ProfileID,
		Hash:      hash,
		SeededAt:  time.Now(),
	}

	if !canGenerate {
		return
	}

	profileID := uuid.MustParse(created.ProfileID)
	mode, _ := models.ParseSuggestionMode(p.Mode)
	for _, raw := range p.Categories {
		category, ok := models.ParseSpendingCategory(raw)
		if !ok {
			logger.Warn("Unknown category in seed profile", zap.String("name", p.Name), zap.String("category", raw))
			continue
		}
		generated, err := suggestions.Refill(ctx, profileID, category, mode, 0)
		if err != nil {
			logger.Error("Failed to pre-generate suggestions",
				zap.String("name", p.Name),
				zap.String("category", string(category)),
				zap.Error(err),
			)
			continue
		}
		logger.Info("Pre-generated suggestions",
			zap.String("name", p.Name),
			zap.String("category", string(category)),
			zap.Int("count", len(generated)),
		)
	}
}

func loadSeedProfiles(path string) ([]seedProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var profiles []seedProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return profiles, nil
}

func loadCache(cacheFile string) (*seedCache, error) {
	cache := &seedCache{Profiles: make(map[string]seededProfile)}

	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.Profiles == nil {
		cache.Profiles = make(map[string]seededProfile)
	}
	return cache, nil
}

func saveCache(cacheFile string, cache *seedCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}
	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// profileHash changes whenever a seed entry is edited, so edited entries
// get seeded again.
func profileHash(p seedProfile) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", sha256.Sum256(data)), nil
}
