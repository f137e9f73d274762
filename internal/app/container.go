package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/petalsoft/sakuradrill/internal/adapter/repository"
	"github.com/petalsoft/sakuradrill/internal/infrastructure/config"
	"github.com/petalsoft/sakuradrill/internal/repository"
	"github.com/petalsoft/sakuradrill/internal/usecase"
	"github.com/petalsoft/sakuradrill/internal/usecase/backup"
	syncuc "github.com/petalsoft/sakuradrill/internal/usecase/sync"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Catalog    repository.Catalog
	Progress   repository.ProgressRepository
	Syncer     *syncuc.Syncer
	Drill      usecase.DrillUsecase
	Review     usecase.ReviewUsecase
	Flashcards usecase.FlashcardUsecase
	Backup     *backup.Service
}

func provideCatalog(cfg *config.Config) repository.Catalog {
	return adapterrepo.NewFileCatalog(cfg.Catalog.Problems, cfg.Catalog.Flashcards)
}

func provideProgressRepository(cfg *config.Config, logger *logrus.Logger) (repository.ProgressRepository, func(), error) {
	return adapterrepo.NewSQLiteProgressRepository(cfg.Storage.Path, logger)
}

// provideRemoteStore is nil when no remote database is configured; the
// syncer treats nil as local-only.
func provideRemoteStore(pool *pgxpool.Pool) (repository.RemoteStore, error) {
	if pool == nil {
		return nil, nil
	}
	store := adapterrepo.NewPostgresRemoteStore(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func provideSyncer(local repository.ProgressRepository, remote repository.RemoteStore, cfg *config.Config, logger *logrus.Logger) *syncuc.Syncer {
	return syncuc.NewSyncer(local, remote, cfg.Remote.FamilyID, logger)
}

func provideRand(cfg *config.Config) *rand.Rand {
	seed := cfg.Drill.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func provideDrill(catalog repository.Catalog, progressRepo repository.ProgressRepository, cfg *config.Config, rng *rand.Rand) (usecase.DrillUsecase, error) {
	warmupRe, err := cfg.Drill.CompileWarmupPattern()
	if err != nil {
		return nil, err
	}
	return usecase.NewDrillUsecase(catalog, progressRepo, usecase.DrillConfig{
		MinBatch:      cfg.Drill.MinBatch,
		MaxBatch:      cfg.Drill.MaxBatch,
		WarmupPattern: warmupRe,
	}, rng), nil
}

func provideReview(catalog repository.Catalog, progressRepo repository.ProgressRepository, syncer *syncuc.Syncer, cfg *config.Config) usecase.ReviewUsecase {
	return usecase.NewReviewUsecase(catalog, progressRepo, syncer, cfg.Sakura.FullBloomThreshold)
}

func provideFlashcards(catalog repository.Catalog, progressRepo repository.ProgressRepository, syncer *syncuc.Syncer, cfg *config.Config, rng *rand.Rand) usecase.FlashcardUsecase {
	return usecase.NewFlashcardUsecase(catalog, progressRepo, syncer, cfg.Flashcards.SessionCap, cfg.Sakura.FullBloomThreshold, rng)
}

func provideBackup(progressRepo repository.ProgressRepository, cfg *config.Config) *backup.Service {
	return backup.NewService(progressRepo, cfg.Sakura.FullBloomThreshold)
}
