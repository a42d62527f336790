package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ogulcan/lectica/internal/app/models"
	appRepos "github.com/ogulcan/lectica/internal/app/repositories"
	appServices "github.com/ogulcan/lectica/internal/app/services"
)

type sampleLecture struct {
	title        string
	introduction string
	category     appModels.Category
	price        int64
}

var sampleLectures = []sampleLecture{
	{"Backend Fundamentals", "HTTP services from socket to handler", appModels.CategoryWeb, 39000},
	{"PostgreSQL in Practice", "Schema design, indexing and transactions", appModels.CategoryDatabase, 49000},
	{"Algorithms Bootcamp", "Problem solving patterns with worked examples", appModels.CategoryAlgorithm, 29000},
}

// CreateDefaultData seeds a demo instructor and a few published lectures on
// an empty catalog. Existing data is left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories()
	instructorService := appServices.NewInstructorService(repos.Instructor)
	lectureService := appServices.NewLectureService(repos.Lecture, repos.LectureStudentCount, repos.Instructor)

	lgr.Info().Msg("Checking/Creating default catalog data...")

	tx, err := dbPool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	existing, err := repos.Instructor.GetAll(ctx, tx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Info().Msg("Catalog already populated, skipping seed")
		return nil
	}

	instructor, err := instructorService.CreateInstructor(ctx, tx, "Demo Instructor")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating seed instructor")
		return err
	}

	for _, s := range sampleLectures {
		lecture, err := lectureService.CreateLecture(ctx, tx, s.title, s.introduction, instructor.ID, s.category, s.price)
		if err != nil {
			lgr.Error().Err(err).Str("title", s.title).Msg("Error creating seed lecture")
			return err
		}
		if _, err := lectureService.PublishLecture(ctx, tx, lecture.ID); err != nil {
			lgr.Error().Err(err).Int64("lectureId", lecture.ID).Msg("Error publishing seed lecture")
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	lgr.Info().Int("lectures", len(sampleLectures)).Msg("Default catalog data created")
	return nil
}
