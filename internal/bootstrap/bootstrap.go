package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ogulcan/lectica/internal/app/controllers"
	appFacades "github.com/ogulcan/lectica/internal/app/facades"
	appMigrations "github.com/ogulcan/lectica/internal/app/migrations"
	appRepos "github.com/ogulcan/lectica/internal/app/repositories"
	appRoutes "github.com/ogulcan/lectica/internal/app/routes"
	appServices "github.com/ogulcan/lectica/internal/app/services"
	"github.com/ogulcan/lectica/internal/config"
	"github.com/ogulcan/lectica/internal/db"
	pkgAuth "github.com/ogulcan/lectica/internal/pkg/auth"
	"github.com/ogulcan/lectica/internal/pkg/logger"
	"github.com/ogulcan/lectica/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Runner               db.Runner
	LectureFacade        *appFacades.LectureFacade
	StudentFacade        *appFacades.StudentFacade
	EnrollmentFacade     *appFacades.EnrollmentFacade
	LectureController    *appControllers.LectureController
	StudentController    *appControllers.StudentController
	EnrollmentController *appControllers.EnrollmentController
	InstructorController *appControllers.InstructorController
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seed failures never block startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, facades and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	deps.Runner = db.NewTxRunner(dbPool, cfg.GetAcquireTimeout())

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	lectureService := appServices.NewLectureService(deps.Repos.Lecture, deps.Repos.LectureStudentCount, deps.Repos.Instructor)
	studentService := appServices.NewStudentService(deps.Repos.Student)
	instructorService := appServices.NewInstructorService(deps.Repos.Instructor)
	enrollmentService := appServices.NewEnrollmentService(deps.Repos.Enrollment, deps.Repos.LectureStudentCount)

	deps.LectureFacade = appFacades.NewLectureFacade(deps.Runner, deps.Repos, lectureService)
	deps.StudentFacade = appFacades.NewStudentFacade(deps.Runner, studentService, enrollmentService)
	deps.EnrollmentFacade = appFacades.NewEnrollmentFacade(deps.Runner, deps.Repos, enrollmentService)

	deps.LectureController = appControllers.NewLectureController(deps.LectureFacade)
	deps.StudentController = appControllers.NewStudentController(deps.StudentFacade)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentFacade)
	deps.InstructorController = appControllers.NewInstructorController(deps.Runner, instructorService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.LectureController,
		deps.StudentController,
		deps.EnrollmentController,
		deps.InstructorController,
		deps.JWTService,
	)

	return router
}
