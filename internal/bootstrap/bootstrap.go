// Package bootstrap wires the application together: configuration, logging,
// seed data, snapshot rehydration, the store, services, controllers and the
// Gin router.
package bootstrap

import (
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emirhank/campuscore/internal/app/controllers"
	"github.com/emirhank/campuscore/internal/app/models"
	appRoutes "github.com/emirhank/campuscore/internal/app/routes"
	appServices "github.com/emirhank/campuscore/internal/app/services"
	"github.com/emirhank/campuscore/internal/config"
	appMiddleware "github.com/emirhank/campuscore/internal/middleware"
	pkgAuth "github.com/emirhank/campuscore/internal/pkg/auth"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/pkg/logger"
	"github.com/emirhank/campuscore/internal/seed"
	"github.com/emirhank/campuscore/internal/snapshot"
	"github.com/emirhank/campuscore/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store          *store.Store
	Snapshot       *snapshot.Store
	Writer         *snapshot.Writer
	IDs            *idgen.Generator
	JWTService     *pkgAuth.JWTService
	Services       *appServices.Services
	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger

	authController       *appControllers.AuthController
	studentController    *appControllers.StudentController
	facultyController    *appControllers.FacultyController
	academicController   *appControllers.AcademicController
	attendanceController *appControllers.AttendanceController
	examController       *appControllers.ExamController
	feeController        *appControllers.FeeController
	payrollController    *appControllers.PayrollController
	libraryController    *appControllers.LibraryController
	registryController   *appControllers.RegistryController
	adminController      *appControllers.AdminController
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

// seedSource builds the random source for fixture generation. A non-zero
// configured seed pins it for reproducible development sessions.
func seedSource(cfg *config.Config) *rand.Rand {
	seedValue := cfg.Seed.RandomSeed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seedValue))
}

// BuildState produces the initial store state: seed data, overlaid by the
// snapshot document when one exists.
func BuildState(cfg *config.Config, snap *snapshot.Store, lgr zerolog.Logger) models.State {
	rnd := seedSource(cfg)
	defaults := seed.Generate(idgen.New(), rnd, lgr)

	state, restored := snap.Load(defaults)
	if restored {
		lgr.Info().Str("path", snap.Path()).Msg("Session restored from snapshot")
	} else {
		lgr.Info().Msg("No usable snapshot, starting from seed data")
	}
	return state
}

// BuildDependencies initializes the store, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	snap, err := snapshot.New(cfg.Snapshot.Dir, cfg.Snapshot.File, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to prepare snapshot storage")
		return nil, err
	}
	deps.Snapshot = snap

	deps.Store = store.New(BuildState(cfg, snap, lgr), lgr)
	deps.IDs = idgen.New()

	// Every settled transition schedules a background snapshot write.
	deps.Writer = snapshot.NewWriter(snap, lgr)
	deps.Store.Subscribe(deps.Writer.Notify)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  config.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: config.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	seedFn := func() models.State {
		return seed.Generate(idgen.New(), seedSource(cfg), lgr)
	}

	deps.Services = &appServices.Services{
		Auth:       appServices.NewAuthService(deps.Store, deps.JWTService, lgr),
		Student:    appServices.NewStudentService(deps.Store, deps.IDs),
		Faculty:    appServices.NewFacultyService(deps.Store, deps.IDs),
		Academic:   appServices.NewAcademicService(deps.Store, deps.IDs),
		Attendance: appServices.NewAttendanceService(deps.Store, deps.IDs),
		Exam:       appServices.NewExamService(deps.Store, deps.IDs),
		Fee:        appServices.NewFeeService(deps.Store, deps.IDs),
		Payroll:    appServices.NewPayrollService(deps.Store, deps.IDs),
		Library:    appServices.NewLibraryService(deps.Store, deps.IDs),
		Registry:   appServices.NewRegistryService(deps.Store, deps.IDs),
		Admin:      appServices.NewAdminService(deps.Store, snap, seedFn, lgr),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.authController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.studentController = appControllers.NewStudentController(deps.Services.Student, deps.Services.Exam, deps.Services.Fee)
	deps.facultyController = appControllers.NewFacultyController(deps.Services.Faculty)
	deps.academicController = appControllers.NewAcademicController(deps.Services.Academic)
	deps.attendanceController = appControllers.NewAttendanceController(deps.Services.Attendance)
	deps.examController = appControllers.NewExamController(deps.Services.Exam)
	deps.feeController = appControllers.NewFeeController(deps.Services.Fee)
	deps.payrollController = appControllers.NewPayrollController(deps.Services.Payroll)
	deps.libraryController = appControllers.NewLibraryController(deps.Services.Library)
	deps.registryController = appControllers.NewRegistryController(deps.Services.Registry)
	deps.adminController = appControllers.NewAdminController(deps.Services.Admin)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.authController,
		deps.studentController,
		deps.facultyController,
		deps.academicController,
		deps.attendanceController,
		deps.examController,
		deps.feeController,
		deps.payrollController,
		deps.libraryController,
		deps.registryController,
		deps.adminController,
		deps.AuthMiddleware,
	)

	return router
}
