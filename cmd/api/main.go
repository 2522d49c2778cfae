package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/legal-office-service/internal/api/http"
	"github.com/spec-kit/legal-office-service/internal/api/http/handlers"
	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/config"
	"github.com/spec-kit/legal-office-service/internal/events"
	"github.com/spec-kit/legal-office-service/internal/observability"
	"github.com/spec-kit/legal-office-service/internal/persistence"
	"github.com/spec-kit/legal-office-service/internal/repository"
	"github.com/spec-kit/legal-office-service/internal/service"
	"github.com/spec-kit/legal-office-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	memoRepo := repository.NewMemoRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)

	sessionManager := auth.NewSessionManager(cfg.Session, redis.ClientHandle(), logger)
	sessionMiddleware := auth.NewSessionMiddleware(sessionManager, accountRepo)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	pageSize := cfg.App.PageSize
	authService := service.NewAuthService(accountRepo, sessionManager)
	accountService := service.NewAccountService(accountRepo, pageSize, cfg.Session.BcryptCost)
	blogService := service.NewBlogService(blogRepo, pageSize)
	categoryService := service.NewCategoryService(categoryRepo, pageSize)
	departmentService := service.NewDepartmentService(departmentRepo, pageSize)
	contactService := service.NewContactService(contactRepo, dispatcher, pageSize)
	complaintService := service.NewComplaintService(complaintRepo, dispatcher, pageSize)
	memoService := service.NewMemoService(memoRepo, pageSize)
	reportService := service.NewReportService(reportRepo, pageSize)
	leaveService := service.NewLeaveService(leaveRepo, dispatcher, pageSize)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:        handlers.NewAuthHandler(authService),
		Accounts:    handlers.NewAccountsHandler(accountService),
		Blogs:       handlers.NewBlogsHandler(blogService),
		Categories:  handlers.NewCategoriesHandler(categoryService),
		Departments: handlers.NewDepartmentsHandler(departmentService),
		Contacts:    handlers.NewContactsHandler(contactService),
		Complaints:  handlers.NewComplaintsHandler(complaintService),
		Memos:       handlers.NewMemosHandler(memoService),
		Reports:     handlers.NewReportsHandler(reportService),
		Leaves:      handlers.NewLeavesHandler(leaveService),
		Sessions:    sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
