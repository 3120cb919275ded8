package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/opsdesk/opsdesk-backend-go/internal/config"
	appHTTP "github.com/opsdesk/opsdesk-backend-go/internal/handler/http"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/jwt"
	"github.com/opsdesk/opsdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/opsdesk/opsdesk-backend-go/internal/service/attendance"
	serviceAuth "github.com/opsdesk/opsdesk-backend-go/internal/service/auth"
	taskService "github.com/opsdesk/opsdesk-backend-go/internal/service/task"
	archiveService "github.com/opsdesk/opsdesk-backend-go/internal/service/taskarchive"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	taskArchiveRepo := postgresql.NewTaskArchiveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService)
	attendanceService := attendanceService.NewAttendanceService(db, attendanceRepo)
	taskService := taskService.NewTaskService(db, taskRepo, userRepo)
	archiveService := archiveService.NewTaskArchiveService(db, taskRepo, taskArchiveRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceService)
	taskHandler := appHTTP.NewTaskHandler(taskService)
	archiveHandler := appHTTP.NewTaskArchiveHandler(archiveService)
	userHandler := appHTTP.NewUserHandler(userRepo)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		taskHandler,
		archiveHandler,
		userHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
