package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kanbanlive/internal/auth"
	"kanbanlive/internal/bus"
	"kanbanlive/internal/config"
	"kanbanlive/internal/handler"
	"kanbanlive/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Bus    *bus.Bus
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Notification bus shared by all mutating handlers
	notifyBus := bus.New()

	// Initialize handlers
	systemHandler := handler.NewSystemHandler()
	userHandler := handler.NewUserHandler(userRepo, auth.VerifierFor(cfg.AuthScheme))
	boardHandler := handler.NewBoardHandler(boardRepo, notifyBus)
	taskHandler := handler.NewTaskHandler(taskRepo, notifyBus)
	streamHandler := handler.NewStreamHandler(notifyBus)

	// Routes
	r.GET("/", systemHandler.Root)
	r.GET("/check-db", userHandler.CheckDB)
	r.POST("/login", userHandler.Login)
	r.GET("/board", boardHandler.GetBoard)
	r.POST("/tasks", taskHandler.Create)
	r.PUT("/tasks/:task_id", taskHandler.Update)
	r.DELETE("/clear-all", boardHandler.ClearAll)
	r.GET("/events", streamHandler.Stream)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Bus:    notifyBus,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
