package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"freightsite/internal/config"
	"freightsite/internal/database"
	"freightsite/internal/mailer"
	"freightsite/internal/middleware"
	"freightsite/internal/modules/admin"
	"freightsite/internal/modules/auth"
	"freightsite/internal/modules/contact"
	"freightsite/internal/modules/content"
	"freightsite/internal/modules/schema"
	jwtsvc "freightsite/internal/pkg/jwt"
	"freightsite/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("closing pool: %v", err)
		}
	}()

	checkDB := func(ctx context.Context) bool {
		return database.Ping(ctx, db, cfg.DatabaseDSN)
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var mail mailer.Sender
	if cfg.ResendAPIKey != "" {
		mail = mailer.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom, cfg.AdminNotify)
	} else {
		log.Println("RESEND_API_KEY not set, contact emails will only be logged")
		mail = mailer.LogSender{}
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	contentService := content.NewService(serviceRepo, certificateRepo, teamRepo)
	contentHandler := content.NewHandler(contentService, content.ConnChecker(checkDB))

	contactService := contact.NewService(messageRepo, mail)
	contactHandler := contact.NewHandler(contactService, contact.ConnChecker(checkDB))

	schemaService := schema.NewService(db)
	schemaHandler := schema.NewHandler(schemaService)

	adminService := admin.NewService(db, messageRepo)
	adminHandler := admin.NewHandler(adminService)

	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdmin(bootCtx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("could not ensure admin account: %v", err)
	}
	cancel()

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		contentHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)

		// admin back office
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			authHandler.RegisterProtectedRoutes(protected)
			contentHandler.RegisterAdminRoutes(protected)
			contactHandler.RegisterAdminRoutes(protected)
			schemaHandler.RegisterAdminRoutes(protected)
			adminHandler.RegisterAdminRoutes(protected.Group("/admin"))
		}
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
