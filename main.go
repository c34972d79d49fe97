// This is the main entry point of the archon backend, the authentication and
// chat-relay service behind the university chatbot frontend. It loads
// configuration, connects the database pool, runs migrations, wires the
// services and handlers together, sets up the HTTP router and middleware,
// and starts the server with graceful shutdown. All wiring is explicit and
// lives in this one place.
// @title Archon Auth & Relay API
// @version 1.0
// @description Authentication, role-gated access control and chat relay for the university assistant.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/archon-go/apperror"
	"github.com/user/archon-go/auth"
	"github.com/user/archon-go/chat"
	"github.com/user/archon-go/config"
	"github.com/user/archon-go/db"
	_ "github.com/user/archon-go/docs" // Generated Swagger docs
	"github.com/user/archon-go/users"
)

func main() {
	// .env support for development; production sets variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Manual dependency injection, leaves first: stores, then the token
	// codec, then services, then handlers. The signing secret lives inside
	// the codec and nowhere else.
	tokenCodec := auth.NewTokenCodec(*cfg.Auth)

	authService := auth.NewAuthService(auth.NewPgxUserStore(pool), tokenCodec)
	authHandlers := auth.NewHandlers(authService, *cfg.Server)

	chatService := chat.NewChatService(
		chat.NewPgxChatStore(pool),
		chat.NewHTTPAssistantClient(*cfg.Assistant),
		*cfg.Chat,
	)
	chatHandlers := chat.NewChatHandlers(chatService)

	userService := users.NewUserService(users.NewPgxAdminStore(pool))
	userHandlers := users.NewUserHandlers(userService)

	r := chi.NewRouter()

	// Global middleware; chi requires all of it registered before routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS locked to the configured frontend origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic-to-apperror middleware: a panicking handler still produces the
	// standard error body instead of an empty 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Auth routes. Register and login are public (register is environment-
	// gated inside the handler); /me requires any authenticated identity.
	r.Route("/auth", func(r chi.Router) {
		r.Get("/health", authHandlers.HandleHealth())
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.With(auth.RequireRoles(tokenCodec)).Get("/me", authHandlers.HandleMe())
	})

	// Protected API routes. The role gates are attached declaratively per
	// group here; no handler compares role strings itself.
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRoles(tokenCodec, auth.RoleUser, auth.RoleAdmin))
			r.Post("/chat", chatHandlers.HandleChat())
			r.Get("/user/recent-chats", chatHandlers.HandleRecentChats())
			r.Get("/user/profile", userHandlers.HandleProfile())
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRoles(tokenCodec, auth.RoleAdmin))
			r.Get("/admin/users", userHandlers.HandleListUsers())
			r.Delete("/admin/users/{regNo}", userHandlers.HandleDeleteUser())
			r.Get("/admin/analytics", userHandlers.HandleAnalytics())
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine so main can wait for shutdown signals.
	go func() {
		log.Printf("Server starting on %s (env: %s)", addr, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown: finish in-flight requests, bounded by 30 seconds.
	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// separate from the auth package helpers to avoid pulling handler imports
// into the recovery path.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
