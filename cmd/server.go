package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/core"
	"portfolio/internal/credentials"
	"portfolio/internal/db"
	"portfolio/internal/http/handler"
	"portfolio/internal/http/handler/middleware"
	"portfolio/internal/http/payload"
	"portfolio/internal/http/server"
	"portfolio/internal/http/view"
	"portfolio/internal/repository"
	"portfolio/internal/session"
	"portfolio/pkg/log"
	"portfolio/pkg/token"
	"syscall"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger, err := log.NewZapLogger("portfolio", cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	if cfg.UsesDefaultSecret() {
		logger.Warnw("SECRET_KEY is not set, sessions are signed with the default key")
	}

	dbConn, err := db.NewGormDB(db.Options{
		Driver:    cfg.DB.Driver,
		Host:      cfg.DB.Host,
		Port:      cfg.DB.Port,
		User:      cfg.DB.User,
		Password:  cfg.DB.Password,
		Name:      cfg.DB.Name,
		Charset:   cfg.DB.Charset,
		Collation: cfg.DB.Collation,
		Debug:     cfg.Debug,
	})
	if err != nil {
		logger.Errorw("failed to open database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewPortfolioRepository(dbConn)

	// portfolio
	portfolio := core.NewPortfolio(logger, repo, credentials.NewHasher(bcrypt.DefaultCost))

	err = portfolio.Initialize(context.Background(), core.AdminAccount{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		// keep serving: pages that need the database report it per request
		logger.Errorw("failed to initialize database", "error", err)
	} else {
		logger.Infow("database initialized", "driver", cfg.DB.Driver, "database", cfg.DB.Name)
	}

	profile, err := loadContent(cfg.ContentFile)
	if err != nil {
		logger.Errorw("failed to load portfolio content", "error", err, "file", cfg.ContentFile)
		return err
	}

	// sessions
	tokenService, err := token.NewService([]byte(cfg.SecretKey))
	if err != nil {
		logger.Errorw("failed to create token service", "error", err)
		return err
	}

	sessions := session.NewManager(logger, tokenService, session.Options{
		TTL:    cfg.SessionTTL,
		Cookie: session.CookieOptions{Secure: cfg.CookieSecure},
	})

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	portfolioHlr := handler.NewPortfolioHandler(
		logger,
		payload.Decoder{},
		portfolio,
		sessions,
		renderer,
		profile)

	// register routes
	mux := http.NewServeMux()
	portfolioHlr.Register(mux, middleware.NewGate(logger, sessions))

	// middleware
	hdlr := withCORS(mux, cfg.CORSOrigins, logger)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Addr())
	return run(srv)
}

func loadContent(path string) (content.Portfolio, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

// withCORS lets the listed origins call the JSON API. Without origins the
// handler is returned unchanged.
func withCORS(next http.Handler, origins []string, logger *zap.SugaredLogger) http.Handler {
	if len(origins) == 0 {
		return next
	}

	logger.Infow("cors enabled", "origins", origins)
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	return c.Handler(next)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
