package chat

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robalyx/teampulse/internal/setup/config"
	"go.uber.org/zap"
)

// Server wraps the Fiber app serving the webhook and command surface.
type Server struct {
	app    *fiber.App
	addr   string
	logger *zap.Logger
}

// NewServer builds the Fiber app and registers all routes.
func NewServer(cfg *config.ServerConfig, handler *Handler, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "teampulse",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  time.Duration(cfg.RequestTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.RequestTimeout) * time.Millisecond,
	})
	app.Use(recover.New())

	registerRoutes(app, handler)

	return &Server{
		app:    app,
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		logger: logger.Named("server"),
	}
}

func registerRoutes(app *fiber.App, handler *Handler) {
	app.Post("/webhook/cliq", handler.Webhook)
	app.Post("/commands/teamhealth", handler.TeamHealth)
	app.Post("/commands/myload", handler.MyLoad)
	app.Get("/widget/summary", handler.WidgetSummary)
	app.Get("/health", handler.Health)
}

// App exposes the underlying Fiber app, mainly for in-process request tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.addr))
	return s.app.Listen(s.addr)
}

// Shutdown gracefully stops the server, draining in-flight requests.
func (s *Server) Shutdown() error {
	s.logger.Info("HTTP server shutting down")
	return s.app.Shutdown()
}
