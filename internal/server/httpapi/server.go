// Package httpapi exposes the HTTP/JSON surface of the server: the request
// gate that turns bearer tokens into verified principals, and the handlers
// for the private task list and the shared grocery list.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/logging"
	"github.com/dmitrijs2005/permalist/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr      string
	logger    logging.Logger
	users     *services.UserService
	tasks     *services.TaskService
	grocery   *services.GroceryService
	jwtSecret []byte
	db        *sql.DB
	engine    *gin.Engine
}

func NewServer(addr string, l logging.Logger, us *services.UserService, ts *services.TaskService, gs *services.GroceryService, secretKey string, db *sql.DB) *Server {
	s := &Server{
		addr:      addr,
		logger:    l.With("module", "httpapi"),
		users:     us,
		tasks:     ts,
		grocery:   gs,
		jwtSecret: []byte(secretKey),
		db:        db,
	}
	s.engine = s.buildEngine()
	return s
}

// Handler returns the configured HTTP handler (used directly by tests).
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) buildEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders(common.AuthorizationHeader)
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.healthz)
	r.POST("/register", s.register)
	r.POST("/login", s.login)

	protected := r.Group("/")
	protected.Use(s.authenticate())
	protected.GET("/tasks", s.listTasks)
	protected.POST("/tasks", s.createTask)
	protected.PUT("/tasks/:id", s.updateTask)
	protected.DELETE("/tasks/:id", s.deleteTask)
	protected.GET("/grocery", s.listGrocery)
	protected.POST("/grocery", s.addGroceryItem)
	protected.DELETE("/grocery/:id", s.deleteGroceryItem)

	return r
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error(c.Request.Context(), "db ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
