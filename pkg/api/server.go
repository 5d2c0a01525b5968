// Package api exposes the directory over HTTP. Route groups follow a
// Register pattern: each API struct owns a router slice and its
// service dependencies.
package api

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/altdir/altdir/pkg/auth"
	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/payment"
	"github.com/altdir/altdir/pkg/workflow"
)

// Server wires the route groups onto a fiber app.
type Server struct {
	DB       *db.DB
	Auth     *auth.Service
	Payments *payment.Service
	Backlink workflow.BacklinkVerifier
	Logger   *slog.Logger

	flows *flowRegistry
}

func NewServer(database *db.DB, authSvc *auth.Service, payments *payment.Service, backlink workflow.BacklinkVerifier, logger *slog.Logger) *Server {
	return &Server{
		DB:       database,
		Auth:     authSvc,
		Payments: payments,
		Backlink: backlink,
		Logger:   logger,
		flows:    newFlowRegistry(),
	}
}

// Register mounts every route group under /api.
func (s *Server) Register(app *fiber.App) {
	router := app.Group("/api")

	taxonomy := &TaxonomyAPI{Router: router, DB: s.DB}
	taxonomy.Register()

	authAPI := &AuthAPI{Router: router, DB: s.DB, Auth: s.Auth}
	authAPI.Register()

	submissions := &SubmissionAPI{
		Router:   router,
		DB:       s.DB,
		Auth:     s.Auth,
		Backlink: s.Backlink,
		Flows:    s.flows,
		Logger:   s.Logger,
	}
	submissions.Register()

	payments := &PaymentAPI{
		Router:   router,
		DB:       s.DB,
		Auth:     s.Auth,
		Payments: s.Payments,
		Flows:    s.flows,
	}
	payments.Register()
}

// flowRegistry holds one in-progress submission flow per user.
// Workflow flows are not concurrency-safe, so every handler touching a
// flow runs under the registry lock.
type flowRegistry struct {
	mu    sync.Mutex
	flows map[string]*workflow.Flow
}

func newFlowRegistry() *flowRegistry {
	return &flowRegistry{flows: make(map[string]*workflow.Flow)}
}

// with runs fn against the user's flow, creating it on first use.
func (r *flowRegistry) with(store workflow.Store, userID string, fn func(*workflow.Flow) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[userID]
	if !ok {
		flow = workflow.New(store, userID)
		r.flows[userID] = flow
	}
	return fn(flow)
}

// drop forgets a user's flow, used after a terminal submission.
func (r *flowRegistry) drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, userID)
}
