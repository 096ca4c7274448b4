package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/analysis"
	"github.com/fitcoach-io/fitcoach/internal/auth"
	"github.com/fitcoach-io/fitcoach/internal/checkout"
	"github.com/fitcoach-io/fitcoach/internal/coach"
	"github.com/fitcoach-io/fitcoach/internal/config"
	"github.com/fitcoach-io/fitcoach/internal/diet"
	"github.com/fitcoach-io/fitcoach/internal/storage"
	"github.com/fitcoach-io/fitcoach/internal/store"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
)

// Deps are the collaborators the API is wired with. Nil analysis
// collaborators fall back to the simulated implementations.
type Deps struct {
	Store     *store.Store
	Objects   storage.ObjectStore
	Analyzer  analysis.BodyAnalyzer
	Extractor analysis.DietExtractor
	Videos    analysis.VideoFinder
	Processor checkout.Processor
}

type Api struct {
	Config config.Config
	Router *chi.Mux

	store     *store.Store
	objects   storage.ObjectStore
	analyzer  analysis.BodyAnalyzer
	extractor analysis.DietExtractor
	videos    analysis.VideoFinder
	tokens    *auth.TokenManager
	auth      *auth.Service
	diet      *diet.Service
	checkout  *checkout.Service
	coach     *coach.Selector
	now       func() time.Time
}

func NewApi(cfg config.Config, deps Deps) (*Api, error) {
	if cfg.APIPort == 0 {
		return nil, errors.New("Must have at least a port to start API")
	}
	if deps.Store == nil {
		return nil, errors.New("a store is required")
	}

	if deps.Objects == nil {
		deps.Objects = storage.InlineStore{}
	}
	if deps.Analyzer == nil {
		deps.Analyzer = analysis.SimulatedBodyAnalyzer{Delay: cfg.Simulation.AnalysisDelay}
	}
	if deps.Extractor == nil {
		deps.Extractor = analysis.SimulatedDietExtractor{Delay: cfg.Simulation.AnalysisDelay}
	}
	if deps.Videos == nil {
		deps.Videos = analysis.StaticVideoFinder{URL: analysis.DemoVideoURL}
	}
	if deps.Processor == nil {
		deps.Processor = checkout.SimulatedProcessor{Delay: cfg.Simulation.PaymentDelay}
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	api := &Api{
		Config:    cfg,
		Router:    chi.NewRouter(),
		store:     deps.Store,
		objects:   deps.Objects,
		analyzer:  deps.Analyzer,
		extractor: deps.Extractor,
		videos:    deps.Videos,
		tokens:    tokens,
		auth:      auth.NewService(deps.Store, tokens),
		diet:      diet.NewService(deps.Store),
		checkout:  checkout.NewService(deps.Store, deps.Store, deps.Processor),
		coach:     coach.NewSelector(),
		now:       time.Now,
	}

	api.setupRoutes()
	return api, nil
}

func (api *Api) setupRoutes() {
	r := api.Router

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   api.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/heartbeat"))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("not found: %s %s", r.Method, r.URL.Path)
		writeError(w, http.StatusNotFound, fmt.Sprintf("path not found: %s", r.URL.Path))
	})

	r.Post("/auth/register", api.RegisterHandler)
	r.Post("/auth/login", api.LoginHandler)
	r.Get("/plans", api.CatalogHandler)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(api.tokens))
		r.Use(api.loadUser)

		r.Get("/me", api.MeHandler)
		r.Put("/me/profile", api.UpdateProfileHandler)
		r.Post("/me/photo", api.ProfilePhotoHandler)

		r.Get("/subscription", api.SubscriptionHandler)
		r.Post("/subscription/downgrade", api.DowngradeHandler)

		r.Post("/checkout", api.StartCheckoutHandler)
		r.Post("/checkout/pay", api.PayHandler)
		r.Delete("/checkout", api.AbandonCheckoutHandler)

		r.Post("/plans/generate", api.GeneratePlansHandler)

		r.Get("/diet", api.DietHandler)
		r.Post("/diet/extract", api.ExtractDietHandler)
		r.Group(func(r chi.Router) {
			r.Use(api.requireEntitlement("diet_edit", subscription.HasActiveSubscription))
			r.Post("/diet/meals/edit", api.EditMealHandler)
			r.Post("/diet/meals/reshape", api.ReshapeHandler)
			r.Post("/diet/chat", api.DietChatHandler)
		})

		r.With(api.requireEntitlement("body_analysis", subscription.CanAccessAI)).
			Post("/body-analysis", api.BodyAnalysisHandler)
		r.Get("/body-analysis", api.LatestBodyAnalysisHandler)

		r.Get("/workout", api.WorkoutHandler)
		r.Get("/workout/progress", api.WorkoutProgressHandler)
		r.Put("/workout/progress", api.UpdateWorkoutProgressHandler)
		r.Get("/exercises/{name}/video", api.ExerciseVideoHandler)

		r.With(api.requireEntitlement("supplement_consultation", subscription.CanConsultSupplement)).
			Post("/coach/questions", api.CoachHandler)
	})
}

// Serve runs the HTTP server and the usage sweep until ctx is cancelled.
func (api *Api) Serve(ctx context.Context) error {
	go api.runSweeps(ctx, api.Config.Jobs.UsageRolloverInterval)

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", api.Config.APIPort),
		Handler:           api.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting API server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("Shutting down API server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (api *Api) runSweeps(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Hour
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		if _, err := subscription.Sweep(ctx, api.store, api.now()); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("usage sweep failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
