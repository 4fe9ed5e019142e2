package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/discovery"
	"github.com/sells-group/prospect-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API for automation callers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPipeline(ctx, true)
		if err != nil {
			return err
		}
		defer env.Close()

		r := newRouter(env)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func newRouter(env *pipelineEnv) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/discover", func(w http.ResponseWriter, req *http.Request) {
		var body discovery.Request
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if body.Industry == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "industry is required"})
			return
		}

		companies := env.Pipeline.Discovery.Discover(req.Context(), body)
		writeJSON(w, http.StatusOK, map[string]any{"companies": companies})
	})

	r.Post("/contacts", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Companies []model.Company `json:"companies"`
			Roles     []string        `json:"roles"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if len(body.Companies) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "companies is required"})
			return
		}
		roles := body.Roles
		if len(roles) == 0 {
			roles = cfg.Contacts.Roles
		}

		companies := env.Pipeline.Resolver.Resolve(req.Context(), body.Companies, roles)
		writeJSON(w, http.StatusOK, map[string]any{"companies": companies})
	})

	r.Post("/pipeline", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			discovery.Request
			Roles []string `json:"roles"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if body.Industry == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "industry is required"})
			return
		}
		roles := body.Roles
		if len(roles) == 0 {
			roles = cfg.Contacts.Roles
		}

		result, err := env.Pipeline.Run(req.Context(), body.Request, roles)
		if err != nil {
			zap.L().Error("pipeline request failed", zap.Error(err))
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode response", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
