// Command server exposes the genetic-algorithm fitter over HTTP.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/g960059/circleheart/config"
	"github.com/g960059/circleheart/internal/optimize"
	"github.com/g960059/circleheart/internal/params"
)

// targetSpec is one entry of the optimize request's target_metrics list.
type targetSpec struct {
	Value  float64 `json:"value"`
	Key    string  `json:"key"`
	Weight float64 `json:"weight"`
}

// paramUpdate mirrors params.ParameterSet.Update's nil-means-unchanged
// field semantics over the wire.
type paramUpdate struct {
	Value   *float64 `json:"value,omitempty"`
	Lo      *float64 `json:"lo,omitempty"`
	Hi      *float64 `json:"hi,omitempty"`
	Fitting *bool    `json:"fitting,omitempty"`
}

type optimizeRequest struct {
	TargetMetrics []targetSpec           `json:"target_metrics"`
	ParamUpdates  map[string]paramUpdate `json:"param_updates"`
	NumRepeats    int                    `json:"num_repeats"`
}

type optimizeResponse struct {
	BestParameters map[string]float64 `json:"best_parameters"`
	BestFitness    float64            `json:"best_fitness"`
}

func handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	targets := make([]optimize.Target, len(req.TargetMetrics))
	for i, t := range req.TargetMetrics {
		targets[i] = optimize.Target{Value: t.Value, Key: t.Key, Weight: t.Weight}
	}

	overrides := make(map[string]optimize.ParamOverride, len(req.ParamUpdates))
	for name, u := range req.ParamUpdates {
		overrides[name] = optimize.ParamOverride{Value: u.Value, Lo: u.Lo, Hi: u.Hi, Fitting: u.Fitting}
	}

	best, fitness, err := optimize.RunOptimization(targets, overrides, req.NumRepeats)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, optimize.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	resp := optimizeResponse{BestParameters: best.Values(), BestFitness: fitness}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode optimize response: %v", err)
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleCatalog(w http.ResponseWriter, r *http.Request) {
	ps := params.New()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ps.Values()); err != nil {
		log.Printf("failed to encode catalog response: %v", err)
	}
}

func main() {
	configPath := os.Getenv("CONFIG")
	if err := config.Init(configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	port := cfg.Server.Port
	if env := os.Getenv("PORT"); env != "" {
		p, err := strconv.Atoi(env)
		if err != nil {
			log.Fatalf("invalid PORT %q: %v", env, err)
		}
		port = p
	}

	readTimeout, err := time.ParseDuration(cfg.Server.ReadTimeout)
	if err != nil {
		log.Fatalf("invalid server.read_timeout %q: %v", cfg.Server.ReadTimeout, err)
	}
	writeTimeout, err := time.ParseDuration(cfg.Server.WriteTimeout)
	if err != nil {
		log.Fatalf("invalid server.write_timeout %q: %v", cfg.Server.WriteTimeout, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealthz)
	mux.HandleFunc("/catalog", handleCatalog)
	mux.HandleFunc("/optimize", handleOptimize)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	log.Printf("starting server on port %d", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
