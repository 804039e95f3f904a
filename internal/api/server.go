package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	app "delta-detect/internal/application"
	"delta-detect/internal/domain/entity"
	"delta-detect/internal/domain/port"
)

// DefaultConfidence is applied when a request omits min_confidence.
const DefaultConfidence = 0.5

// DetectionRequest is the body of POST /detect.
type DetectionRequest struct {
	Image              string  `json:"image"` // base64, optional data-URL prefix
	ColorblindnessType string  `json:"colorblindness_type"`
	MinConfidence      float64 `json:"min_confidence"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Server is the HTTP transport in front of the analysis pipeline.
type Server struct {
	analysis      *app.AnalysisService
	engine        port.InferenceEngine
	decoder       port.FrameDecoder
	minConfidence float64
	log           *logrus.Logger
}

// NewServer creates the transport. minConfidence is the fallback for
// requests that omit min_confidence; values at or below zero use
// DefaultConfidence.
func NewServer(analysis *app.AnalysisService, engine port.InferenceEngine, decoder port.FrameDecoder, minConfidence float64, log *logrus.Logger) *Server {
	if minConfidence <= 0 {
		minConfidence = DefaultConfidence
	}
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		analysis:      analysis,
		engine:        engine,
		decoder:       decoder,
		minConfidence: minConfidence,
		log:           log,
	}
}

// Routes returns the handler with all endpoints and CORS applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect", s.handleDetect)
	mux.HandleFunc("/health", s.handleHealth)
	return corsMiddleware(mux)
}

// handleDetect runs the pipeline for one frame.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DetectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	data, err := decodeBase64Image(req.Image)
	if err != nil {
		respondError(w, "Invalid image encoding", http.StatusBadRequest)
		return
	}

	frame, err := s.decoder.Decode(data)
	if err != nil {
		respondError(w, "Failed to decode image", http.StatusBadRequest)
		return
	}

	profile := entity.ParseProfile(req.ColorblindnessType)
	minConfidence := req.MinConfidence
	if minConfidence <= 0 {
		minConfidence = s.minConfidence
	}

	result, err := s.analysis.Analyze(r.Context(), frame, profile, minConfidence)
	if err != nil {
		s.log.WithError(err).Error("detection failed")
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, result, http.StatusOK)
}

// handleHealth reports service and model readiness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, HealthResponse{
		Status:      "healthy",
		ModelLoaded: s.engine != nil && s.engine.IsLoaded(),
	}, http.StatusOK)
}

// decodeBase64Image strips a data-URL prefix if present and decodes
// the payload.
func decodeBase64Image(s string) ([]byte, error) {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[i+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}

// corsMiddleware adds permissive CORS headers.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}
