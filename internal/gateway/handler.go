package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/AliZeynalov/decision-arena/internal/models"
	"github.com/AliZeynalov/decision-arena/internal/provider"
	"github.com/AliZeynalov/decision-arena/internal/validator"
)

// Runner is the orchestrator surface the HTTP layer depends on.
// *arena.Orchestrator is the production implementation.
type Runner interface {
	Run(ctx context.Context, problem string, risk models.RiskMode, depth int) (report string, meta string, err error)
}

// Handler handles HTTP requests for the arena.
type Handler struct {
	runner Runner
}

// NewHandler creates a new Handler.
func NewHandler(r Runner) *Handler {
	return &Handler{runner: r}
}

// RunArena handles POST /v1/arena/runs.
func (h *Handler) RunArena(c *gin.Context) {
	requestID := c.GetString("request_id")
	start := time.Now()

	var req models.ArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "parse_error",
		}).Warn("Failed to parse request body")

		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"type":    "invalid_request",
				"message": "Failed to parse request body: " + err.Error(),
			},
		})
		return
	}

	if err := validator.ValidateRequest(&req); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "validation_failed",
		}).Warn("Request validation failed")

		var verrs *validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"type":    "validation_error",
					"message": "Request validation failed",
					"details": verrs.Errors,
				},
			})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"type":    "validation_error",
				"message": err.Error(),
			},
		})
		return
	}

	report, meta, err := h.runner.Run(c.Request.Context(), req.Problem, models.RiskMode(req.RiskMode), req.Depth)
	if err != nil {
		h.respondRunError(c, requestID, err)
		return
	}

	result := models.ArenaResponse{
		RequestID:      requestID,
		Report:         report,
		Meta:           meta,
		TotalLatencyMs: time.Since(start).Milliseconds(),
		CreatedAt:      time.Now(),
	}

	log.WithFields(log.Fields{
		"request_id": requestID,
		"latency_ms": result.TotalLatencyMs,
		"event":      "run_success",
	}).Info("Arena run successful")

	c.JSON(http.StatusOK, result)
}

// respondRunError maps orchestration failures onto HTTP statuses: exhausted
// fallbacks are the backend's fault (502), a missing credential is ours (500).
func (h *Handler) respondRunError(c *gin.Context, requestID string, err error) {
	log.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"event":      "run_error",
	}).Error("Arena run failed")

	var cfgErr *provider.ConfigurationError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"type":    "configuration_error",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"error": gin.H{
			"type":    "provider_error",
			"message": "Provider error: " + err.Error(),
		},
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "decision-arena",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
