// mock-provider is a stand-in for the Groq API used to exercise the fallback
// dispatcher locally. Point the arena at it with
// GROQ_BASE_URL=http://localhost:8001/v1 and list models that should fail in
// MOCK_FAIL_MODELS (comma separated). Per-request failures can also be forced
// with ?fail=429|500|502|503.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

var failModels map[string]struct{}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	failModels = make(map[string]struct{})
	for _, m := range strings.Split(os.Getenv("MOCK_FAIL_MODELS"), ",") {
		if m = strings.TrimSpace(m); m != "" {
			failModels[m] = struct{}{}
		}
	}

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "8001"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/v1/chat/completions", handleChatCompletion)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	log.Infof("Mock completion provider starting on :%s (failing models: %d)", port, len(failModels))
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func handleChatCompletion(c *gin.Context) {
	if delay := c.Query("delay"); delay != "" {
		if ms, err := strconv.Atoi(delay); err == nil && ms > 0 {
			time.Sleep(time.Duration(ms) * time.Millisecond)
		}
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError("invalid_request_error", "could not parse request: "+err.Error()))
		return
	}

	log.WithFields(log.Fields{
		"model":       req.Model,
		"messages":    len(req.Messages),
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}).Info("Received completion request")

	if fail := c.Query("fail"); fail != "" {
		respondFailure(c, fail)
		return
	}
	if _, bad := failModels[req.Model]; bad {
		log.Warnf("Simulating outage for model %s", req.Model)
		c.JSON(http.StatusServiceUnavailable, apiError("server_error", "model "+req.Model+" is temporarily unavailable"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      fmt.Sprintf("mock-%d", rand.Intn(100000)),
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   req.Model,
		"choices": []gin.H{
			{
				"index": 0,
				"message": gin.H{
					"role":    "assistant",
					"content": cannedText(req),
				},
				"finish_reason": "stop",
			},
		},
		"usage": gin.H{
			"prompt_tokens":     10,
			"completion_tokens": 15,
			"total_tokens":      25,
		},
	})
}

func respondFailure(c *gin.Context, failType string) {
	log.Warnf("Simulating failure: %s", failType)

	switch failType {
	case "429":
		c.JSON(http.StatusTooManyRequests, apiError("rate_limit_error", "Rate limit exceeded. Please retry after some time."))
	case "500":
		c.JSON(http.StatusInternalServerError, apiError("server_error", "Internal server error"))
	case "502":
		c.JSON(http.StatusBadGateway, apiError("server_error", "Bad gateway"))
	case "503":
		c.JSON(http.StatusServiceUnavailable, apiError("server_error", "Service temporarily unavailable"))
	default:
		if code, err := strconv.Atoi(failType); err == nil && code >= 400 && code < 600 {
			c.JSON(code, apiError("simulated_error", fmt.Sprintf("Simulated error %d", code)))
			return
		}
		c.JSON(http.StatusInternalServerError, apiError("server_error", "Unknown failure type"))
	}
}

func apiError(errType, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"type":    errType,
			"message": message,
		},
	}
}

// cannedText answers with a response that names the persona found in the
// system messages, so arena reports assembled against the mock read sensibly.
func cannedText(req chatRequest) string {
	for _, m := range req.Messages {
		if m.Role != "system" {
			continue
		}
		if rest, ok := strings.CutPrefix(m.Content, "You are Agent: "); ok {
			name, _, _ := strings.Cut(rest, ".")
			return fmt.Sprintf("Mock %s response for model %s.\n- point one\n- point two", name, req.Model)
		}
	}
	return "Mock response from model " + req.Model + "."
}
