package models

import "time"

// ArenaRequest represents an incoming run request from the HTTP surface.
type ArenaRequest struct {
	Problem  string `json:"problem"`
	RiskMode string `json:"risk_mode" validate:"required,oneof='Low risk' 'Balanced' 'High conviction'"`
	Depth    int    `json:"depth" validate:"required,min=1,max=5"`
}

// ArenaResponse represents the final response to the client.
type ArenaResponse struct {
	RequestID      string    `json:"request_id"`
	Report         string    `json:"report"`
	Meta           string    `json:"meta"`
	TotalLatencyMs int64     `json:"total_latency_ms"`
	CreatedAt      time.Time `json:"created_at"`
}
