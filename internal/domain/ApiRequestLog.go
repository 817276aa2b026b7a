package domain

import (
	"encoding/json"
	"time"
)

// ApiRequestLog registra o resultado de uma chamada externa a um provider.
// Uma linha por chamada de adapter, sucesso ou falha; append-only
type ApiRequestLog struct {
	ID              int64           `json:"id"`
	Provider        Provider        `json:"provider"`
	AccountID       string          `json:"account_id"`
	Endpoint        string          `json:"endpoint"`
	Method          string          `json:"method"`
	StatusCode      int             `json:"status_code"`
	DurationMs      int64           `json:"duration_ms"`
	ResponseSummary json.RawMessage `json:"response_summary,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
