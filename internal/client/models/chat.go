package models

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrijs2005/jobtracker/internal/timex"
)

// Providers lists the LLM providers the backend can route chat and report
// requests to.
var Providers = []string{"ollama", "grok", "anthropic"}

// ValidateProvider checks that name is one of Providers.
func ValidateProvider(name string) error {
	allowed := make([]interface{}, len(Providers))
	for i, p := range Providers {
		allowed[i] = p
	}
	return validation.Validate(name, validation.Required, validation.In(allowed...))
}

// ChatAction is reported when the assistant changed an application's status.
type ChatAction struct {
	Company   string `json:"company"`
	NewStatus string `json:"new_status"`
}

type ChatResponse struct {
	Message     string            `json:"message"`
	ActionTaken *ChatAction       `json:"action_taken"`
	ContextUsed []json.RawMessage `json:"context_used"`
}

type ChatMessage struct {
	ID        int64           `json:"id"`
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	CreatedAt timex.Timestamp `json:"created_at"`
}
