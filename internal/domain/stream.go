package domain

import "github.com/google/uuid"

// StreamAnalysisRequested - Redis stream с событиями пересчета анализа.
const StreamAnalysisRequested = "analysis:requested"

// Причины запроса пересчета.
const (
	ReasonBoundaryChanged = "boundary_changed"
	ReasonManualRefresh   = "manual_refresh"
	ReasonProjectCreated  = "project_created"
)

// AnalysisRequestedEvent - событие запроса пересчета анализа проекта.
// Пустой список Modules означает "все зарегистрированные модули".
type AnalysisRequestedEvent struct {
	ProjectID uuid.UUID `json:"project_id"`
	Modules   []string  `json:"modules,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// StreamMessage - сообщение из Redis stream.
type StreamMessage struct {
	ID     string
	Values map[string]interface{}
}

// Payload возвращает полезную нагрузку сообщения (поле "payload").
func (m StreamMessage) Payload() (string, bool) {
	v, ok := m.Values["payload"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
