package dialogue

import (
	"sync"

	pkgLog "test-data-assistant/pkg/log"
)

// Store holds per-thread conversation state in memory. It is shared by all
// in-flight requests and must be passed explicitly to its consumers.
type Store struct {
	l      pkgLog.Logger
	mu     sync.RWMutex
	states map[string]*ConversationState
}

// New creates an empty conversation state store.
func New(l pkgLog.Logger) *Store {
	return &Store{
		l:      l,
		states: make(map[string]*ConversationState),
	}
}
