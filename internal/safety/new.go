package safety

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "test-data-assistant/pkg/log"
)

const (
	cacheSize = 512
	cacheTTL  = 10 * time.Minute
)

// Filter classifies raw user input before it reaches the assistant.
type Filter struct {
	l     pkgLog.Logger
	cfg   Config
	cache *expirable.LRU[string, Result]
}

// New creates a new safety filter. Classification is a pure function of the
// input, so results are memoised in a bounded TTL cache.
func New(l pkgLog.Logger, cfg Config) *Filter {
	return &Filter{
		l:     l,
		cfg:   cfg,
		cache: expirable.NewLRU[string, Result](cacheSize, nil, cacheTTL),
	}
}
