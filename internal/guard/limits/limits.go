package limits

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/codex-k8s/ai-tools/internal/runtime/guard"
	"github.com/codex-k8s/ai-tools/internal/templates"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

// Store keeps a token bucket per known tool.
type Store struct {
	mu            sync.Mutex
	byTool        map[string]*rate.Limiter
	ratePerMinute int
	burst         int
	renderer      templates.Renderer
}

// New creates a limiter allowing ratePerMinute executions per tool with the
// given burst. A non-positive rate disables limiting.
func New(ratePerMinute, burst int, renderer templates.Renderer) *Store {
	if burst <= 0 {
		burst = ratePerMinute
	}
	return &Store{
		byTool:        make(map[string]*rate.Limiter),
		ratePerMinute: ratePerMinute,
		burst:         burst,
		renderer:      renderer,
	}
}

// Name returns the guard name for audit and logging.
func (s *Store) Name() string {
	return "limits"
}

// Check consumes a token for the tool. Unknown tools are not tracked.
func (s *Store) Check(_ context.Context, req guard.Request) (guard.Decision, error) {
	if s.ratePerMinute <= 0 {
		return guard.Decision{Allowed: true, Source: s.Name()}, nil
	}
	if _, ok := tool.Parse(req.ToolName); !ok {
		return guard.Decision{Allowed: true, Source: s.Name()}, nil
	}

	s.mu.Lock()
	limiter := s.byTool[req.ToolName]
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.ratePerMinute)), s.burst)
		s.byTool[req.ToolName] = limiter
	}
	s.mu.Unlock()

	if !limiter.Allow() {
		reason := templates.Message(s.renderer, templates.KeyRateLimit, map[string]any{"Tool": req.ToolName}, "Rate limit exceeded")
		return guard.Decision{Allowed: false, Reason: reason, Source: s.Name(), Code: guard.CodeRateLimited}, nil
	}
	return guard.Decision{Allowed: true, Source: s.Name()}, nil
}
