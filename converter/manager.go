package converter

import (
	"fmt"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"
)

// Manager binds each Method to its backend through a static table and
// applies the fallback chain: a requested backend whose availability probe
// fails is substituted with the embed converter, which is always available.
type Manager struct {
	backends map[Method]Converter
	fallback Converter
}

// NewManager creates a manager with the full backend set registered
func NewManager() *Manager {
	embed := NewEmbedConverter()
	return &Manager{
		backends: map[Method]Converter{
			MethodAutotrace:  NewAutotraceConverter(),
			MethodPotrace:    NewPotraceConverter(),
			MethodEmbed:      embed,
			MethodAspose:     NewAsposeConverter(),
			MethodConvertAPI: NewConvertAPIConverter(),
		},
		fallback: embed,
	}
}

// newManager builds a manager over an explicit backend table, used in tests
func newManager(backends map[Method]Converter, fallback Converter) *Manager {
	return &Manager{backends: backends, fallback: fallback}
}

// Resolve returns the backend for the method, substituting the embed
// fallback when the backend's availability probe fails
func (m *Manager) Resolve(method Method) (Converter, error) {
	backend, ok := m.backends[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	if !backend.IsAvailable() {
		logger.Warnf("%s is not available, falling back to %s", backend.Name(), m.fallback.Name())
		return m.fallback, nil
	}

	return backend, nil
}

// Converters returns the registered backends in method order
func (m *Manager) Converters() []Converter {
	return lo.Map(Methods(), func(method Method, _ int) Converter {
		return m.backends[method]
	})
}

// Available returns the names of backends whose probe currently passes
func (m *Manager) Available() []string {
	return lo.FilterMap(m.Converters(), func(c Converter, _ int) (string, bool) {
		return c.Name(), c.IsAvailable()
	})
}
