//go:build !js || !wasm

package dom

import (
	"log/slog"

	"github.com/guruhq/landing/scrollstep"
)

// Binding is a mounted section (stub for non-WASM builds).
type Binding struct{}

// MountAll is only available in WASM builds.
func MountAll(_ scrollstep.Config, _ *slog.Logger) ([]*Binding, error) {
	return nil, ErrUnsupported
}

// Close is a no-op outside WASM builds.
func (b *Binding) Close() {}
