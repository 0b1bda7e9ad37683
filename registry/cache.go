package registry

import (
	"context"
	"sync"
)

// CachedLoader loads a registry once and hands out the same instance after.
//
// Thread safety: Load may be called from multiple goroutines. Concurrent
// callers wait for a single in-flight load. Errors are not cached.
type CachedLoader struct {
	src Source

	mu  sync.Mutex
	reg *Registry
}

// NewCachedLoader wraps src
func NewCachedLoader(src Source) *CachedLoader {
	return &CachedLoader{src: src}
}

// Load returns the cached registry, loading it on first use
func (l *CachedLoader) Load(ctx context.Context) (*Registry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.reg != nil {
		return l.reg, nil
	}
	reg, err := l.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	l.reg = reg
	return reg, nil
}

// Reset drops the cached registry so the next Load rereads the asset
func (l *CachedLoader) Reset() {
	l.mu.Lock()
	l.reg = nil
	l.mu.Unlock()
}
