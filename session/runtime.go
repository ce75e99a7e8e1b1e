package session

import (
	"context"
	"sync"

	"github.com/dh1tw/opusbox/audiocodec"
)

// Loader initializes a codec. It may take a while, e.g. when a codec
// module has to be compiled or loaded first.
type Loader func(ctx context.Context) (audiocodec.Codec, error)

// Runtime is the initialization handle of a codec. Sessions are created
// from a Runtime and can only be created once the Runtime is ready.
type Runtime struct {
	sync.RWMutex
	ready chan struct{}
	codec audiocodec.Codec
	err   error
}

// NewRuntime returns a Runtime which is immediately ready.
func NewRuntime(codec audiocodec.Codec) *Runtime {
	r := &Runtime{
		ready: make(chan struct{}),
		codec: codec,
	}
	close(r.ready)
	return r
}

// LoadRuntime runs the loader in the background. The returned Runtime
// becomes ready once the loader has returned.
func LoadRuntime(ctx context.Context, load Loader) *Runtime {
	r := &Runtime{
		ready: make(chan struct{}),
	}

	go func() {
		codec, err := load(ctx)
		r.Lock()
		r.codec = codec
		r.err = err
		r.Unlock()
		close(r.ready)
	}()

	return r
}

// Ready returns a channel which is closed once the runtime has finished
// loading, successfully or not.
func (r *Runtime) Ready() <-chan struct{} {
	return r.ready
}

// Wait blocks until the runtime is ready or ctx is done.
func (r *Runtime) Wait(ctx context.Context) error {
	select {
	case <-r.ready:
		r.RLock()
		defer r.RUnlock()
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Codec returns the loaded codec. ErrNotReady is returned while the
// runtime is still loading.
func (r *Runtime) Codec() (audiocodec.Codec, error) {
	select {
	case <-r.ready:
	default:
		return nil, ErrNotReady
	}

	r.RLock()
	defer r.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.codec == nil {
		return nil, ErrNotReady
	}
	return r.codec, nil
}
