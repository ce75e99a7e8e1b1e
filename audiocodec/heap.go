package audiocodec

import (
	"fmt"
	"sync"
)

// MaxAllocationSize is the largest single allocation a Heap hands out,
// independent of its Limit.
const MaxAllocationSize = 64 << 20

// Heap implements the Allocator primitives on top of the Go heap and keeps
// track of the outstanding allocations. A zero Heap has no size limit.
// Codec backends embed a Heap to satisfy the Allocator interface.
type Heap struct {
	sync.Mutex
	Limit int // maximum number of live bytes; 0 means unlimited
	live  map[*byte]int
	bytes int
}

// Malloc reserves size bytes.
func (h *Heap) Malloc(size int) ([]byte, error) {
	h.Lock()
	defer h.Unlock()

	if size <= 0 {
		return nil, fmt.Errorf("malloc %d bytes: %w", size, Status(StatusBadArg))
	}

	if size > MaxAllocationSize || (h.Limit > 0 && h.bytes+size > h.Limit) {
		return nil, fmt.Errorf("malloc %d bytes: %w", size, Status(StatusAllocationFailure))
	}

	if h.live == nil {
		h.live = make(map[*byte]int)
	}

	buf := make([]byte, size)
	h.live[&buf[0]] = size
	h.bytes += size
	return buf, nil
}

// Free returns a buffer obtained from Malloc. Unknown buffers are ignored.
func (h *Heap) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	h.Lock()
	defer h.Unlock()

	size, ok := h.live[&buf[0]]
	if !ok {
		return
	}
	delete(h.live, &buf[0])
	h.bytes -= size
}

// InUse returns the number of live allocations and their total size.
func (h *Heap) InUse() (allocations int, bytes int) {
	h.Lock()
	defer h.Unlock()
	return len(h.live), h.bytes
}
