// Package arena provides fixed size, reusable byte regions which are handed
// to a codec as input and output buffers. All regions of an Arena are carved
// out of a single allocation and are never resized.
package arena

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dh1tw/opusbox/audiocodec"
)

var (
	// ErrCapacityExceeded is returned when data does not fit into a region.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInvalidLength is returned for negative lengths or reads beyond the
	// capacity of a region.
	ErrInvalidLength = errors.New("invalid length")
	// ErrUseAfterRelease is returned for any access after Release.
	ErrUseAfterRelease = errors.New("use after release")
	// ErrForeignRegion is returned when a Region of another Arena is used.
	ErrForeignRegion = errors.New("region belongs to a different arena")
)

// RegionID names one of the regions of an Arena.
type RegionID int

const (
	InputPCM RegionID = iota
	InputPacket
	OutputPacket
	OutputPCM
	numRegions
)

func (id RegionID) String() string {
	switch id {
	case InputPCM:
		return "input pcm"
	case InputPacket:
		return "input packet"
	case OutputPacket:
		return "output packet"
	case OutputPCM:
		return "output pcm"
	}
	return fmt.Sprintf("region(%d)", int(id))
}

// Layout contains the capacity in bytes of each region.
type Layout [numRegions]int

// Size returns the total amount of bytes of the layout.
func (l Layout) Size() int {
	size := 0
	for _, n := range l {
		size += n
	}
	return size
}

// Region describes a part of an Arena. Regions are only valid for the
// Arena which issued them.
type Region struct {
	id     RegionID
	offset int
	length int
	owner  *Arena
}

// ID returns the name of the region.
func (r Region) ID() RegionID {
	return r.id
}

// Len returns the capacity of the region in bytes.
func (r Region) Len() int {
	return r.length
}

// Arena owns a slab of memory which is split into the regions of a Layout.
type Arena struct {
	sync.Mutex
	alloc    audiocodec.Allocator
	slab     []byte
	regions  [numRegions]Region
	released bool
}

// New allocates a single slab from alloc and carves the regions of layout
// out of it, in the order of their RegionID.
func New(alloc audiocodec.Allocator, layout Layout) (*Arena, error) {

	for id, n := range layout {
		if n <= 0 {
			return nil, fmt.Errorf("%v region of %d bytes: %w", RegionID(id), n, ErrInvalidLength)
		}
	}

	slab, err := alloc.Malloc(layout.Size())
	if err != nil {
		return nil, fmt.Errorf("arena of %d bytes: %w", layout.Size(), err)
	}

	a := &Arena{
		alloc: alloc,
		slab:  slab,
	}

	offset := 0
	for id, n := range layout {
		a.regions[id] = Region{
			id:     RegionID(id),
			offset: offset,
			length: n,
			owner:  a,
		}
		offset += n
	}

	return a, nil
}

// Region returns the descriptor of a region.
func (a *Arena) Region(id RegionID) Region {
	if id < 0 || id >= numRegions {
		return Region{id: id}
	}
	return a.regions[id]
}

// check must be called with the lock held.
func (a *Arena) check(r Region) error {
	if a.released {
		return ErrUseAfterRelease
	}
	if r.owner != a {
		return ErrForeignRegion
	}
	return nil
}

// Fits checks if n bytes can be written into r, without side effects.
func (a *Arena) Fits(r Region, n int) error {
	a.Lock()
	defer a.Unlock()

	if err := a.check(r); err != nil {
		return err
	}
	if n > r.length {
		return fmt.Errorf("%d bytes into %v region of %d bytes: %w", n, r.id, r.length, ErrCapacityExceeded)
	}
	return nil
}

// Write copies b into the beginning of region r and returns the amount of
// bytes written. Nothing is written if b does not fit into r.
func (a *Arena) Write(r Region, b []byte) (int, error) {
	a.Lock()
	defer a.Unlock()

	if err := a.check(r); err != nil {
		return 0, err
	}
	if len(b) > r.length {
		return 0, fmt.Errorf("%d bytes into %v region of %d bytes: %w", len(b), r.id, r.length, ErrCapacityExceeded)
	}
	return copy(a.slab[r.offset:r.offset+r.length], b), nil
}

// Read returns a view of the first n bytes of region r. The view is only
// valid until the region is written again or the arena is released.
func (a *Arena) Read(r Region, n int) ([]byte, error) {
	a.Lock()
	defer a.Unlock()

	if err := a.check(r); err != nil {
		return nil, err
	}
	if n < 0 || n > r.length {
		return nil, fmt.Errorf("read %d bytes from %v region of %d bytes: %w", n, r.id, r.length, ErrInvalidLength)
	}
	return a.slab[r.offset : r.offset+n : r.offset+n], nil
}

// Scratch returns a view of the complete region r, typically handed to a
// codec as output buffer.
func (a *Arena) Scratch(r Region) ([]byte, error) {
	a.Lock()
	defer a.Unlock()

	if err := a.check(r); err != nil {
		return nil, err
	}
	return a.slab[r.offset : r.offset+r.length : r.offset+r.length], nil
}

// Release returns the slab to the allocator. All regions become invalid.
func (a *Arena) Release() error {
	a.Lock()
	defer a.Unlock()

	if a.released {
		return ErrUseAfterRelease
	}
	a.released = true
	a.alloc.Free(a.slab)
	a.slab = nil
	return nil
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	a.Lock()
	defer a.Unlock()
	return a.released
}
