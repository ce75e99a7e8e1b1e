// Package opus implements the audiocodec.Codec boundary on top of libopus.
// The libopus bindings are provided by gopkg.in/hraban/opus.v2 and therefore
// require cgo together with the libopus / libopusfile development headers.
package opus

import (
	"errors"

	"github.com/dh1tw/opusbox/audiocodec"
	opus "gopkg.in/hraban/opus.v2"
)

// Codec is the libopus backed implementation of audiocodec.Codec.
type Codec struct {
	audiocodec.Heap
	name    string
	options Options
}

// New is the constructor method for the opus codec boundary.
func New(opts ...Option) *Codec {

	c := &Codec{
		name: "opus",
		options: Options{
			MaxFrameSize: 48000 * 60 / 1000,
		},
	}

	for _, option := range opts {
		option(&c.options)
	}

	c.Heap.Limit = c.options.HeapLimit

	return c
}

// Name returns the name of the audio codec
func (c *Codec) Name() string {
	return c.name
}

// Options returns a copy of the codec's options
func (c *Codec) Options() Options {
	return c.options
}

// Destroy releases an encoder or decoder handle. Destroying a handle twice
// or a handle of a different codec has no effect.
func (c *Codec) Destroy(h audiocodec.Handle) {
	switch v := h.(type) {
	case *encoder:
		v.enc = nil
		v.scratch = nil
	case *decoder:
		v.dec = nil
		v.scratch = nil
	}
}

// status converts an error returned by the libopus bindings into a status
// code of the codec boundary.
func status(err error) int {
	if err == nil {
		return audiocodec.StatusOK
	}
	var oe opus.Error
	if errors.As(err, &oe) {
		return int(oe)
	}
	return audiocodec.StatusFromError(err)
}
