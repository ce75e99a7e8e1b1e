// Package g711 implements the audiocodec.Codec boundary with ITU-T G.711
// µ-law. Every 16 bit sample is companded into one byte, so a packet holds
// exactly one byte per sample. The encoder accepts the usual control
// requests so that it can stand in for a transform codec, but µ-law has a
// fixed bitrate and the values do not influence the bitstream.
package g711

import (
	"github.com/dh1tw/opusbox/audiocodec"
)

// Codec is the G.711 µ-law implementation of audiocodec.Codec. It is
// implemented in pure Go and needs no cgo.
type Codec struct {
	audiocodec.Heap
}

// New returns a µ-law codec. heapLimit caps the memory which can be
// allocated through Malloc; 0 disables the limit.
func New(heapLimit int) *Codec {
	c := &Codec{}
	c.Heap.Limit = heapLimit
	return c
}

// Name returns the name of the audio codec
func (c *Codec) Name() string {
	return "g711"
}

// Destroy invalidates an encoder or decoder handle.
func (c *Codec) Destroy(h audiocodec.Handle) {
	switch v := h.(type) {
	case *encoder:
		v.destroyed = true
	case *decoder:
		v.destroyed = true
	}
}
