package session

import (
	"errors"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/dh1tw/opusbox/audiocodec/g711"
)

// countingCodec wraps the g711 codec, counts all calls which cross the
// codec boundary and allows failures to be injected.
type countingCodec struct {
	*g711.Codec
	calls             int
	failEncoderCreate bool
	failDecoderCreate bool
	destroyed         []audiocodec.Handle
}

func newCountingCodec() *countingCodec {
	return &countingCodec{Codec: g711.New(0)}
}

func (c *countingCodec) CreateEncoder(sr, chs int, app audiocodec.Application) (audiocodec.Handle, error) {
	if c.failEncoderCreate {
		return nil, audiocodec.Status(audiocodec.StatusAllocationFailure)
	}
	return c.Codec.CreateEncoder(sr, chs, app)
}

func (c *countingCodec) CreateDecoder(sr, chs int) (audiocodec.Handle, error) {
	if c.failDecoderCreate {
		return nil, errors.New("no decoder available")
	}
	return c.Codec.CreateDecoder(sr, chs)
}

func (c *countingCodec) Encode(h audiocodec.Handle, pcm []byte, sampleCount int, out []byte, frameSize int) int {
	c.calls++
	return c.Codec.Encode(h, pcm, sampleCount, out, frameSize)
}

func (c *countingCodec) Decode(h audiocodec.Handle, packet []byte, out []byte) int {
	c.calls++
	return c.Codec.Decode(h, packet, out)
}

func (c *countingCodec) EncoderCtl(h audiocodec.Handle, id, value int) int {
	c.calls++
	return c.Codec.EncoderCtl(h, id, value)
}

func (c *countingCodec) DecoderCtl(h audiocodec.Handle, id, value int) int {
	c.calls++
	return c.Codec.DecoderCtl(h, id, value)
}

func (c *countingCodec) Destroy(h audiocodec.Handle) {
	c.destroyed = append(c.destroyed, h)
	c.Codec.Destroy(h)
}
