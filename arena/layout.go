package arena

import (
	"math"

	"github.com/dh1tw/opusbox/audio"
)

const (
	// MaxFrameSize is the largest frame in samples per channel: 60ms @ 48kHz.
	MaxFrameSize = 48000 * 60 / 1000
	// MaxPacketSize is the largest compressed packet in bytes.
	MaxPacketSize = 1276 * 3
)

// PCMLayout returns the layout needed by a session with the given amount of
// channels: PCM regions hold the largest frame of s16le samples, packet
// regions the largest packet. Channel counts whose PCM regions can not be
// represented result in a layout which New rejects with ErrInvalidLength.
func PCMLayout(channels int) Layout {
	pcm := -1
	if channels > 0 && channels <= math.MaxInt32/(MaxFrameSize*audio.SampleWidth) {
		pcm = MaxFrameSize * channels * audio.SampleWidth
	}
	var l Layout
	l[InputPCM] = pcm
	l[InputPacket] = MaxPacketSize
	l[OutputPacket] = MaxPacketSize
	l[OutputPCM] = pcm
	return l
}
