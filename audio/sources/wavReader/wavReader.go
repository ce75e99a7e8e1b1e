package wavReader

import (
	"errors"
	"fmt"
	"os"

	"github.com/dh1tw/opusbox/audio"
	ga "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
)

// ReadFile reads a PCM wav file from disk into memory. The samples of the
// returned audio.Msg are interleaved and normalized to [-1, 1].
func ReadFile(path string, opts ...Option) (audio.Msg, error) {

	f, err := os.Open(path)
	if err != nil {
		return audio.Msg{}, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)

	if !dec.IsValidFile() {
		return audio.Msg{}, errors.New("invalid WAV file")
	}

	options := Options{
		FramesPerBuffer: DefaultFramesPerBuffer,
	}

	for _, o := range opts {
		o(&options)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return audio.Msg{}, errors.New("invalid WAV format")
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return audio.Msg{}, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
	scale := float32(int64(1) << uint(bitDepth-1))

	buf := &ga.IntBuffer{
		Data:   make([]int, options.FramesPerBuffer*format.NumChannels),
		Format: format,
	}

	msg := audio.Msg{
		Channels:   format.NumChannels,
		Samplerate: float64(format.SampleRate),
		EOF:        true,
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return audio.Msg{}, err
		}

		if n == 0 {
			break
		}

		for _, s := range buf.Data[:n] {
			msg.Data = append(msg.Data, float32(s)/scale)
		}
	}

	msg.Frames = len(msg.Data) / msg.Channels

	return msg, nil
}
