package audiocodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidFrameSize(t *testing.T) {

	for _, sr := range []int{8000, 12000, 16000, 24000, 48000} {
		for _, d := range FrameDurations {
			fs := FrameSize(d, sr)
			assert.True(t, ValidFrameSize(fs, sr), "%v @ %d Hz = %d samples", d, sr, fs)
		}
	}

	assert.Equal(t, 960, FrameSize(20*time.Millisecond, 48000))
	assert.Equal(t, 20, FrameSize(2500*time.Microsecond, 8000))

	assert.False(t, ValidFrameSize(0, 48000))
	assert.False(t, ValidFrameSize(-960, 48000))
	assert.False(t, ValidFrameSize(961, 48000))
	assert.False(t, ValidFrameSize(1440, 48000)) // 30ms
	assert.False(t, ValidFrameSize(3840, 48000)) // 80ms
	assert.False(t, ValidFrameSize(960, 0))
}
