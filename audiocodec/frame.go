package audiocodec

import "time"

// FrameDurations lists the frame durations an encoder accepts.
var FrameDurations = []time.Duration{
	2500 * time.Microsecond,
	5 * time.Millisecond,
	10 * time.Millisecond,
	20 * time.Millisecond,
	40 * time.Millisecond,
	60 * time.Millisecond,
}

// ValidFrameSize reports whether samples (per channel) at samplerate make
// up one of the FrameDurations.
func ValidFrameSize(samples, samplerate int) bool {
	if samples <= 0 || samplerate <= 0 {
		return false
	}
	// count in units of 2.5ms
	if (samples*400)%samplerate != 0 {
		return false
	}
	switch samples * 400 / samplerate {
	case 1, 2, 4, 8, 16, 24:
		return true
	}
	return false
}

// FrameSize returns the amount of samples per channel of a frame with the
// duration d at samplerate.
func FrameSize(d time.Duration, samplerate int) int {
	return int(int64(d) * int64(samplerate) / int64(time.Second))
}
