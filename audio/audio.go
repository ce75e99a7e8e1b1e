package audio

// Msg contains an interleaved audio buffer with its metadata. Samples are
// normalized to the range [-1, 1].
type Msg struct {
	Data       []float32
	Samplerate float64
	Channels   int
	Frames     int  // Number of Frames in the buffer
	EOF        bool // End of File
}

// Duration returns the length of the buffer in seconds.
func (m Msg) Duration() float64 {
	if m.Samplerate == 0 {
		return 0
	}
	return float64(m.Frames) / m.Samplerate
}
