package audio

// AdjustChannels converts interleaved audio frames between mono and stereo.
// Other channel combinations are down- or upmixed by copying the first
// channel.
func AdjustChannels(iChs, oChs int, audioFrames []float32) []float32 {

	if iChs == oChs {
		return audioFrames
	}

	frames := len(audioFrames) / iChs

	// stereo -> mono
	if iChs == 2 && oChs == 1 {
		res := make([]float32, 0, frames)
		// average both channels
		for i := 0; i < len(audioFrames)-1; i += 2 {
			res = append(res, (audioFrames[i]+audioFrames[i+1])/2)
		}
		return res
	}

	res := make([]float32, 0, frames*oChs)
	for i := 0; i < frames; i++ {
		// left channel = right channel
		for ch := 0; ch < oChs; ch++ {
			res = append(res, audioFrames[i*iChs])
		}
	}
	return res
}

// AdjustVolume scales all samples in place.
func AdjustVolume(volume float32, audioFrames []float32) {
	for i := 0; i < len(audioFrames); i++ {
		audioFrames[i] *= volume
	}
}
