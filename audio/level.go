package audio

import (
	"fmt"

	"github.com/chewxy/math32"
)

// RMS calculates the root mean square of an audio frame. All channel
// samples are taken into account.
func RMS(data []float32) (float32, error) {

	var sum float32

	if len(data) == 0 {
		return sum, fmt.Errorf("empty slice provided")
	}

	for _, el := range data {
		sum = sum + el*el
	}

	sum = sum / float32(len(data))

	return math32.Sqrt(sum), nil
}

// SNR returns the signal to noise ratio in dB of the processed signal
// compared to its reference. Only the overlapping part of both buffers is
// considered. Identical signals return +Inf.
func SNR(reference, processed []float32) (float32, error) {

	n := len(reference)
	if len(processed) < n {
		n = len(processed)
	}
	if n == 0 {
		return 0, fmt.Errorf("empty slice provided")
	}

	var signal, noise float32
	for i := 0; i < n; i++ {
		d := reference[i] - processed[i]
		signal += reference[i] * reference[i]
		noise += d * d
	}

	if noise == 0 {
		return math32.Inf(1), nil
	}
	if signal == 0 {
		return math32.Inf(-1), nil
	}

	return 10 * math32.Log10(signal/noise), nil
}
