package opus

// Option is the type for a function option
type Option func(*Options)

// Options contains the parameters of the opus codec boundary.
type Options struct {
	// MaxFrameSize is the largest frame (samples per channel) the encoder
	// and decoder scratch buffers will be sized for.
	MaxFrameSize int
	// HeapLimit caps the bytes which can be allocated through Malloc.
	// A value of 0 disables the limit.
	HeapLimit int
}

// MaxFrameSize is a functional option to set the largest frame (in samples
// per channel) which will be processed. By default 2880 samples (60ms @ 48kHz).
func MaxFrameSize(samples int) Option {
	return func(args *Options) {
		args.MaxFrameSize = samples
	}
}

// HeapLimit is a functional option to limit the memory which can be
// allocated by the users of the codec (e.g. buffer arenas).
func HeapLimit(bytes int) Option {
	return func(args *Options) {
		args.HeapLimit = bytes
	}
}
