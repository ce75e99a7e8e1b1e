package session

// Option is the type for a function option
type Option func(*Options)

// Options contains the optional parameters of a session. Encoder settings
// which are nil are left at the codec's defaults.
type Options struct {
	Registry       *Registry
	Metrics        *Metrics
	Bitrate        *int
	Complexity     *int
	MaxBandwidth   *int
	InBandFEC      *bool
	PacketLossPerc *int
	DTX            *bool
}

// WithRegistry is a functional option to track the session in a specific
// Registry instead of the DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(args *Options) {
		args.Registry = r
	}
}

// WithMetrics is a functional option to report the session's activity to
// a set of prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(args *Options) {
		args.Metrics = m
	}
}

// Bitrate is a functional option to set the initial encoder bitrate
// in bit/s.
func Bitrate(bitrate int) Option {
	return func(args *Options) {
		args.Bitrate = &bitrate
	}
}

// Complexity is a functional option to set the initial encoder
// complexity [0...10].
func Complexity(c int) Option {
	return func(args *Options) {
		args.Complexity = &c
	}
}

// MaxBandwidth is a functional option to set the initial maximum bandpass
// of the encoder (see audiocodec.Narrowband ... audiocodec.Fullband).
func MaxBandwidth(bw int) Option {
	return func(args *Options) {
		args.MaxBandwidth = &bw
	}
}

// InBandFEC is a functional option to enable in-band forward error
// correction.
func InBandFEC(enabled bool) Option {
	return func(args *Options) {
		args.InBandFEC = &enabled
	}
}

// PacketLossPerc is a functional option to set the expected packet loss
// in percent [0...100].
func PacketLossPerc(p int) Option {
	return func(args *Options) {
		args.PacketLossPerc = &p
	}
}

// DTX is a functional option to enable discontinuous transmission.
func DTX(enabled bool) Option {
	return func(args *Options) {
		args.DTX = &enabled
	}
}
