package audiocodec

// Handle is an opaque encoder or decoder instance created by a Codec. Only
// the Codec which created a Handle knows how to interpret it.
type Handle interface{}

// Application is the tuning profile of an encoder. It is fixed when the
// encoder is created.
type Application int

// The numeric values match the constants of the reference implementation.
const (
	AppVoIP               Application = 2048
	AppAudio              Application = 2049
	AppRestrictedLowdelay Application = 2051
)

// Applications lists all supported application modes.
var Applications = []Application{AppVoIP, AppAudio, AppRestrictedLowdelay}

func (a Application) String() string {
	switch a {
	case AppVoIP:
		return "VOIP"
	case AppAudio:
		return "AUDIO"
	case AppRestrictedLowdelay:
		return "RESTRICTED_LOWDELAY"
	}
	return "UNKNOWN"
}

// Control request ids understood by the encoder / decoder CTL entry points.
const (
	SetBitrateRequest        = 4002
	SetMaxBandwidthRequest   = 4004
	SetComplexityRequest     = 4010
	SetInbandFECRequest      = 4012
	SetPacketLossPercRequest = 4014
	SetDTXRequest            = 4016
	ResetStateRequest        = 4028
	SetGainRequest           = 4034
)

// Special values accepted by SetBitrateRequest.
const (
	BitrateAuto = -1000
	BitrateMax  = -1
)

// Bandwidth values accepted by SetMaxBandwidthRequest.
const (
	Narrowband    = 1101
	Mediumband    = 1102
	Wideband      = 1103
	SuperWideband = 1104
	Fullband      = 1105
)

// Allocator provides the raw memory primitives a codec exposes for the
// buffers it reads from and writes into.
type Allocator interface {
	Malloc(size int) ([]byte, error)
	Free(buf []byte)
}

// Codec is the narrow functional surface of an audio codec. All calls are
// blocking. Encode, Decode and the CTL functions report failures as negative
// status codes (see Status); non-negative results are byte or sample counts.
type Codec interface {
	Allocator
	Name() string
	CreateEncoder(samplerate, channels int, app Application) (Handle, error)
	CreateDecoder(samplerate, channels int) (Handle, error)

	// Encode compresses sampleCount interleaved s16le samples from pcm into
	// out and returns the number of bytes written.
	Encode(h Handle, pcm []byte, sampleCount int, out []byte, frameSize int) int

	// Decode decompresses packet into out (interleaved s16le) and returns the
	// number of decoded samples per channel.
	Decode(h Handle, packet []byte, out []byte) int

	EncoderCtl(h Handle, id, value int) int
	DecoderCtl(h Handle, id, value int) int
	Destroy(h Handle)
}

// Encoder is implemented by anything that turns a frame of s16le PCM into a
// compressed packet.
type Encoder interface {
	Encode(pcm []byte, frameSize int) ([]byte, error)
}

// Decoder is implemented by anything that turns a compressed packet into a
// frame of s16le PCM.
type Decoder interface {
	Decode(packet []byte) ([]byte, error)
}
