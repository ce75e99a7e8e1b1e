package session

import (
	"testing"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	s := newTestSession(t, newCountingCodec(), 8000, 1, WithMetrics(m))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsActive))

	packet, err := s.Encode(make([]byte, 160*2), 160)
	require.NoError(t, err)
	_, err = s.Decode(packet)
	require.NoError(t, err)

	_, err = s.Decode([]byte{0x01})
	require.Error(t, err)
	require.Error(t, s.SetBitrate(-5))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.framesEncoded))
	assert.Equal(t, 160.0, testutil.ToFloat64(m.encodedBytes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.framesDecoded))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.codecErrors.WithLabelValues("decode", audiocodec.InvalidPacket.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.codecErrors.WithLabelValues("encoder_ctl", audiocodec.BadArgument.String())))

	require.NoError(t, s.Destroy())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.sessionsActive))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.sessionCreated()
		m.encoded(10)
		m.decoded()
		m.codecError("encode", -1)
		m.sessionDestroyed()
	})
}
