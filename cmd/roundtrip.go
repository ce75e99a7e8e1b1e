// Copyright © 2016 Tobias Wellnitz, DH1TW <Tobias.Wellnitz@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	ringBuffer "github.com/dh1tw/golang-ring"
	"github.com/dh1tw/opusbox/audio"
	"github.com/dh1tw/opusbox/audio/resample"
	"github.com/dh1tw/opusbox/audio/sinks/wavWriter"
	"github.com/dh1tw/opusbox/audio/sources/wavReader"
	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/dh1tw/opusbox/audiocodec/g711"
	"github.com/dh1tw/opusbox/audiocodec/opus"
	"github.com/dh1tw/opusbox/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// roundtripCmd represents the roundtrip command
var roundtripCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Encode and decode a WAV file",
	Long: `Encode and decode a WAV file with a codec session

The audio of the input file is converted to the sampling rate and the
amount of channels of the session, split into frames, encoded and decoded
again. The packets pass through a ring buffer of --packet-buffer packets
before they are decoded.

$ opusbox roundtrip -i speech.wav -o speech_opus.wav --bitrate 16000

The decoded audio is written with the sampling rate and channels of the
input file. Packet and audio quality statistics are printed to stdout.
`,
	Run: roundtrip,
}

func init() {
	RootCmd.AddCommand(roundtripCmd)
	roundtripCmd.Flags().StringP("input", "i", "", "input WAV file")
	roundtripCmd.Flags().StringP("output", "o", "", "output WAV file (optional)")
	roundtripCmd.Flags().StringP("codec", "c", "opus", "codec (opus, g711)")
	roundtripCmd.Flags().IntP("samplerate", "s", 48000, "sampling rate of the session")
	roundtripCmd.Flags().Int("channels", 1, "channels of the session")
	roundtripCmd.Flags().String("application", "audio", "encoder application (voip, audio, restricted_lowdelay)")
	roundtripCmd.Flags().Int("frame-length", 960, "frame length in samples per channel")
	roundtripCmd.Flags().IntP("bitrate", "B", 32000, "encoder bitrate in bit/s")
	roundtripCmd.Flags().Int("complexity", 9, "encoder complexity [0...10]")
	roundtripCmd.Flags().String("max-bandwidth", "fullband", "maximum bandpass of the encoder")
	roundtripCmd.Flags().Int("packet-buffer", 4, "packets buffered between encoder and decoder")
	roundtripCmd.Flags().Int("bit-depth", 16, "bit depth of the output file (16, 24)")
	roundtripCmd.Flags().Float64("volume", 1.0, "volume of the output file [0...1]")
}

func roundtrip(cmd *cobra.Command, args []string) {

	if err := readConfig(); err != nil {
		exit(err)
	}

	// bind the pflags to viper settings
	viper.BindPFlag("codec.name", cmd.Flags().Lookup("codec"))
	viper.BindPFlag("codec.samplerate", cmd.Flags().Lookup("samplerate"))
	viper.BindPFlag("codec.channels", cmd.Flags().Lookup("channels"))
	viper.BindPFlag("codec.application", cmd.Flags().Lookup("application"))
	viper.BindPFlag("codec.frame-length", cmd.Flags().Lookup("frame-length"))
	viper.BindPFlag("codec.bitrate", cmd.Flags().Lookup("bitrate"))
	viper.BindPFlag("codec.complexity", cmd.Flags().Lookup("complexity"))
	viper.BindPFlag("codec.max-bandwidth", cmd.Flags().Lookup("max-bandwidth"))
	viper.BindPFlag("codec.packet-buffer", cmd.Flags().Lookup("packet-buffer"))
	viper.BindPFlag("output.bit-depth", cmd.Flags().Lookup("bit-depth"))
	viper.BindPFlag("output.volume", cmd.Flags().Lookup("volume"))

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	// exit is only called once the session has been destroyed
	if err := roundtripFile(input, output); err != nil {
		exit(err)
	}
}

// roundtripFile runs input through a session created from the viper
// settings and writes the decoded audio to output, if set. The session is
// destroyed before roundtripFile returns.
func roundtripFile(input, output string) error {

	// check if values from config file / pflags are valid
	if err := checkCodecParameterValues(); err != nil {
		return err
	}

	if input == "" {
		return errors.New("no input file provided (--input)")
	}

	codecName := strings.ToLower(viper.GetString("codec.name"))
	samplerate := viper.GetInt("codec.samplerate")
	channels := viper.GetInt("codec.channels")
	frameLength := viper.GetInt("codec.frame-length")
	bitrate := viper.GetInt("codec.bitrate")
	complexity := viper.GetInt("codec.complexity")
	packetBuffer := viper.GetInt("codec.packet-buffer")
	bitDepth := viper.GetInt("output.bit-depth")
	volume := float32(viper.GetFloat64("output.volume"))

	// values checked before
	app, _ := getApplication(viper.GetString("codec.application"))
	maxBw, _ := getMaxBandwidth(viper.GetString("codec.max-bandwidth"))

	rt := session.LoadRuntime(context.Background(), func(ctx context.Context) (audiocodec.Codec, error) {
		return newCodec(codecName)
	})
	if err := rt.Wait(context.Background()); err != nil {
		return err
	}

	s, err := session.New(rt, samplerate, channels, app,
		session.Bitrate(bitrate),
		session.Complexity(complexity),
		session.MaxBandwidth(maxBw),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Destroy(); err != nil {
			log.Printf("unable to destroy session %v: %v\n", s.ID(), err)
		}
	}()

	src, err := wavReader.ReadFile(input)
	if err != nil {
		return err
	}

	res, err := runRoundtrip(s, src, frameLength, packetBuffer)
	if err != nil {
		return err
	}

	if err := printRoundtripStats(s, res); err != nil {
		return err
	}

	if output == "" {
		return nil
	}

	w, err := wavWriter.NewWavWriter(output,
		wavWriter.Channels(src.Channels),
		wavWriter.Samplerate(src.Samplerate),
		wavWriter.BitDepth(bitDepth),
	)
	if err != nil {
		return err
	}
	w.SetVolume(volume)

	if err := w.Write(res.decoded); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	fmt.Printf("written %d frames to %s\n", w.Frames(), output)

	return nil
}

// newCodec returns the codec boundary for the given name.
func newCodec(name string) (audiocodec.Codec, error) {
	switch strings.ToLower(name) {
	case "opus":
		return opus.New(), nil
	case "g711":
		return g711.New(0), nil
	}
	return nil, fmt.Errorf("unknown codec '%s'", name)
}

type roundtripResult struct {
	reference audio.Msg // input with the session's samplerate and channels
	decoded   audio.Msg
	packets   int
	bytes     int
	maxPacket int
}

// bitrate returns the average bitrate in bit/s.
func (r roundtripResult) bitrate() float64 {
	d := r.decoded.Duration()
	if d == 0 {
		return 0
	}
	return float64(r.bytes*8) / d
}

// runRoundtrip converts msg to the format of the session, encodes it frame
// by frame and decodes the packets after they passed through a ring buffer
// of bufferSize packets. The last frame is padded with silence.
func runRoundtrip(s *session.Session, msg audio.Msg, frameLength, bufferSize int) (roundtripResult, error) {

	var res roundtripResult
	chs := s.Channels()

	data := audio.AdjustChannels(msg.Channels, chs, msg.Data)
	ref, err := resample.Msg(audio.Msg{
		Data:       data,
		Samplerate: msg.Samplerate,
		Channels:   chs,
		Frames:     len(data) / chs,
		EOF:        true,
	}, float64(s.SampleRate()))
	if err != nil {
		return res, err
	}
	res.reference = ref

	var packets ringBuffer.Ring
	packets.SetCapacity(bufferSize)

	frame := make([]float32, frameLength*chs)
	pcm := make([]byte, len(frame)*audio.SampleWidth)
	samples := make([]float32, session.MaxFrameSize*chs)
	decoded := make([]float32, 0, len(ref.Data)+len(frame))

	decode := func() error {
		p, ok := packets.Dequeue().([]byte)
		if !ok {
			return nil
		}
		out, err := s.Decode(p)
		if err != nil {
			return err
		}
		n := audio.BytesToFloat32(samples, out)
		decoded = append(decoded, samples[:n]...)
		return nil
	}

	for offset := 0; offset < len(ref.Data); offset += len(frame) {
		n := copy(frame, ref.Data[offset:])
		for i := n; i < len(frame); i++ {
			frame[i] = 0
		}

		audio.Float32ToBytes(pcm, frame)
		packet, err := s.Encode(pcm, frameLength)
		if err != nil {
			return res, err
		}

		res.packets++
		res.bytes += len(packet)
		if len(packet) > res.maxPacket {
			res.maxPacket = len(packet)
		}

		// the ring overwrites the oldest packet when full
		if packets.Length() >= packets.Capacity() {
			if err := decode(); err != nil {
				return res, err
			}
		}
		packets.Enqueue(packet)
	}

	for packets.Length() > 0 {
		if err := decode(); err != nil {
			return res, err
		}
	}

	res.decoded = audio.Msg{
		Data:       decoded,
		Samplerate: ref.Samplerate,
		Channels:   chs,
		Frames:     len(decoded) / chs,
		EOF:        true,
	}

	return res, nil
}

func printRoundtripStats(s *session.Session, res roundtripResult) error {

	fmt.Printf("codec: %s, %d Hz, %d channel(s), %v\n",
		s.CodecName(), s.SampleRate(), s.Channels(), s.Application())

	if res.packets == 0 {
		fmt.Println("no audio frames found")
		return nil
	}

	fmt.Printf("packets: %d, bytes: %d, avg packet: %d bytes, max packet: %d bytes\n",
		res.packets, res.bytes, res.bytes/res.packets, res.maxPacket)
	fmt.Printf("duration: %.2fs, bitrate: %.1f kbit/s\n",
		res.decoded.Duration(), res.bitrate()/1000)

	rmsIn, err := audio.RMS(res.reference.Data)
	if err != nil {
		return err
	}
	rmsOut, err := audio.RMS(res.decoded.Data)
	if err != nil {
		return err
	}
	snr, err := audio.SNR(res.reference.Data, res.decoded.Data)
	if err != nil {
		return err
	}

	fmt.Printf("rms in: %.4f, rms out: %.4f, snr: %.1f dB\n", rmsIn, rmsOut, snr)
	return nil
}
