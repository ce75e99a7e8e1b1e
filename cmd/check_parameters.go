package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/dh1tw/opusbox/session"
	"github.com/dh1tw/opusbox/utils"
	"github.com/spf13/viper"
)

// codecNames contains the codecs which can be selected with --codec
var codecNames = []string{"opus", "g711"}

func checkCodecParameterValues() error {

	if !utils.StringInSlice(viper.GetString("codec.name"), codecNames) {
		return &parmError{
			parm: "codec.name",
			msg:  "allowed values are opus or g711",
		}
	}

	sr := viper.GetInt("codec.samplerate")
	if err := session.ValidateSamplingRate(sr); err != nil {
		return &parmError{
			parm: "codec.samplerate",
			msg:  "allowed values are [8000, 12000, 16000, 24000, 48000]",
		}
	}

	if chs := viper.GetInt("codec.channels"); chs < 1 || chs > 2 {
		return &parmError{
			parm: "codec.channels",
			msg:  "allowed values are [1 (Mono), 2 (Stereo)]",
		}
	}

	if _, err := getApplication(viper.GetString("codec.application")); err != nil {
		return &parmError{
			parm: "codec.application",
			msg:  "allowed values are VOIP, AUDIO or RESTRICTED_LOWDELAY",
		}
	}

	if _, err := getMaxBandwidth(viper.GetString("codec.max-bandwidth")); err != nil {
		return &parmError{
			parm: "codec.max-bandwidth",
			msg:  "allowed values are NARROWBAND, MEDIUMBAND, WIDEBAND, SUPERWIDEBAND, FULLBAND",
		}
	}

	if viper.GetInt("codec.bitrate") < 6000 || viper.GetInt("codec.bitrate") > 510000 {
		return &parmError{
			parm: "codec.bitrate",
			msg:  "allowed values are [6000...510000]",
		}
	}

	if viper.GetInt("codec.complexity") < 0 || viper.GetInt("codec.complexity") > 10 {
		return &parmError{
			parm: "codec.complexity",
			msg:  "allowed values are [0...10]",
		}
	}

	if !audiocodec.ValidFrameSize(viper.GetInt("codec.frame-length"), sr) {
		return &parmError{
			parm: "codec.frame-length",
			msg: `division of codec.frame-length/codec.samplerate must
result in 2.5, 5, 10, 20, 40, 60ms`,
		}
	}

	if viper.GetInt("codec.packet-buffer") <= 0 {
		return &parmError{
			parm: "codec.packet-buffer",
			msg:  "value must be > 0",
		}
	}

	if bd := viper.GetInt("output.bit-depth"); bd != 16 && bd != 24 {
		return &parmError{
			parm: "output.bit-depth",
			msg:  "allowed values are [16, 24]",
		}
	}

	if v := viper.GetFloat64("output.volume"); v < 0 || v > 1 {
		return &parmError{
			parm: "output.volume",
			msg:  "allowed values are [0...1]",
		}
	}

	return nil
}

type parmError struct {
	parm string
	msg  string
}

func (p *parmError) Error() string {
	return fmt.Sprintf("%v: %v\n", p.parm, p.msg)
}

// getApplication returns the integer representation of a codec
// application value string (typically read from application settings)
func getApplication(app string) (audiocodec.Application, error) {
	switch strings.ToLower(app) {
	case "audio":
		return audiocodec.AppAudio, nil
	case "restricted_lowdelay":
		return audiocodec.AppRestrictedLowdelay, nil
	case "voip":
		return audiocodec.AppVoIP, nil
	}
	return 0, errors.New("unknown application value")
}

// getMaxBandwidth returns the integer representation of a max bandwidth
// value string (typically read from application settings)
func getMaxBandwidth(maxBw string) (int, error) {
	switch strings.ToLower(maxBw) {
	case "narrowband":
		return audiocodec.Narrowband, nil
	case "mediumband":
		return audiocodec.Mediumband, nil
	case "wideband":
		return audiocodec.Wideband, nil
	case "superwideband":
		return audiocodec.SuperWideband, nil
	case "fullband":
		return audiocodec.Fullband, nil
	}

	return 0, errors.New("unknown max bandwidth value")
}
