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
	"fmt"
	"os"
	"text/template"

	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/dh1tw/opusbox/session"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "List the supported codecs and session parameters",
	Long:  `List the supported codecs, sampling rates, applications and frame durations`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := info(); err != nil {
			exit(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

var infoTmpl = template.Must(template.New("").Parse(
	`
Supported codecs and session parameters:

	Codecs:               {{range .Codecs}}{{.}} {{end}}
	Sampling rates (Hz):  {{range .SamplingRates}}{{.}} {{end}}
	Channels:             1 (Mono), 2 (Stereo)
	Applications: {{range .Applications}}
		{{printf "%-22s" .String}}{{printf "%d" .}}{{end}}
	Frame durations:      {{range .FrameDurations}}{{.}} {{end}}
	Max frame size:       {{.MaxFrameSize}} samples per channel
	Max packet size:      {{.MaxPacketSize}} bytes
`,
))

type infoData struct {
	Codecs         []string
	SamplingRates  []int
	Applications   []audiocodec.Application
	FrameDurations []string
	MaxFrameSize   int
	MaxPacketSize  int
}

// info prints the supported codecs and session parameters
func info() error {
	d := infoData{
		Codecs:        codecNames,
		SamplingRates: session.ValidSamplingRates,
		Applications:  audiocodec.Applications,
		MaxFrameSize:  session.MaxFrameSize,
		MaxPacketSize: session.MaxPacketSize,
	}

	for _, fd := range audiocodec.FrameDurations {
		d.FrameDurations = append(d.FrameDurations, fmt.Sprintf("%v", fd))
	}

	return infoTmpl.Execute(os.Stdout, d)
}
