// This file is part of g2aica.
//
// g2aica is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// g2aica is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with g2aica.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/g2aica/capture"
	"github.com/jetsetilly/g2aica/curated"
	"github.com/jetsetilly/g2aica/digest"
	"github.com/jetsetilly/g2aica/environment"
	"github.com/jetsetilly/g2aica/hardware"
	"github.com/jetsetilly/g2aica/hardware/aica"
	"github.com/jetsetilly/g2aica/hardware/g2"
	"github.com/jetsetilly/g2aica/logger"
	"github.com/jetsetilly/g2aica/modalflag"
	"github.com/jetsetilly/g2aica/performance"
	"github.com/jetsetilly/g2aica/prefs"
	"github.com/jetsetilly/g2aica/sampleload"
	"github.com/jetsetilly/g2aica/statsview"
	"github.com/jetsetilly/g2aica/tracker"
	"github.com/jetsetilly/g2aica/version"
)

// the default location in system RAM for sample data
const defaultSampleAddress = "0x0c010000"

// the default location in wave RAM
const defaultWaveAddress = "0x00800000"

// number of transfers to keep in the history
const historySize = 32

// sample rate of captured data when there is no sample file to take it from
const defaultCaptureRate = 44100

func main() {
	// ctrl-c ends the run at the next continue check
	var interrupted atomic.Bool
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		interrupted.Store(true)
	}()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "INSPECT", "RTC", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	st := newStyles()

	switch md.Mode() {
	case "RUN":
		err = run(md, st, &interrupted)
	case "INSPECT":
		err = inspect(md, st)
	case "RTC":
		err = rtc(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Println(st.err.Render(fmt.Sprintf("* error in %s mode: %s", md, err)))
		os.Exit(20)
	}
}

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf("address: %v", err)
	}
	return uint32(v), nil
}

// newSystem creates and initialises a System. the prefs argument is a
// command line preference string, which can be empty
func newSystem(prefsArg string) (*hardware.System, error) {
	prefs.PushCommandLineStack(prefsArg)
	defer prefs.PopCommandLineStack()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	sys, err := hardware.NewSystem(env)
	if err != nil {
		return nil, err
	}
	sys.Init()
	sys.Reset(false)

	return sys, nil
}

func run(md *modalflag.Modes, st styles, interrupted *atomic.Bool) error {
	md.NewMode()

	sample := md.AddString("sample", "", "wav or mp3 file to load into system RAM")
	star := md.AddString("star", defaultSampleAddress, "system RAM address of the transfer")
	stag := md.AddString("stag", defaultWaveAddress, "G2 address of the transfer")
	length := md.AddInt("len", -1, "length of the transfer in bytes (defaults to length of sample)")
	channel := md.AddString("channel", "aica", "DMA channel: aica, ext1, ext2, dev")
	dir := md.AddInt("dir", 0, "direction of transfer: 0 system to G2, 1 G2 to system")
	auto := md.AddBool("auto", false, "channel remains enabled after transfer")
	seconds := md.AddInt("seconds", 1, "number of emulated seconds to run for")
	captureFile := md.AddString("capture", "", "write transferred data to wav file")
	stateFile := md.AddString("state", "", "save state of the interface to file")
	memvizFile := md.AddString("memviz", "", "write graphviz dot file of the interface state")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	echo := md.AddBool("log", false, "echo log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences for this run only")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *echo {
		logger.SetEcho(md.Output, true)
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	id, ok := g2.ChannelFromString(strings.ToLower(*channel))
	if !ok {
		return curated.Errorf("unknown DMA channel (%s)", *channel)
	}

	sys, err := newSystem(*prefsArg)
	if err != nil {
		return err
	}

	starAddr, err := parseAddress(*star)
	if err != nil {
		return err
	}
	stagAddr, err := parseAddress(*stag)
	if err != nil {
		return err
	}

	n := *length
	rate := defaultCaptureRate
	if *sample != "" {
		s, err := sampleload.Load(sys.Env, sys.Mem, *sample, starAddr)
		if err != nil {
			return err
		}
		fmt.Fprintln(md.Output, s)
		if n < 0 {
			n = int(s.Length())
		}
		rate = s.SampleRate
	}
	if n < 0 {
		n = 0
	}

	var c *capture.Capture
	if *captureFile != "" {
		c, err = capture.NewCapture(sys.Env, sys.Mem, *captureFile, id, rate)
		if err != nil {
			return err
		}
		sys.G2.AttachTracker(c)
	}

	history := tracker.NewTracker(sys.Scheduler, historySize)
	sys.G2.AttachTracker(history)

	dig := digest.NewTransfers(sys.Env, sys.Mem)
	sys.G2.AttachTracker(dig)

	lenReg := uint32(n) & g2.LenMask
	if *auto {
		lenReg |= g2.LenAutoEnable
	}

	// program the channel and start the transfer as the CPU would
	base := uint32(g2.OriginRegisters) + uint32(id)*0x20
	sys.WriteBus(base+g2.OffsetSTAG, stagAddr, aica.Word)
	sys.WriteBus(base+g2.OffsetSTAR, starAddr, aica.Word)
	sys.WriteBus(base+g2.OffsetLEN, lenReg, aica.Word)
	sys.WriteBus(base+g2.OffsetDIR, uint32(*dir), aica.Word)
	sys.WriteBus(base+g2.OffsetEN, 1, aica.Word)
	sys.WriteBus(base+g2.OffsetST, 1, aica.Word)

	st.writeRegisters(md.Output, sys)

	err = sys.RunForSeconds(*seconds, func() (bool, error) {
		return !interrupted.Load(), nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output)
	st.writeRegisters(md.Output, sys)

	fmt.Fprintln(md.Output, st.header.Render(" Transfers "))
	history.Write(md.Output)
	fmt.Fprintf(md.Output, "digest: %s\n", dig)

	if c != nil {
		if err := c.EndCapture(); err != nil {
			return err
		}
	}

	if *stateFile != "" {
		if err := writeFile(*stateFile, sys.WriteState); err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		// the registers only. the collaborators of the AICA and G2 types
		// include all of emulated memory
		viz := struct {
			RTC      aica.RTC
			ARMRST   uint8
			VREG     uint8
			Channels [g2.NumChannels]g2.Channel
		}{
			RTC:      aica.RTC{Value: sys.AICA.RTC.Value, Enable: sys.AICA.RTC.Enable},
			ARMRST:   sys.AICA.ARMRST,
			VREG:     sys.AICA.VREG,
			Channels: sys.G2.Channels,
		}
		err := writeFile(*memvizFile, func(w io.Writer) error {
			memviz.Map(w, &viz)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func writeFile(filename string, write func(io.Writer) error) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("file: %v", err)
		}
	}()
	return write(f)
}

func inspect(md *modalflag.Modes, st styles) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("a single state file is required for %s mode", md)
	}

	sys, err := newSystem("")
	if err != nil {
		return err
	}
	sys.Env.Quiet = true

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("file: %v", err)
	}
	defer f.Close()

	if err := sys.ReadState(f); err != nil {
		return err
	}

	st.writeRegisters(md.Output, sys)
	return nil
}

func rtc(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	now := time.Now()
	v := aica.RTCEpoch(now)
	fmt.Fprintf(md.Output, "host time: %s\n", now.Format(time.RFC1123Z))
	fmt.Fprintf(md.Output, "RTC: %08x (%d seconds since 1950-01-01)\n", v, v)
	fmt.Fprintf(md.Output, "high word: %04x  low word: %04x\n", v>>16, v&0xffff)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: none, cpu, mem, all")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	d, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	sys, err := newSystem("")
	if err != nil {
		return err
	}

	return performance.Check(md.Output, sys, prf, d)
}
