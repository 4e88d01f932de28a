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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes handles command line arguments for programs with more than one mode
// of operation. Output should be set before calling Parse() otherwise help
// messages will not be seen.
type Modes struct {
	Output io.Writer

	// a new flagset is created on every call to NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse()
	subModes []string

	// every mode selected since the call to NewArgs()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected since the call to NewArgs().
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs starts parsing a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that the remaining arguments belong to a new mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the flag and sub-mode help.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// processing of the command line should continue
	ParseContinue ParseResult = iota

	// help was requested and has been printed to Output
	ParseHelp

	// an error was returned by Parse()
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// skip past the flags
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the flags and any selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes for the next call to Parse(). The first sub-mode added is the
// default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// helpWriter collects the output of the flag package so that it can be
// amended before printing.
type helpWriter struct {
	strings.Builder
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	lines := strings.Split(hw.String(), "\n")

	if len(lines) <= 2 && len(subModes) == 0 {
		if banner == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	if banner == "" {
		fmt.Fprintln(output, lines[0])
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	}

	flags := strings.Join(lines[1:], "\n")
	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
