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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/g2aica/curated"
)

// DefaultPrefsFile is the name of the preferences file in the resource path.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the emulator is running ***"

// the string that separates key and value in the preferences file
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the preferences file into a map. a missing file is not an error but
// is indicated by the returned boolean.
func (dsk *Disk) read() (map[string]string, bool, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vals, false, nil
		}
		return nil, false, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}
		kv := strings.SplitN(line, keySep, 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if isDefunct(key) {
			continue
		}
		vals[key] = strings.TrimSpace(kv[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, false, curated.Errorf(DiskError, err)
	}

	return vals, true, nil
}

// Load preference values from disk. Values on the command line stack take
// precedence over values in the file.
//
// If the preferences file does not exist then the NoPrefsFile error is
// returned, but only after command line values have been applied. The
// caller will often want to ignore that error.
func (dsk *Disk) Load() error {
	vals, ok, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, found := vals[k]; found {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
		if found, v := GetCommandLinePref(k); found {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	if !ok {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// Save current preference values to disk. Keys in the existing file that are
// not managed by this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	vals, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, vals[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}
