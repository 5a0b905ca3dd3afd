// This file is part of Shapemotion.
//
// Shapemotion is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shapemotion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shapemotion.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/shapemotion/curated"
)

// WarningBoilerPlate is prepended to every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the filename of the preferences file in the resource
// directory (see paths package).
const DefaultPrefsFile = "preferences"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Sentinal error patterns.
const (
	UnknownKey    = "prefs: unknown key (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	NotAPrefsFile = "prefs: %s is not a preferences file"
)

// Disk represents preference values as stored on disk. Values are associated
// with a key with the Add() function. A single preferences file can be shared
// between Disk instances. Entries in the file that are not registered with a
// Disk instance are preserved when the file is saved.
type Disk struct {
	crit sync.Mutex

	path    string
	entries map[string]pref

	// keys that have been set from the command line stack. these entries are
	// not changed by Load()
	commandLine map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}, nil
}

// Add preference value to the disk instance. The key must be unique for the
// Disk instance.
//
// If a matching key is found on the top of the command line stack then the
// value is set from that entry.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		dsk.commandLine[key] = true
	}

	return nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// HasEntry returns true if the key has been added to the Disk instance.
func (dsk *Disk) HasEntry(key string) bool {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	_, ok := dsk.entries[key]
	return ok
}

// Set the value associated with the key.
func (dsk *Disk) Set(key string, v Value) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk. The contents of the existing file
// are preserved except where they are overwritten by the registered entries.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf("prefs: %v", err)
	}
	if data == nil {
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the Disk instance are ignored.
//
// If saveOnFail is true and the file does not exist then the current values
// are saved to disk.
func (dsk *Disk) Load(saveOnFail bool) error {
	dsk.crit.Lock()

	data, err := dsk.read()
	if err != nil {
		dsk.crit.Unlock()
		if os.IsNotExist(err) {
			if saveOnFail {
				return dsk.Save()
			}
			return nil
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer dsk.crit.Unlock()

	for k, v := range data {
		if dsk.commandLine[k] {
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// read the preferences file into a map of key/value strings. the error is
// returned unwrapped so that os.IsNotExist() can be used by the caller.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f, dsk.path)
}

func parse(r io.Reader, path string) (map[string]string, error) {
	data := make(map[string]string)

	scanner := bufio.NewScanner(r)

	// the first line must be the warning boilerplate
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(NotAPrefsFile, path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return data, scanner.Err()
}
