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
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all preference types.
type hooks struct {
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.hookPost = f
}

func (h *hooks) store(nv Value, store func()) error {
	if h.hookPre != nil {
		if err := h.hookPre(nv); err != nil {
			return err
		}
	}
	store()
	if h.hookPost != nil {
		if err := h.hookPost(nv); err != nil {
			return err
		}
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.store(nv, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string. Strings
// can be in any base recognised by strconv.ParseInt with a base of zero.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
		nv = int(n)
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.store(nv, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value atomic.Value // string
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	return p.store(nv, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
