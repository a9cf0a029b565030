// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsondoc

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNotObject is returned when a lookup steps into a value that is not an object.
	ErrNotObject = errors.Base("value is not an object")
	// ErrMissingKey is returned when a lookup names a key the object does not have.
	ErrMissingKey = errors.Base("key not found")
)

// 📦 Value is a sealed interface over the JSON value kinds.
// Only Null, Bool, Number, String, Array and *Object implement it.
type Value interface {
	jsonValue()
}

// Null is the JSON null literal.
type Null struct{}

func (Null) jsonValue() {}

// Bool is a JSON boolean.
type Bool bool

func (Bool) jsonValue() {}

// Number holds the literal text of a JSON number so it is written back unchanged.
type Number string

func (Number) jsonValue() {}

// String is a JSON string.
type String string

func (String) jsonValue() {}

// Array is a JSON array.
type Array []Value

func (Array) jsonValue() {}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// 🗂️ Object is a JSON object that remembers member order.
type Object struct {
	members []Member
	index   map[string]int
}

func (*Object) jsonValue() {}

// NewObject creates an Object from members, in order.
func NewObject(members ...Member) *Object {
	obj := &Object{index: make(map[string]int, len(members))}
	for _, m := range members {
		obj.Set(m.Key, m.Value)
	}
	return obj
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Set inserts key at the end of the object, or replaces its value in place if
// the key is already present.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Members returns a copy of the members in order.
func (o *Object) Members() []Member {
	out := make([]Member, len(o.members))
	copy(out, o.members)
	return out
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// 🔍 Lookup walks path through nested objects starting at v.
func Lookup(v Value, path ...string) (Value, error) {
	cur := v
	for i, key := range path {
		obj, ok := cur.(*Object)
		if !ok {
			return nil, errors.Errorf("%w: %s", ErrNotObject, describe(path[:i]))
		}
		next, ok := obj.Get(key)
		if !ok {
			return nil, errors.Errorf("%w: %s", ErrMissingKey, describe(path[:i+1]))
		}
		cur = next
	}
	return cur, nil
}

// LookupObject is Lookup followed by a check that the result is an object.
func LookupObject(v Value, path ...string) (*Object, error) {
	found, err := Lookup(v, path...)
	if err != nil {
		return nil, err
	}
	obj, ok := found.(*Object)
	if !ok {
		return nil, errors.Errorf("%w: %s", ErrNotObject, describe(path))
	}
	return obj, nil
}

func describe(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	return strings.Join(path, ".")
}
