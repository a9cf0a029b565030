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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

const indentStep = "  "

// 📥 Parse decodes a single JSON document. Trailing data after the top-level
// value is an error.
func Parse(data []byte) (Value, error) {
	// the decoder would silently turn bad bytes into U+FFFD
	if off := InvalidUTF8Offset(data); off >= 0 {
		return nil, errors.Errorf("invalid UTF-8 byte at offset %d", off)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, errors.Errorf("after top-level value: %w", err)
		}
		return nil, errors.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}

	return v, nil
}

// InvalidUTF8Offset returns the offset of the first byte that is not part of
// a valid UTF-8 sequence, or -1 if data is valid.
func InvalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size <= 1 {
			return off
		}
		off += size
	}
	return -1
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, errors.Errorf("unexpected delimiter %q at offset %d", t, dec.InputOffset())
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, errors.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("object key is not a string at offset %d", dec.InputOffset())
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// 📤 Marshal encodes v with two-space indentation. Non-ASCII characters are
// written as-is and no trailing newline is added.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value, depth int) error {
	switch t := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		if !json.Valid([]byte(t)) {
			return errors.Errorf("invalid number literal %q", string(t))
		}
		buf.WriteString(string(t))
	case String:
		writeString(buf, string(t))
	case Array:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[")
		for i, elem := range t {
			if i > 0 {
				buf.WriteString(",")
			}
			newline(buf, depth+1)
			if err := encodeValue(buf, elem, depth+1); err != nil {
				return err
			}
		}
		newline(buf, depth)
		buf.WriteString("]")
	case *Object:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		if t.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{")
		for i, m := range t.members {
			if i > 0 {
				buf.WriteString(",")
			}
			newline(buf, depth+1)
			writeString(buf, m.Key)
			buf.WriteString(": ")
			if err := encodeValue(buf, m.Value, depth+1); err != nil {
				return errors.Errorf("encoding %q: %w", m.Key, err)
			}
		}
		newline(buf, depth)
		buf.WriteString("}")
	default:
		return errors.Errorf("unsupported value type %T", v)
	}
	return nil
}

func newline(buf *bytes.Buffer, depth int) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indentStep, depth))
}

// writeString quotes s, escaping only what JSON requires.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
