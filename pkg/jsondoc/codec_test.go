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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantValue Value
	}{
		{
			name:      "string",
			input:     `"hello"`,
			wantValue: String("hello"),
		},
		{
			name:      "number_literal_kept",
			input:     `1.50e3`,
			wantValue: Number("1.50e3"),
		},
		{
			name:      "literals",
			input:     `[true, false, null]`,
			wantValue: Array{Bool(true), Bool(false), Null{}},
		},
		{
			name:      "empty_containers",
			input:     `{"a": [], "b": {}}`,
			wantValue: NewObject(Member{"a", Array{}}, Member{"b", NewObject()}),
		},
		{
			name:      "duplicate_key_keeps_first_position_last_value",
			input:     `{"a": 1, "b": 2, "a": 3}`,
			wantValue: NewObject(Member{"a", Number("3")}, Member{"b", Number("2")}),
		},
		{
			name:      "surrounding_whitespace",
			input:     "\n  {\"a\": \"b\"}\n\n",
			wantValue: NewObject(Member{"a", String("b")}),
		},
		{
			name:    "empty_input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "truncated",
			input:   `{"a": 1`,
			wantErr: true,
		},
		{
			name:    "trailing_garbage",
			input:   `{"a": 1} x`,
			wantErr: true,
		},
		{
			name:    "second_document",
			input:   `{} {}`,
			wantErr: true,
		},
		{
			name:    "not_json",
			input:   `this is not json`,
			wantErr: true,
		},
		{
			name:    "invalid_utf8_in_string",
			input:   "{\"note\": \"caf\xe9\"}",
			wantErr: true,
		},
		{
			name:      "escaped_replacement_character_is_valid",
			input:     `"caf\ufffd"`,
			wantValue: String("caf\ufffd"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err, "Parse should fail")
				return
			}
			require.NoError(t, err, "Parse should succeed")
			if diff := cmp.Diff(tt.wantValue, got, cmp.AllowUnexported(Object{})); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePreservesMemberOrder(t *testing.T) {
	got, err := Parse([]byte(`{"zeta": 1, "alpha": 2, "mid": {"y": 1, "x": 2}}`))
	require.NoError(t, err)

	obj, ok := got.(*Object)
	require.True(t, ok, "top-level value should be an object")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	mid, err := LookupObject(obj, "mid")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, mid.Keys())
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{
			name:  "scalar",
			value: String("x"),
			want:  `"x"`,
		},
		{
			name:  "empty_object",
			value: NewObject(),
			want:  `{}`,
		},
		{
			name:  "empty_array",
			value: Array{},
			want:  `[]`,
		},
		{
			name:  "nested",
			value: NewObject(Member{"a", Array{Number("1"), NewObject(Member{"b", Null{}})}}),
			want:  "{\n  \"a\": [\n    1,\n    {\n      \"b\": null\n    }\n  ]\n}",
		},
		{
			name:  "non_ascii_unescaped",
			value: String("Müller – 東京"),
			want:  `"Müller – 東京"`,
		},
		{
			name:  "html_characters_unescaped",
			value: String("<a & b>"),
			want:  `"<a & b>"`,
		},
		{
			name:  "control_characters_escaped",
			value: String("line\nbreak\t\"quoted\" back\\slash \x01"),
			want:  `"line\nbreak\t\"quoted\" back\\slash \u0001"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.value)
			require.NoError(t, err, "Marshal should succeed")
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalRejectsInvalidNumber(t *testing.T) {
	_, err := Marshal(NewObject(Member{"n", Number("12abc")}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number literal")
}

func TestMarshalGolden(t *testing.T) {
	doc := NewObject(
		Member{"patient", NewObject(
			Member{"id", String("0b7e8d9c-1f2a-4c3b-9d8e-7f6a5b4c3d2e")},
			Member{"name", String("Jürgen Weiß")},
			Member{"birthDate", String("1970-01")},
		)},
		Member{"episodesOfCare", Array{
			NewObject(Member{"id", String("e1")}, Member{"period", NewObject(Member{"start", String("2024-03-01")})}),
		}},
		Member{"diagnoses", Array{}},
		Member{"consent", NewObject()},
		Member{"score", Number("0.75")},
		Member{"active", Bool(true)},
		Member{"notes", Null{}},
		Member{"metadata", NewObject(Member{"transferTAN", String("306600442D212C47")})},
		Member{"submittedAt", String("2025-10-15T14:30:00.000000000")},
	)

	got, err := Marshal(doc)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "patient_record", got)
}

func TestRoundTrip(t *testing.T) {
	doc := NewObject(
		Member{"id", String("306600442D212C47921B7DC0C8C2A886")},
		Member{"createdAt", String("2025-10-15T14:30:00.000000000")},
		Member{"patient", String("ä-ö-ü")},
		Member{"status", String("unknown")},
		Member{"counts", Array{Number("1"), Number("-2.5"), Number("3e10")}},
		Member{"flags", NewObject(Member{"a", Bool(false)}, Member{"b", Null{}})},
	)

	data, err := Marshal(doc)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)

	if diff := cmp.Diff(Value(doc), back, cmp.AllowUnexported(Object{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	again, err := Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again), "re-encoding should be stable")
}

func TestInvalidUTF8Offset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", `{"a": 1}`, -1},
		{"multibyte", "{\"a\": \"Jürgen 東京\"}", -1},
		{"literal_replacement_character", "\"\uFFFD\"", -1},
		{"latin1_byte", "{\"a\": \"caf\xe9\"}", 10},
		{"truncated_sequence", "\"\xe6\x9d\"", 1},
		{"leading_byte", "\xff{}", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InvalidUTF8Offset([]byte(tt.input)))
		})
	}
}
