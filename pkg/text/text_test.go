package text

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/zurustar/questscript/pkg/version"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name     string
		build    version.Build
		language uint8
		input    string
		expected []byte
	}{
		{
			name:     "BBはUTF-16LE",
			build:    version.BBV4,
			language: 1,
			input:    "AB",
			expected: []byte{'A', 0, 'B', 0},
		},
		{
			name:     "GCの英語はISO-8859-1",
			build:    version.GCV3,
			language: 1,
			input:    "café",
			expected: []byte{'c', 'a', 'f', 0xE9},
		},
		{
			name:     "GCの日本語はShift-JIS",
			build:    version.GCV3,
			language: 0,
			input:    "あ",
			expected: []byte{0x82, 0xA0},
		},
		{
			name:     "DC NTEは言語に関係なくShift-JIS",
			build:    version.DCNTE,
			language: 1,
			input:    "あ",
			expected: []byte{0x82, 0xA0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.build, tt.language, tt.input)
			if err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}
			if !bytes.Equal(data, tt.expected) {
				t.Fatalf("Encode(%q) = %X, want %X", tt.input, data, tt.expected)
			}
			s, err := Decode(tt.build, tt.language, data)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if s != tt.input {
				t.Errorf("Decode(Encode(%q)) = %q", tt.input, s)
			}
		})
	}
}

func TestEncodeCString(t *testing.T) {
	data, err := EncodeCString(version.BBV4, 1, "A")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{'A', 0, 0, 0}) {
		t.Errorf("UTF-16 terminator: got %X", data)
	}

	data, err = EncodeCString(version.GCV3, 1, "A")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{'A', 0}) {
		t.Errorf("byte-encoding terminator: got %X", data)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "そのまま", input: "hello", expected: `"hello"`},
		{name: "引用符", input: `a"b`, expected: `"a\"b"`},
		{name: "バックスラッシュ", input: `a\b`, expected: `"a\\b"`},
		{name: "改行とタブ", input: "a\n\tb", expected: `"a\n\tb"`},
		{name: "制御文字", input: "\x01", expected: `"\x01"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.expected {
				t.Errorf("Escape(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUnescapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "末尾のバックスラッシュ", input: `abc\`},
		{name: "不明なエスケープ", input: `\q`},
		{name: "短すぎる16進エスケープ", input: `\x1`},
		{name: "16進数でない文字", input: `\xZZ`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unescape(tt.input); err == nil {
				t.Errorf("Unescape(%q) expected error", tt.input)
			}
		})
	}
}

// TestEscapeRoundTripProperty verifies that any string survives a trip
// through Escape and Unescape unchanged.
func TestEscapeRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("unescape(escape(s)) == s", prop.ForAll(
		func(s string) bool {
			quoted := Escape(s)
			inner := quoted[1 : len(quoted)-1]
			back, err := Unescape(inner)
			return err == nil && back == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestUTF16RoundTripProperty verifies encode/decode round trips for the
// UTF-16 builds, which can represent any string.
func TestUTF16RoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(s)) == s", prop.ForAll(
		func(s string) bool {
			data, err := Encode(version.BBV4, 1, s)
			if err != nil {
				return false
			}
			back, err := Decode(version.BBV4, 1, data)
			return err == nil && back == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestParseDataString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{name: "連続した16進数", input: "0102FF", expected: []byte{0x01, 0x02, 0xFF}},
		{name: "空白区切り", input: "01 02 ff", expected: []byte{0x01, 0x02, 0xFF}},
		{name: "カンマ区切り", input: "01,02", expected: []byte{0x01, 0x02}},
		{name: "空文字列", input: "", expected: nil},
		{name: "奇数個の16進数", input: "012", wantErr: true},
		{name: "16進数でない文字", input: "0G", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseDataString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDataString(%q) expected error, got %X", tt.input, data)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDataString(%q) returned error: %v", tt.input, err)
			}
			if !bytes.Equal(data, tt.expected) {
				t.Errorf("ParseDataString(%q) = %X, want %X", tt.input, data, tt.expected)
			}
		})
	}
}
