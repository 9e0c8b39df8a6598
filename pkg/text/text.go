// Package text converts between Go strings and the byte encodings quest
// files store text in. Which encoding applies depends on the game build and
// the quest language: the PC and BB builds store UTF-16LE, the console
// builds store Shift-JIS for Japanese and ISO-8859-1 otherwise.
package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"github.com/zurustar/questscript/pkg/version"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func byteCodec(b version.Build, language uint8) encoding.Encoding {
	// DC NTE predates the language field and is always Shift-JIS.
	if b == version.DCNTE || language == 0 {
		return japanese.ShiftJIS
	}
	return charmap.ISO8859_1
}

// Decode converts raw quest-file text bytes to a string.
func Decode(b version.Build, language uint8, data []byte) (string, error) {
	var enc encoding.Encoding
	if b.UsesUTF16() {
		enc = utf16LE
	} else {
		enc = byteCodec(b, language)
	}
	s, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(s), nil
}

// Encode converts a string to the byte encoding the build stores text in.
// The result does not include a terminator.
func Encode(b version.Build, language uint8, s string) ([]byte, error) {
	var enc encoding.Encoding
	if b.UsesUTF16() {
		enc = utf16LE
	} else {
		enc = byteCodec(b, language)
	}
	data, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode text: %w", err)
	}
	return data, nil
}

// EncodeCString encodes a string and appends the terminator, which is one
// zero byte for byte encodings and two for UTF-16.
func EncodeCString(b version.Build, language uint8, s string) ([]byte, error) {
	data, err := Encode(b, language, s)
	if err != nil {
		return nil, err
	}
	if b.UsesUTF16() {
		return append(data, 0, 0), nil
	}
	return append(data, 0), nil
}

// Escape renders a string as a double-quoted literal with control
// characters and quotes escaped.
func Escape(s string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\'':
			buf.WriteString(`\'`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(fmt.Sprintf(`\x%02X`, r))
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

// Unescape parses the contents of a quoted literal produced by Escape.
// The input must not include the surrounding quotes.
func Unescape(s string) (string, error) {
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("dangling escape at end of string")
		}
		switch s[i] {
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case '\\', '"', '\'':
			buf.WriteByte(s[i])
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("truncated \\x escape")
			}
			hi, err1 := hexDigit(s[i+1])
			lo, err2 := hexDigit(s[i+2])
			if err1 != nil || err2 != nil {
				return "", fmt.Errorf("invalid \\x escape %q", s[i:i+3])
			}
			buf.WriteByte(hi<<4 | lo)
			i += 2
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return buf.String(), nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("not a hex digit: %c", c)
}

// ParseDataString parses the operand of a .data directive: hex digit pairs
// separated by optional whitespace.
func ParseDataString(s string) ([]byte, error) {
	var out []byte
	var hi byte
	haveHi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == ',' {
			if haveHi {
				return nil, fmt.Errorf("odd number of hex digits")
			}
			continue
		}
		v, err := hexDigit(c)
		if err != nil {
			return nil, fmt.Errorf("invalid data byte at position %d: %w", i+1, err)
		}
		if !haveHi {
			hi = v
			haveHi = true
		} else {
			out = append(out, hi<<4|v)
			haveHi = false
		}
	}
	if haveHi {
		return nil, fmt.Errorf("odd number of hex digits")
	}
	return out, nil
}
