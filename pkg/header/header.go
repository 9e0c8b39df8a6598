// Package header parses and emits the fixed-size headers at the start of
// compiled quest files. Each build family has its own layout; all of them
// begin with the code offset, function table offset, and file size.
package header

import (
	"encoding/binary"
	"fmt"

	"github.com/go-restruct/restruct"
	"github.com/zurustar/questscript/pkg/text"
	"github.com/zurustar/questscript/pkg/version"
)

const (
	dcnteHeaderSize = 0x30
	dcHeaderSize    = 0x1D4
	pcHeaderSize    = 0x394
	gcHeaderSize    = 0x1D4
	bbHeaderSize    = 0x398
)

type dcnteHeader struct {
	CodeOffset          uint32
	FunctionTableOffset uint32
	Size                uint32
	Unused              uint32
	Name                [0x20]byte
}

type dcHeader struct {
	CodeOffset          uint32
	FunctionTableOffset uint32
	Size                uint32
	Unused              uint32
	Language            uint8
	Unknown1            uint8
	QuestNumber         uint16
	Name                [0x20]byte
	ShortDescription    [0x80]byte
	LongDescription     [0x120]byte
}

type pcHeader struct {
	CodeOffset          uint32
	FunctionTableOffset uint32
	Size                uint32
	Unused              uint32
	Language            uint8
	Unknown1            uint8
	QuestNumber         uint16
	Name                [0x20]uint16
	ShortDescription    [0x80]uint16
	LongDescription     [0x120]uint16
}

type gcHeader struct {
	CodeOffset          uint32
	FunctionTableOffset uint32
	Size                uint32
	Unused              uint32
	Language            uint8
	Unknown1            uint8
	QuestNumber         uint8
	Episode             uint8
	Name                [0x20]byte
	ShortDescription    [0x80]byte
	LongDescription     [0x120]byte
}

type bbHeader struct {
	CodeOffset          uint32
	FunctionTableOffset uint32
	Size                uint32
	Unused              uint32
	QuestNumber         uint16
	Unused2             uint16
	Episode             uint8
	MaxPlayers          uint8
	Joinable            uint8
	Unknown             uint8
	Name                [0x20]uint16
	ShortDescription    [0x80]uint16
	LongDescription     [0x120]uint16
}

// Size returns the header size for a build.
func Size(b version.Build) int {
	switch b {
	case version.DCNTE:
		return dcnteHeaderSize
	case version.DC112000, version.DCV1, version.DCV2:
		return dcHeaderSize
	case version.PCNTE, version.PCV2:
		return pcHeaderSize
	case version.GCNTE, version.GCV3, version.GCEp3NTE, version.GCEp3, version.XBV3:
		return gcHeaderSize
	case version.BBV4:
		return bbHeaderSize
	}
	return 0
}

// Meta holds the decoded header fields of a quest file.
type Meta struct {
	Build               version.Build
	QuestNumber         uint16
	Language            uint8
	HeaderLanguage      uint8
	Episode             version.Episode
	EpisodeRaw          uint8
	EpisodeValid        bool
	MaxPlayers          uint8
	Joinable            bool
	Name                string
	ShortDescription    string
	LongDescription     string
	CodeOffset          uint32
	FunctionTableOffset uint32
	Size                uint32
}

func decodeFixed(b version.Build, language uint8, data []byte) (string, error) {
	end := 0
	for end < len(data) && data[end] != 0 {
		end++
	}
	return text.Decode(b, language, data[:end])
}

func decodeFixedW(b version.Build, language uint8, units []uint16) (string, error) {
	end := 0
	for end < len(units) && units[end] != 0 {
		end++
	}
	raw := make([]byte, end*2)
	for z := 0; z < end; z++ {
		binary.LittleEndian.PutUint16(raw[z*2:], units[z])
	}
	return text.Decode(b, language, raw)
}

func encodeFixed(b version.Build, language uint8, s string, dst []byte) error {
	raw, err := text.Encode(b, language, s)
	if err != nil {
		return err
	}
	if len(raw) > len(dst)-1 {
		raw = raw[:len(dst)-1]
	}
	copy(dst, raw)
	return nil
}

func encodeFixedW(b version.Build, language uint8, s string, dst []uint16) error {
	raw, err := text.Encode(b, language, s)
	if err != nil {
		return err
	}
	units := len(raw) / 2
	if units > len(dst)-1 {
		units = len(dst) - 1
	}
	for z := 0; z < units; z++ {
		dst[z] = binary.LittleEndian.Uint16(raw[z*2:])
	}
	return nil
}

// Parse decodes the header of a quest file. overrideLanguage replaces the
// header's language field when it is not 0xFF.
func Parse(b version.Build, data []byte, overrideLanguage uint8) (*Meta, error) {
	size := Size(b)
	if size == 0 {
		return nil, fmt.Errorf("unknown build %s", b)
	}
	if len(data) < size {
		return nil, fmt.Errorf("file is too small for %s header (%d < %d bytes)", b, len(data), size)
	}

	m := &Meta{Build: b, Episode: version.Episode1, MaxPlayers: 4}
	var textErr error

	switch b {
	case version.DCNTE:
		var h dcnteHeader
		if err := restruct.Unpack(data[:size], binary.LittleEndian, &h); err != nil {
			return nil, fmt.Errorf("parse header: %w", err)
		}
		m.CodeOffset = h.CodeOffset
		m.FunctionTableOffset = h.FunctionTableOffset
		m.Size = h.Size
		m.Language = b.ClampLanguage(0, overrideLanguage)
		m.Name, textErr = decodeFixed(b, m.Language, h.Name[:])

	case version.DC112000, version.DCV1, version.DCV2:
		var h dcHeader
		if err := restruct.Unpack(data[:size], binary.LittleEndian, &h); err != nil {
			return nil, fmt.Errorf("parse header: %w", err)
		}
		m.CodeOffset = h.CodeOffset
		m.FunctionTableOffset = h.FunctionTableOffset
		m.Size = h.Size
		m.QuestNumber = h.QuestNumber
		m.HeaderLanguage = h.Language
		m.Language = b.ClampLanguage(h.Language, overrideLanguage)
		if m.Name, textErr = decodeFixed(b, m.Language, h.Name[:]); textErr == nil {
			if m.ShortDescription, textErr = decodeFixed(b, m.Language, h.ShortDescription[:]); textErr == nil {
				m.LongDescription, textErr = decodeFixed(b, m.Language, h.LongDescription[:])
			}
		}

	case version.PCNTE, version.PCV2:
		var h pcHeader
		if err := restruct.Unpack(data[:size], binary.LittleEndian, &h); err != nil {
			return nil, fmt.Errorf("parse header: %w", err)
		}
		m.CodeOffset = h.CodeOffset
		m.FunctionTableOffset = h.FunctionTableOffset
		m.Size = h.Size
		m.QuestNumber = h.QuestNumber
		m.HeaderLanguage = h.Language
		m.Language = b.ClampLanguage(h.Language, overrideLanguage)
		if m.Name, textErr = decodeFixedW(b, m.Language, h.Name[:]); textErr == nil {
			if m.ShortDescription, textErr = decodeFixedW(b, m.Language, h.ShortDescription[:]); textErr == nil {
				m.LongDescription, textErr = decodeFixedW(b, m.Language, h.LongDescription[:])
			}
		}

	case version.GCNTE, version.GCV3, version.GCEp3NTE, version.GCEp3, version.XBV3:
		var h gcHeader
		if err := restruct.Unpack(data[:size], binary.LittleEndian, &h); err != nil {
			return nil, fmt.Errorf("parse header: %w", err)
		}
		m.CodeOffset = h.CodeOffset
		m.FunctionTableOffset = h.FunctionTableOffset
		m.Size = h.Size
		m.QuestNumber = uint16(h.QuestNumber)
		m.HeaderLanguage = h.Language
		m.Language = b.ClampLanguage(h.Language, overrideLanguage)
		m.EpisodeRaw = h.Episode
		if ep, err := version.EpisodeForNumber(h.Episode); err == nil {
			m.Episode = ep
			m.EpisodeValid = true
		}
		if m.Name, textErr = decodeFixed(b, m.Language, h.Name[:]); textErr == nil {
			if m.ShortDescription, textErr = decodeFixed(b, m.Language, h.ShortDescription[:]); textErr == nil {
				m.LongDescription, textErr = decodeFixed(b, m.Language, h.LongDescription[:])
			}
		}

	case version.BBV4:
		var h bbHeader
		if err := restruct.Unpack(data[:size], binary.LittleEndian, &h); err != nil {
			return nil, fmt.Errorf("parse header: %w", err)
		}
		m.CodeOffset = h.CodeOffset
		m.FunctionTableOffset = h.FunctionTableOffset
		m.Size = h.Size
		m.QuestNumber = h.QuestNumber
		m.Language = b.ClampLanguage(0, overrideLanguage)
		m.EpisodeRaw = h.Episode
		if ep, err := version.EpisodeForNumber(h.Episode); err == nil {
			m.Episode = ep
			m.EpisodeValid = true
		}
		if h.MaxPlayers != 0 {
			m.MaxPlayers = h.MaxPlayers
		}
		m.Joinable = h.Joinable != 0
		if m.Name, textErr = decodeFixedW(b, m.Language, h.Name[:]); textErr == nil {
			if m.ShortDescription, textErr = decodeFixedW(b, m.Language, h.ShortDescription[:]); textErr == nil {
				m.LongDescription, textErr = decodeFixedW(b, m.Language, h.LongDescription[:])
			}
		}
	}

	if textErr != nil {
		return nil, fmt.Errorf("decode header text: %w", textErr)
	}
	return m, nil
}

// Emit encodes a header for the assembler. Offsets are derived from the code
// size and function table length, which the caller has already computed.
func Emit(m *Meta, codeSize, functionTableEntries int) ([]byte, error) {
	size := Size(m.Build)
	if size == 0 {
		return nil, fmt.Errorf("unknown build %s", m.Build)
	}

	codeOffset := uint32(size)
	fto := uint32(size + codeSize)
	total := fto + uint32(functionTableEntries*4)

	var v interface{}
	var textErr error

	switch m.Build {
	case version.DCNTE:
		h := &dcnteHeader{CodeOffset: codeOffset, FunctionTableOffset: fto, Size: total}
		textErr = encodeFixed(m.Build, m.Language, m.Name, h.Name[:])
		v = h

	case version.DC112000, version.DCV1, version.DCV2:
		h := &dcHeader{
			CodeOffset:          codeOffset,
			FunctionTableOffset: fto,
			Size:                total,
			Language:            m.Language,
			QuestNumber:         m.QuestNumber,
		}
		if textErr = encodeFixed(m.Build, m.Language, m.Name, h.Name[:]); textErr == nil {
			if textErr = encodeFixed(m.Build, m.Language, m.ShortDescription, h.ShortDescription[:]); textErr == nil {
				textErr = encodeFixed(m.Build, m.Language, m.LongDescription, h.LongDescription[:])
			}
		}
		v = h

	case version.PCNTE, version.PCV2:
		h := &pcHeader{
			CodeOffset:          codeOffset,
			FunctionTableOffset: fto,
			Size:                total,
			Language:            m.Language,
			QuestNumber:         m.QuestNumber,
		}
		if textErr = encodeFixedW(m.Build, m.Language, m.Name, h.Name[:]); textErr == nil {
			if textErr = encodeFixedW(m.Build, m.Language, m.ShortDescription, h.ShortDescription[:]); textErr == nil {
				textErr = encodeFixedW(m.Build, m.Language, m.LongDescription, h.LongDescription[:])
			}
		}
		v = h

	case version.GCNTE, version.GCV3, version.GCEp3NTE, version.GCEp3, version.XBV3:
		h := &gcHeader{
			CodeOffset:          codeOffset,
			FunctionTableOffset: fto,
			Size:                total,
			Language:            m.Language,
			QuestNumber:         uint8(m.QuestNumber),
		}
		if m.Episode == version.Episode2 {
			h.Episode = 1
		}
		if textErr = encodeFixed(m.Build, m.Language, m.Name, h.Name[:]); textErr == nil {
			if textErr = encodeFixed(m.Build, m.Language, m.ShortDescription, h.ShortDescription[:]); textErr == nil {
				textErr = encodeFixed(m.Build, m.Language, m.LongDescription, h.LongDescription[:])
			}
		}
		v = h

	case version.BBV4:
		h := &bbHeader{
			CodeOffset:          codeOffset,
			FunctionTableOffset: fto,
			Size:                total,
			QuestNumber:         m.QuestNumber,
			MaxPlayers:          m.MaxPlayers,
		}
		switch m.Episode {
		case version.Episode4:
			h.Episode = 2
		case version.Episode2:
			h.Episode = 1
		}
		if m.Joinable {
			h.Joinable = 1
		}
		if textErr = encodeFixedW(m.Build, m.Language, m.Name, h.Name[:]); textErr == nil {
			if textErr = encodeFixedW(m.Build, m.Language, m.ShortDescription, h.ShortDescription[:]); textErr == nil {
				textErr = encodeFixedW(m.Build, m.Language, m.LongDescription, h.LongDescription[:])
			}
		}
		v = h
	}

	if textErr != nil {
		return nil, fmt.Errorf("encode header text: %w", textErr)
	}
	raw, err := restruct.Pack(binary.LittleEndian, v)
	if err != nil {
		return nil, fmt.Errorf("pack header: %w", err)
	}
	return raw, nil
}

// Directives renders the metadata directives a disassembly starts with,
// matching what the assembler accepts.
func Directives(m *Meta) []string {
	var lines []string
	lines = append(lines, fmt.Sprintf(".version %s", m.Build))
	switch m.Build {
	case version.DCNTE:
		lines = append(lines, fmt.Sprintf(".name %s", text.Escape(m.Name)))
	case version.DC112000, version.DCV1, version.DCV2, version.PCNTE, version.PCV2:
		lines = append(lines,
			fmt.Sprintf(".quest_num %d", m.QuestNumber),
			fmt.Sprintf(".language %d", m.HeaderLanguage),
			fmt.Sprintf(".name %s", text.Escape(m.Name)),
			fmt.Sprintf(".short_desc %s", text.Escape(m.ShortDescription)),
			fmt.Sprintf(".long_desc %s", text.Escape(m.LongDescription)))
	case version.GCNTE, version.GCV3, version.GCEp3NTE, version.GCEp3, version.XBV3:
		lines = append(lines,
			fmt.Sprintf(".quest_num %d", m.QuestNumber),
			fmt.Sprintf(".language %d", m.HeaderLanguage),
			episodeDirective(m),
			fmt.Sprintf(".name %s", text.Escape(m.Name)),
			fmt.Sprintf(".short_desc %s", text.Escape(m.ShortDescription)),
			fmt.Sprintf(".long_desc %s", text.Escape(m.LongDescription)))
	case version.BBV4:
		lines = append(lines,
			fmt.Sprintf(".quest_num %d", m.QuestNumber),
			episodeDirective(m),
			fmt.Sprintf(".max_players %d", m.MaxPlayers))
		if m.Joinable {
			lines = append(lines, ".joinable")
		}
		lines = append(lines,
			fmt.Sprintf(".name %s", text.Escape(m.Name)),
			fmt.Sprintf(".short_desc %s", text.Escape(m.ShortDescription)),
			fmt.Sprintf(".long_desc %s", text.Escape(m.LongDescription)))
	}
	return lines
}

func episodeDirective(m *Meta) string {
	if !m.EpisodeValid {
		return fmt.Sprintf(".episode %s  # invalid value in header", version.Episode1)
	}
	return fmt.Sprintf(".episode %s", m.Episode)
}
