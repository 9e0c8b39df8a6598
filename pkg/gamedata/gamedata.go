// Package gamedata defines the fixed binary structures that quest labels can
// point at. The disassembler renders these with annotated field listings so
// embedded NPC and enemy parameters are readable.
package gamedata

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-restruct/restruct"
	"github.com/zurustar/questscript/pkg/text"
)

// Struct sizes in the quest binary.
const (
	PlayerStatsSize        = 0x24
	PlayerVisualConfigSize = 0x50
	ResistDataSize         = 0x20
	AttackDataSize         = 0x30
	MovementDataSize       = 0x30
	F8F2EntrySize          = 0x10
)

// PlayerStats is the character stat block referenced by get_physical_data.
type PlayerStats struct {
	ATP        uint16  `struct:"uint16"`
	MST        uint16  `struct:"uint16"`
	EVP        uint16  `struct:"uint16"`
	HP         uint16  `struct:"uint16"`
	DFP        uint16  `struct:"uint16"`
	ATA        uint16  `struct:"uint16"`
	LCK        uint16  `struct:"uint16"`
	ESP        uint16  `struct:"uint16"`
	Height     float32 `struct:"float32"`
	UnknownA3  float32 `struct:"float32"`
	Level      uint32  `struct:"uint32"`
	Experience uint32  `struct:"uint32"`
	Meseta     uint32  `struct:"uint32"`
}

// PlayerVisualConfig is the appearance block referenced by get_npc_data.
type PlayerVisualConfig struct {
	Name              [0x10]byte `struct:"[16]byte"`
	NameColor         uint32     `struct:"uint32"`
	UnknownA2         [8]byte    `struct:"[8]byte"`
	ExtraModel        uint8      `struct:"uint8"`
	Unused            [0x0F]byte `struct:"[15]byte"`
	NameColorChecksum uint32     `struct:"uint32"`
	SectionID         uint8      `struct:"uint8"`
	CharClass         uint8      `struct:"uint8"`
	ValidationFlags   uint8      `struct:"uint8"`
	Version           uint8      `struct:"uint8"`
	ClassFlags        uint32     `struct:"uint32"`
	Costume           uint16     `struct:"uint16"`
	Skin              uint16     `struct:"uint16"`
	Face              uint16     `struct:"uint16"`
	Head              uint16     `struct:"uint16"`
	Hair              uint16     `struct:"uint16"`
	HairR             uint16     `struct:"uint16"`
	HairG             uint16     `struct:"uint16"`
	HairB             uint16     `struct:"uint16"`
	ProportionX       float32    `struct:"float32"`
	ProportionY       float32    `struct:"float32"`
}

// ResistData is the enemy resistance block referenced by get_resist_data.
type ResistData struct {
	EVPBonus  uint16 `struct:"uint16"`
	EFR       uint16 `struct:"uint16"`
	EIC       uint16 `struct:"uint16"`
	ETH       uint16 `struct:"uint16"`
	ELT       uint16 `struct:"uint16"`
	EDK       uint16 `struct:"uint16"`
	UnknownA6 uint32 `struct:"uint32"`
	UnknownA7 uint32 `struct:"uint32"`
	UnknownA8 uint32 `struct:"uint32"`
	UnknownA9 uint32 `struct:"uint32"`
	DFPBonus  uint32 `struct:"uint32"`
}

// AttackData is the enemy attack block referenced by get_attack_data.
type AttackData struct {
	UnknownA1  int16   `struct:"int16"`
	ATP        int16   `struct:"int16"`
	ATABonus   int16   `struct:"int16"`
	UnknownA4  uint16  `struct:"uint16"`
	DistanceX  float32 `struct:"float32"`
	AngleX     uint32  `struct:"uint32"`
	DistanceY  float32 `struct:"float32"`
	UnknownA8  uint16  `struct:"uint16"`
	UnknownA9  uint16  `struct:"uint16"`
	UnknownA10 uint16  `struct:"uint16"`
	UnknownA11 uint16  `struct:"uint16"`
	UnknownA12 uint32  `struct:"uint32"`
	UnknownA13 uint32  `struct:"uint32"`
	UnknownA14 uint32  `struct:"uint32"`
	UnknownA15 uint32  `struct:"uint32"`
	UnknownA16 uint32  `struct:"uint32"`
}

// MovementData is the enemy movement block referenced by get_movement_data.
type MovementData struct {
	IdleMoveSpeed      float32 `struct:"float32"`
	IdleAnimationSpeed float32 `struct:"float32"`
	MoveSpeed          float32 `struct:"float32"`
	AnimationSpeed     float32 `struct:"float32"`
	UnknownA1          float32 `struct:"float32"`
	UnknownA2          float32 `struct:"float32"`
	UnknownA3          uint32  `struct:"uint32"`
	UnknownA4          uint32  `struct:"uint32"`
	UnknownA5          uint32  `struct:"uint32"`
	UnknownA6          uint32  `struct:"uint32"`
	UnknownA7          uint32  `struct:"uint32"`
	UnknownA8          uint32  `struct:"uint32"`
}

// F8F2Entry is one 16-byte record in the data referenced by unknown_F8F2.
type F8F2Entry struct {
	Values [4]float32 `struct:"[4]float32"`
}

func unpack(data []byte, v any) error {
	return restruct.Unpack(data, binary.LittleEndian, v)
}

// ParsePlayerStats PlayerStatsを復元
func ParsePlayerStats(data []byte) (*PlayerStats, error) {
	var v PlayerStats
	if err := unpack(data, &v); err != nil {
		return nil, fmt.Errorf("parse player stats: %w", err)
	}
	return &v, nil
}

// ParsePlayerVisualConfig PlayerVisualConfigを復元
func ParsePlayerVisualConfig(data []byte) (*PlayerVisualConfig, error) {
	var v PlayerVisualConfig
	if err := unpack(data, &v); err != nil {
		return nil, fmt.Errorf("parse visual config: %w", err)
	}
	return &v, nil
}

// ParseResistData ResistDataを復元
func ParseResistData(data []byte) (*ResistData, error) {
	var v ResistData
	if err := unpack(data, &v); err != nil {
		return nil, fmt.Errorf("parse resist data: %w", err)
	}
	return &v, nil
}

// ParseAttackData AttackDataを復元
func ParseAttackData(data []byte) (*AttackData, error) {
	var v AttackData
	if err := unpack(data, &v); err != nil {
		return nil, fmt.Errorf("parse attack data: %w", err)
	}
	return &v, nil
}

// ParseMovementData MovementDataを復元
func ParseMovementData(data []byte) (*MovementData, error) {
	var v MovementData
	if err := unpack(data, &v); err != nil {
		return nil, fmt.Errorf("parse movement data: %w", err)
	}
	return &v, nil
}

// ParseF8F2Entry F8F2Entryを復元
func ParseF8F2Entry(data []byte) (*F8F2Entry, error) {
	var v F8F2Entry
	if err := unpack(data, &v); err != nil {
		return nil, fmt.Errorf("parse entry: %w", err)
	}
	return &v, nil
}

var sectionIDNames = []string{
	"Viridia", "Greenill", "Skyly", "Bluefull", "Purplenum",
	"Pinkal", "Redria", "Oran", "Yellowboze", "Whitill",
}

var charClassNames = []string{
	"HUmar", "HUnewearl", "HUcast", "RAmar", "RAcast", "RAcaseal",
	"FOmarl", "FOnewm", "FOnewearl", "HUcaseal", "FOmar", "RAmarl",
}

// SectionIDName returns the human-readable section ID name.
func SectionIDName(id uint8) string {
	if int(id) < len(sectionIDNames) {
		return sectionIDNames[id]
	}
	return "unknown"
}

// CharClassName returns the human-readable character class name.
func CharClassName(class uint8) string {
	if int(class) < len(charClassNames) {
		return charClassNames[class]
	}
	return "unknown"
}

// FormatFloat renders a float the way annotated disassembly prints it.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func field(base, off int, name, value string) string {
	return fmt.Sprintf("  %04X  %-16s  %s", base+off, name, value)
}

func u16Field(base, off int, name string, v uint16) string {
	return field(base, off, name, fmt.Sprintf("%04X /* %d */", v, v))
}

func s16Field(base, off int, name string, v int16) string {
	return field(base, off, name, fmt.Sprintf("%04X /* %d */", uint16(v), v))
}

func u32Field(base, off int, name string, v uint32) string {
	return field(base, off, name, fmt.Sprintf("%08X /* %d */", v, v))
}

func f32Field(base, off int, name string, v float32) string {
	return field(base, off, name, fmt.Sprintf("%08X /* %s */", math.Float32bits(v), FormatFloat(v)))
}

// Dump renders the stats block as annotated disassembly comment lines.
func (s *PlayerStats) Dump(base int) []string {
	return []string{
		"  // As PlayerStats",
		u16Field(base, 0x00, "atp", s.ATP),
		u16Field(base, 0x02, "mst", s.MST),
		u16Field(base, 0x04, "evp", s.EVP),
		u16Field(base, 0x06, "hp", s.HP),
		u16Field(base, 0x08, "dfp", s.DFP),
		u16Field(base, 0x0A, "ata", s.ATA),
		u16Field(base, 0x0C, "lck", s.LCK),
		u16Field(base, 0x0E, "esp", s.ESP),
		f32Field(base, 0x10, "height", s.Height),
		f32Field(base, 0x14, "a3", s.UnknownA3),
		field(base, 0x18, "level", fmt.Sprintf("%08X /* level %d */", s.Level, s.Level+1)),
		u32Field(base, 0x1C, "experience", s.Experience),
		u32Field(base, 0x20, "meseta", s.Meseta),
	}
}

// Dump renders the appearance block as annotated disassembly comment lines.
func (v *PlayerVisualConfig) Dump(base int) []string {
	name := v.Name[:]
	for len(name) > 0 && name[len(name)-1] == 0 {
		name = name[:len(name)-1]
	}
	return []string{
		"  // As PlayerVisualConfig",
		field(base, 0x00, "name", text.Escape(string(name))),
		field(base, 0x10, "name_color", fmt.Sprintf("%08X", v.NameColor)),
		field(base, 0x14, "a2", strings.ToUpper(hex.EncodeToString(v.UnknownA2[:]))),
		field(base, 0x1C, "extra_model", fmt.Sprintf("%02X", v.ExtraModel)),
		field(base, 0x1D, "unused", strings.ToUpper(hex.EncodeToString(v.Unused[:]))),
		field(base, 0x2C, "name_color_cs", fmt.Sprintf("%08X", v.NameColorChecksum)),
		field(base, 0x30, "section_id", fmt.Sprintf("%02X (%s)", v.SectionID, SectionIDName(v.SectionID))),
		field(base, 0x31, "char_class", fmt.Sprintf("%02X (%s)", v.CharClass, CharClassName(v.CharClass))),
		field(base, 0x32, "validation_flags", fmt.Sprintf("%02X", v.ValidationFlags)),
		field(base, 0x33, "version", fmt.Sprintf("%02X", v.Version)),
		field(base, 0x34, "class_flags", fmt.Sprintf("%08X", v.ClassFlags)),
		field(base, 0x38, "costume", fmt.Sprintf("%04X", v.Costume)),
		field(base, 0x3A, "skin", fmt.Sprintf("%04X", v.Skin)),
		field(base, 0x3C, "face", fmt.Sprintf("%04X", v.Face)),
		field(base, 0x3E, "head", fmt.Sprintf("%04X", v.Head)),
		field(base, 0x40, "hair", fmt.Sprintf("%04X", v.Hair)),
		field(base, 0x42, "hair_color", fmt.Sprintf("%04X, %04X, %04X", v.HairR, v.HairG, v.HairB)),
		field(base, 0x48, "proportion", fmt.Sprintf("%s, %s", FormatFloat(v.ProportionX), FormatFloat(v.ProportionY))),
	}
}

// Dump renders the resistance block as annotated disassembly comment lines.
func (r *ResistData) Dump(base int) []string {
	return []string{
		"  // As ResistData",
		u16Field(base, 0x00, "evp_bonus", r.EVPBonus),
		u16Field(base, 0x02, "efr", r.EFR),
		u16Field(base, 0x04, "eic", r.EIC),
		u16Field(base, 0x06, "eth", r.ETH),
		u16Field(base, 0x08, "elt", r.ELT),
		u16Field(base, 0x0A, "edk", r.EDK),
		u32Field(base, 0x0C, "a6", r.UnknownA6),
		u32Field(base, 0x10, "a7", r.UnknownA7),
		u32Field(base, 0x14, "a8", r.UnknownA8),
		u32Field(base, 0x18, "a9", r.UnknownA9),
		u32Field(base, 0x1C, "dfp_bonus", r.DFPBonus),
	}
}

// Dump renders the attack block as annotated disassembly comment lines.
func (a *AttackData) Dump(base int) []string {
	return []string{
		"  // As AttackData",
		s16Field(base, 0x00, "a1", a.UnknownA1),
		s16Field(base, 0x02, "atp", a.ATP),
		s16Field(base, 0x04, "ata_bonus", a.ATABonus),
		u16Field(base, 0x06, "a4", a.UnknownA4),
		f32Field(base, 0x08, "distance_x", a.DistanceX),
		field(base, 0x0C, "angle_x", fmt.Sprintf("%08X /* %d/65536 */", a.AngleX, a.AngleX)),
		f32Field(base, 0x10, "distance_y", a.DistanceY),
		u16Field(base, 0x14, "a8", a.UnknownA8),
		u16Field(base, 0x16, "a9", a.UnknownA9),
		u16Field(base, 0x18, "a10", a.UnknownA10),
		u16Field(base, 0x1A, "a11", a.UnknownA11),
		u32Field(base, 0x1C, "a12", a.UnknownA12),
		u32Field(base, 0x20, "a13", a.UnknownA13),
		u32Field(base, 0x24, "a14", a.UnknownA14),
		u32Field(base, 0x28, "a15", a.UnknownA15),
		u32Field(base, 0x2C, "a16", a.UnknownA16),
	}
}

// Dump renders the movement block as annotated disassembly comment lines.
func (m *MovementData) Dump(base int) []string {
	return []string{
		"  // As MovementData",
		f32Field(base, 0x00, "idle_move_speed", m.IdleMoveSpeed),
		f32Field(base, 0x04, "idle_anim_speed", m.IdleAnimationSpeed),
		f32Field(base, 0x08, "move_speed", m.MoveSpeed),
		f32Field(base, 0x0C, "animation_speed", m.AnimationSpeed),
		f32Field(base, 0x10, "a1", m.UnknownA1),
		f32Field(base, 0x14, "a2", m.UnknownA2),
		u32Field(base, 0x18, "a3", m.UnknownA3),
		u32Field(base, 0x1C, "a4", m.UnknownA4),
		u32Field(base, 0x20, "a5", m.UnknownA5),
		u32Field(base, 0x24, "a6", m.UnknownA6),
		u32Field(base, 0x28, "a7", m.UnknownA7),
		u32Field(base, 0x2C, "a8", m.UnknownA8),
	}
}

// Dump renders one entry line.
func (e *F8F2Entry) Dump(base int) string {
	return fmt.Sprintf("  %04X  %-11s  %s, %s, %s, %s", base, "entry",
		FormatFloat(e.Values[0]), FormatFloat(e.Values[1]),
		FormatFloat(e.Values[2]), FormatFloat(e.Values[3]))
}

// Hexdump renders data as indented hex-and-ASCII lines, 16 bytes per row.
func Hexdump(data []byte, startAddr int) []string {
	var lines []string
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]
		var hexPart strings.Builder
		var asciiPart strings.Builder
		for z := 0; z < 16; z++ {
			if z < len(row) {
				fmt.Fprintf(&hexPart, "%02X ", row[z])
				if row[z] >= 0x20 && row[z] < 0x7F {
					asciiPart.WriteByte(row[z])
				} else {
					asciiPart.WriteByte('.')
				}
			} else {
				hexPart.WriteString("   ")
				asciiPart.WriteByte(' ')
			}
		}
		lines = append(lines, fmt.Sprintf("  %08X | %s| %s",
			startAddr+off, hexPart.String(), asciiPart.String()))
	}
	return lines
}
