// Package opcode defines the quest-script instruction set. Every opcode is
// described once in the shared definition table (table.go) with a flag word
// that records which game builds implement it. A single opcode number can map
// to different definitions on different builds, so lookups always go through
// a per-build index.
package opcode

import (
	"fmt"
	"sync"

	"github.com/zurustar/questscript/pkg/version"
)

// Flag bits used in Def.Flags. The low two bits carry behavior flags, the
// next twelve carry the per-build availability bits in release order, and
// the top two mark control-flow properties used by the episode scanner.
const (
	FPass uint16 = 0x0001 // opcode does not clear the args stack
	FArgs uint16 = 0x0002 // opcode consumes args pushed by arg_push* on V3/V4

	FDCNTE    uint16 = 0x0004
	FDC112000 uint16 = 0x0008
	FDCV1     uint16 = 0x0010
	FDCV2     uint16 = 0x0020
	FPCNTE    uint16 = 0x0040
	FPCV2     uint16 = 0x0080
	FGCNTE    uint16 = 0x0100
	FGCV3     uint16 = 0x0200
	FGCEp3NTE uint16 = 0x0400
	FGCEp3    uint16 = 0x0800
	FXBV3     uint16 = 0x1000
	FBBV4     uint16 = 0x2000

	FRet        uint16 = 0x4000 // ends linear execution (used by the episode scanner)
	FSetEpisode uint16 = 0x8000 // opcode selects the quest episode
)

// Version range masks. The names describe the first and last build family
// that implements an opcode.
const (
	FV0V2  = FDCNTE | FDC112000 | FDCV1 | FDCV2 | FPCNTE | FPCV2 | FGCNTE
	FV0V4  = FDCNTE | FDC112000 | FDCV1 | FDCV2 | FPCNTE | FPCV2 | FGCNTE | FGCV3 | FGCEp3NTE | FGCEp3 | FXBV3 | FBBV4
	FV05V2 = FDC112000 | FDCV1 | FDCV2 | FPCNTE | FPCV2 | FGCNTE
	FV05V4 = FDC112000 | FDCV1 | FDCV2 | FPCNTE | FPCV2 | FGCNTE | FGCV3 | FGCEp3NTE | FGCEp3 | FXBV3 | FBBV4
	FV1V2  = FDCV1 | FDCV2 | FPCNTE | FPCV2 | FGCNTE
	FV1V4  = FDCV1 | FDCV2 | FPCNTE | FPCV2 | FGCNTE | FGCV3 | FGCEp3NTE | FGCEp3 | FXBV3 | FBBV4
	FV2    = FDCV2 | FPCNTE | FPCV2 | FGCNTE
	FV2V4  = FDCV2 | FPCNTE | FPCV2 | FGCNTE | FGCV3 | FGCEp3NTE | FGCEp3 | FXBV3 | FBBV4
	FV3    = FGCV3 | FGCEp3NTE | FGCEp3 | FXBV3
	FV3V4  = FGCV3 | FGCEp3NTE | FGCEp3 | FXBV3 | FBBV4
	FV4    = FBBV4
)

// FHasArgs marks the builds that use the push-argument calling convention.
const FHasArgs = FV3V4

// ArgType 引数のエンコード方式
type ArgType int

const (
	Label16 ArgType = iota
	Label16Set
	Label32
	Reg
	RegSet
	RegSetFixed
	Reg32
	Reg32SetFixed
	Int8
	Int16
	Int32
	Float32
	CString
)

// DataType classifies what a label argument points at, which controls how
// the disassembler renders the labeled region.
type DataType int

const (
	DataNone DataType = iota
	DataScript
	DataRaw
	DataCString
	DataPlayerStats
	DataPlayerVisualConfig
	DataResistData
	DataAttackData
	DataMovementData
	DataImageData
	DataF8F2Entries
)

// Arg describes one operand of an opcode.
type Arg struct {
	Type ArgType
	// Count is the register count for RegSetFixed and Reg32SetFixed.
	Count int
	// Data is the referenced data type for label arguments.
	Data DataType
	// Name optionally documents what the operand means.
	Name string
}

// Def describes one opcode on the builds selected by Flags.
type Def struct {
	Opcode uint16
	Name   string
	// QEditName is the alternate mnemonic accepted by other editors.
	QEditName string
	Args      []Arg
	Flags     uint16
}

func (d *Def) String() string {
	if d.QEditName != "" {
		return fmt.Sprintf("%04X: %s (qedit: %s) flags=%04X", d.Opcode, d.Name, d.QEditName, d.Flags)
	}
	return fmt.Sprintf("%04X: %s flags=%04X", d.Opcode, d.Name, d.Flags)
}

var (
	byOpcodeOnce [12]sync.Once
	byOpcode     [12]map[uint16]*Def
	byNameOnce   [12]sync.Once
	byName       [12]map[string]*Def
)

// ForBuild returns the opcode-number index for one build. The table is
// validated on first use; two definitions claiming the same opcode on the
// same build is a programming error.
func ForBuild(b version.Build) map[uint16]*Def {
	byOpcodeOnce[b].Do(func() {
		vf := b.Flag()
		index := make(map[uint16]*Def)
		for z := range defs {
			def := &defs[z]
			if def.Flags&vf == 0 {
				continue
			}
			if _, ok := index[def.Opcode]; ok {
				panic(fmt.Sprintf("duplicate definition for opcode %04X", def.Opcode))
			}
			index[def.Opcode] = def
		}
		byOpcode[b] = index
	})
	return byOpcode[b]
}

// ByNameForBuild returns the mnemonic index for one build. Both canonical
// names and alternate names are included.
func ByNameForBuild(b version.Build) map[string]*Def {
	byNameOnce[b].Do(func() {
		vf := b.Flag()
		index := make(map[string]*Def)
		for z := range defs {
			def := &defs[z]
			if def.Flags&vf == 0 {
				continue
			}
			if _, ok := index[def.Name]; ok {
				panic(fmt.Sprintf("duplicate definition for opcode %04X", def.Opcode))
			}
			index[def.Name] = def
			if def.QEditName != "" {
				if _, ok := index[def.QEditName]; ok {
					panic(fmt.Sprintf("duplicate definition for opcode %04X", def.Opcode))
				}
				index[def.QEditName] = def
			}
		}
		byName[b] = index
	})
	return byName[b]
}
