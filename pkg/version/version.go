// Package version defines the game builds understood by the quest-script
// toolchain. Every opcode definition, header layout, and text encoding
// decision keys off a Build value, so this package is the foundation that
// the opcode table, the disassembler, and the assembler all depend on.
package version

import (
	"fmt"
	"strings"
)

// Build identifies one client build of the game.
type Build int

// Supported builds, in release order. The order is significant: each build's
// version flag bit is derived from its position.
const (
	DCNTE Build = iota
	DC112000
	DCV1
	DCV2
	PCNTE
	PCV2
	GCNTE
	GCV3
	GCEp3NTE
	GCEp3
	XBV3
	BBV4

	numBuilds
)

var buildNames = [numBuilds]string{
	"DC_NTE",
	"DC_V1_11_2000_PROTOTYPE",
	"DC_V1",
	"DC_V2",
	"PC_NTE",
	"PC_V2",
	"GC_NTE",
	"GC_V3",
	"GC_EP3_NTE",
	"GC_EP3",
	"XB_V3",
	"BB_V4",
}

// buildAliases CLIで受け付ける別名
var buildAliases = map[string]Build{
	"dc-nte":     DCNTE,
	"dc-11-2000": DC112000,
	"dc-proto":   DC112000,
	"dc-v1":      DCV1,
	"dc-v2":      DCV2,
	"pc-nte":     PCNTE,
	"pc-v2":      PCV2,
	"pc":         PCV2,
	"gc-nte":     GCNTE,
	"gc-v3":      GCV3,
	"gc":         GCV3,
	"gc-ep3-nte": GCEp3NTE,
	"gc-ep3":     GCEp3,
	"xb-v3":      XBV3,
	"xb":         XBV3,
	"bb-v4":      BBV4,
	"bb":         BBV4,
}

// String returns the canonical build name as it appears in .version directives.
func (b Build) String() string {
	if b < 0 || b >= numBuilds {
		return fmt.Sprintf("Build(%d)", int(b))
	}
	return buildNames[b]
}

// Parse resolves a build name. Canonical names are matched case-insensitively
// and short aliases like "gc-v3" or "bb" are also accepted.
func Parse(name string) (Build, error) {
	for b, n := range buildNames {
		if strings.EqualFold(name, n) {
			return Build(b), nil
		}
	}
	if b, ok := buildAliases[strings.ToLower(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown build name: %s", name)
}

// All returns every supported build.
func All() []Build {
	builds := make([]Build, numBuilds)
	for z := range builds {
		builds[z] = Build(z)
	}
	return builds
}

// Flag returns the version bit for this build in opcode-definition flags.
// The lowest two bits of the flag word are reserved, so the first build
// occupies bit 2.
func (b Build) Flag() uint16 {
	return 1 << (uint(b) + 2)
}

// UsesUTF16 reports whether the build stores text as UTF-16LE. The other
// builds use byte encodings (Shift-JIS or ISO-8859-1 depending on language).
func (b Build) UsesUTF16() bool {
	return b == PCNTE || b == PCV2 || b == BBV4
}

// HasArgs reports whether the build uses the push-argument calling
// convention for opcodes flagged as argument consumers.
func (b Build) HasArgs() bool {
	switch b {
	case GCV3, GCEp3NTE, GCEp3, XBV3, BBV4:
		return true
	}
	return false
}

// ClampLanguage resolves the effective language for text decoding. An
// override other than 0xFF always wins; otherwise out-of-range header values
// fall back to 1 (English). DC NTE predates the language field entirely.
func (b Build) ClampLanguage(headerLanguage, override uint8) uint8 {
	if override != 0xFF {
		return override
	}
	switch {
	case b == DCNTE:
		return 0
	case b == BBV4:
		return 1
	case b == PCNTE || b == PCV2:
		if headerLanguage < 8 {
			return headerLanguage
		}
		return 1
	default:
		if headerLanguage < 5 {
			return headerLanguage
		}
		return 1
	}
}

// Arch is a native instruction set targeted by .include_native.
type Arch int

const (
	ArchNone Arch = iota
	ArchSH4
	ArchPPC32
	ArchX86
)

func (a Arch) String() string {
	switch a {
	case ArchSH4:
		return "SH-4"
	case ArchPPC32:
		return "PowerPC"
	case ArchX86:
		return "x86"
	}
	return "none"
}

// NativeArch returns the CPU architecture of the build's host console.
// PC and BB quests never embed native code.
func (b Build) NativeArch() Arch {
	switch b {
	case DCNTE, DC112000, DCV1, DCV2:
		return ArchSH4
	case GCNTE, GCV3, GCEp3NTE, GCEp3:
		return ArchPPC32
	case XBV3:
		return ArchX86
	}
	return ArchNone
}
