package opcode

import (
	"testing"

	"github.com/zurustar/questscript/pkg/version"
)

func TestForBuild(t *testing.T) {
	tests := []struct {
		name     string
		build    version.Build
		opcode   uint16
		expected string
		missing  bool
	}{
		{name: "共通オペコード", build: version.DCV2, opcode: 0x0000, expected: "nop"},
		{name: "V2までの変種", build: version.DCV2, opcode: 0x000A, expected: "leta"},
		{name: "V3以降の変種", build: version.BBV4, opcode: 0x000A, expected: "letb"},
		{name: "2バイトオペコード", build: version.BBV4, opcode: 0xF8BC, expected: "set_episode"},
		{name: "V2には存在しない2バイトオペコード", build: version.DCV2, opcode: 0xF8BC, missing: true},
		{name: "V3専用のスタック操作", build: version.DCNTE, opcode: 0x0048, missing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := ForBuild(tt.build)[tt.opcode]
			if tt.missing {
				if def != nil {
					t.Errorf("opcode %04X on %v = %v, want none", tt.opcode, tt.build, def)
				}
				return
			}
			if def == nil {
				t.Fatalf("opcode %04X not defined on %v", tt.opcode, tt.build)
			}
			if def.Name != tt.expected {
				t.Errorf("opcode %04X on %v = %s, want %s", tt.opcode, tt.build, def.Name, tt.expected)
			}
		})
	}
}

func TestByNameForBuild(t *testing.T) {
	tests := []struct {
		name     string
		build    version.Build
		mnemonic string
		opcode   uint16
		missing  bool
	}{
		{name: "正式名称", build: version.BBV4, mnemonic: "jmp_eq", opcode: 0x002C},
		{name: "qedit名", build: version.BBV4, mnemonic: "jmp_=", opcode: 0x002C},
		{name: "ビルドで名前が変わるオペコード", build: version.DCV2, mnemonic: "leta", opcode: 0x000A},
		{name: "V3以降のleta", build: version.BBV4, mnemonic: "leta", opcode: 0x000C},
		{name: "存在しない名前", build: version.BBV4, mnemonic: "frobnicate", missing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := ByNameForBuild(tt.build)[tt.mnemonic]
			if tt.missing {
				if def != nil {
					t.Errorf("mnemonic %q on %v = %v, want none", tt.mnemonic, tt.build, def)
				}
				return
			}
			if def == nil {
				t.Fatalf("mnemonic %q not defined on %v", tt.mnemonic, tt.build)
			}
			if def.Opcode != tt.opcode {
				t.Errorf("mnemonic %q on %v = %04X, want %04X", tt.mnemonic, tt.build, def.Opcode, tt.opcode)
			}
		})
	}
}

// TestTableConsistency builds every per-build index, which panics if the
// table contains duplicate opcode numbers or names within one build.
func TestTableConsistency(t *testing.T) {
	for _, b := range version.All() {
		byOp := ForBuild(b)
		byNm := ByNameForBuild(b)
		if len(byOp) == 0 {
			t.Errorf("build %v has no opcodes", b)
		}
		for op, def := range byOp {
			if def.Opcode != op {
				t.Errorf("build %v: index key %04X does not match definition %v", b, op, def)
			}
			if byNm[def.Name] == nil {
				t.Errorf("build %v: opcode %v missing from name index", b, def)
			}
		}
	}
}

func TestControlFlowFlags(t *testing.T) {
	bb := ForBuild(version.BBV4)
	if def := bb[0x0001]; def == nil || def.Flags&FRet == 0 {
		t.Error("ret should carry the return flag")
	}
	if def := bb[0xF8BC]; def == nil || def.Flags&FSetEpisode == 0 {
		t.Error("set_episode should carry the episode flag")
	}
	for op := uint16(0x0048); op <= 0x004E; op++ {
		def := bb[op]
		if def == nil || def.Flags&FPass == 0 {
			t.Errorf("arg push opcode %04X should carry the pass flag", op)
		}
	}
}
