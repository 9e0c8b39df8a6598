package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zurustar/questscript/pkg/asm"
	"github.com/zurustar/questscript/pkg/version"
)

func mustAssemble(t *testing.T, source string) []byte {
	t.Helper()
	res, err := asm.Assemble(source, asm.Options{})
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	return res.Data
}

func TestDisassembleAnnotated(t *testing.T) {
	source := strings.Join([]string{
		".version BB_V4",
		".quest_num 1",
		`.name "anno"`,
		"start:",
		"se 0x104",
		`window_msg "hi"`,
		"jmp fin",
		"fin@1:",
		"ret",
	}, "\n")
	data := mustAssemble(t, source)

	out, err := Disassemble(data, Options{Build: version.BBV4, OverrideLanguage: 0xFF})
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}

	checks := []struct {
		name     string
		expected string
	}{
		{name: "バージョン指令", expected: ".version BB_V4"},
		{name: "クエスト番号", expected: ".quest_num 1"},
		{name: "startラベル", expected: "\nstart:\n"},
		{name: "プッシュ命令", expected: "arg_pushw"},
		{name: "スタック引数の復元", expected: "0x104 /* 260 */"},
		{name: "文字列引数の復元", expected: `"hi"`},
		{name: "ラベル参照のオフセット", expected: "label0001 /* 000F */"},
		{name: "参照元の注記", expected: "// Referenced by instruction at 000C"},
		{name: "オフセットとバイト列", expected: "  0000  4B0401 "},
	}
	for _, tt := range checks {
		if !strings.Contains(out, tt.expected) {
			t.Errorf("%s: output does not contain %q:\n%s", tt.name, tt.expected, out)
		}
	}
}

func TestDisassembleQEditNames(t *testing.T) {
	source := strings.Join([]string{
		".version DC_V2",
		".quest_num 1",
		`.name "qedit"`,
		"start:",
		"jmp_eq r1, r2, start",
		"ret",
	}, "\n")
	data := mustAssemble(t, source)

	out, err := Disassemble(data, Options{Build: version.DCV2, OverrideLanguage: 0xFF, UseQEditNames: true})
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if !strings.Contains(out, "jmp_=") {
		t.Errorf("output does not use the alternate mnemonic:\n%s", out)
	}
}

func TestDisassembleDataRegion(t *testing.T) {
	source := strings.Join([]string{
		".version BB_V4",
		".quest_num 1",
		`.name "data"`,
		"start:",
		"arg_pusho chunk",
		"ret",
		"chunk@1:",
		".data 0102030405060708",
	}, "\n")
	data := mustAssemble(t, source)

	out, err := Disassemble(data, Options{Build: version.BBV4, OverrideLanguage: 0xFF, ReassemblyMode: true})
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if !strings.Contains(out, ".data 0102030405060708") {
		t.Errorf("output does not carry the data region:\n%s", out)
	}
	if !strings.Contains(out, "label0001@0x0001:") {
		t.Errorf("output does not name the data label:\n%s", out)
	}
}

func TestReassemblyRoundTrip(t *testing.T) {
	source := strings.Join([]string{
		".version BB_V4",
		".quest_num 7",
		".episode Episode1",
		`.name "roundtrip"`,
		"start:",
		"arg_pusho chunk",
		"se 0x104",
		`window_msg "hi"`,
		"jmp fin",
		"fin@1:",
		"ret",
		"chunk@2:",
		".data 0102030405060708",
	}, "\n")
	first := mustAssemble(t, source)

	listing, err := Disassemble(first, Options{Build: version.BBV4, OverrideLanguage: 0xFF, ReassemblyMode: true})
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}

	second := mustAssemble(t, listing)
	if !bytes.Equal(first, second) {
		t.Errorf("reassembled file differs from the original (%d vs %d bytes)", len(first), len(second))
	}

	relisting, err := Disassemble(second, Options{Build: version.BBV4, OverrideLanguage: 0xFF, ReassemblyMode: true})
	if err != nil {
		t.Fatalf("Disassemble of reassembled file returned error: %v", err)
	}
	if listing != relisting {
		t.Errorf("listings differ after a round trip:\n--- first ---\n%s\n--- second ---\n%s", listing, relisting)
	}
}

func TestDisassembleTwoByteOpcode(t *testing.T) {
	source := strings.Join([]string{
		".version DC_V2",
		".quest_num 1",
		`.name "twobyte"`,
		"start:",
		"get_difficulty_level_v2 r5",
		"ret",
	}, "\n")
	data := mustAssemble(t, source)

	out, err := Disassemble(data, Options{Build: version.DCV2, OverrideLanguage: 0xFF})
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if !strings.Contains(out, "get_difficulty_level_v2") || !strings.Contains(out, "r5") {
		t.Errorf("two-byte opcode was not decoded:\n%s", out)
	}
	if !strings.Contains(out, "F80805") {
		t.Errorf("hex column does not show the two-byte encoding:\n%s", out)
	}
}

func TestUnknownOpcodeRoundTrip(t *testing.T) {
	source := strings.Join([]string{
		".version BB_V4",
		".quest_num 1",
		`.name "unknown"`,
		"start:",
		".unknown 00A7",
		"ret",
	}, "\n")
	first := mustAssemble(t, source)

	listing, err := Disassemble(first, Options{Build: version.BBV4, OverrideLanguage: 0xFF, ReassemblyMode: true})
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if !strings.Contains(listing, ".unknown 00A7") {
		t.Fatalf("listing does not preserve the unknown opcode:\n%s", listing)
	}

	second := mustAssemble(t, listing)
	if !bytes.Equal(first, second) {
		t.Errorf("reassembled file differs from the original (%d vs %d bytes)", len(first), len(second))
	}
}

func TestDisassembleTruncatedHeader(t *testing.T) {
	_, err := Disassemble(make([]byte, 0x10), Options{Build: version.BBV4, OverrideLanguage: 0xFF})
	if err == nil {
		t.Error("expected an error for a truncated file")
	}
}
