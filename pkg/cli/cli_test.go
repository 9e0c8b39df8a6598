package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zurustar/questscript/pkg/asm"
)

const questSource = `.version BB_V4
.quest_num 1
.name "cli test"
start:
se 0x104
ret
`

func TestAssembleCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "quest.s")
	output := filepath.Join(dir, "quest.out")
	if err := os.WriteFile(input, []byte(questSource), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Execute([]string{"assemble", "-o", output, input}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	expected, err := asm.Assemble(questSource, asm.Options{})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, expected.Data) {
		t.Errorf("command output differs from direct assembly (%d vs %d bytes)", len(data), len(expected.Data))
	}
}

func TestAssembleCommandDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "quest.s")
	if err := os.WriteFile(input, []byte(questSource), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Execute([]string{"asm", input}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	// The default output file replaces the source extension.
	if _, err := os.Stat(filepath.Join(dir, "quest.bin")); err != nil {
		t.Errorf("default output file was not written: %v", err)
	}
}

func TestDisassembleCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "quest.bin")
	output := filepath.Join(dir, "quest.s")

	res, err := asm.Assemble(questSource, asm.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(input, res.Data, 0644); err != nil {
		t.Fatal(err)
	}

	if err := Execute([]string{"disassemble", "-v", "bb-v4", "-o", output, input}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	listing, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	text := string(listing)
	if !strings.Contains(text, ".version BB_V4") || !strings.Contains(text, "start:") {
		t.Errorf("listing is missing expected content:\n%s", text)
	}
}

func TestDisassembleReassemblyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "quest.bin")
	listingPath := filepath.Join(dir, "quest.s")
	rebuiltPath := filepath.Join(dir, "rebuilt.bin")

	res, err := asm.Assemble(questSource, asm.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(binPath, res.Data, 0644); err != nil {
		t.Fatal(err)
	}

	if err := Execute([]string{"dasm", "-v", "bb-v4", "-r", "-o", listingPath, binPath}); err != nil {
		t.Fatalf("disassemble: %v", err)
	}
	if err := Execute([]string{"assemble", "-o", rebuiltPath, listingPath}); err != nil {
		t.Fatalf("assemble: %v", err)
	}

	rebuilt, err := os.ReadFile(rebuiltPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rebuilt, res.Data) {
		t.Errorf("rebuilt file differs from the original (%d vs %d bytes)", len(rebuilt), len(res.Data))
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "バージョン指定が無い", args: []string{"disassemble", "input.bin"}},
		{name: "不明なバージョン", args: []string{"disassemble", "-v", "dreamcast", "input.bin"}},
		{name: "入力ファイルが無い", args: []string{"disassemble", "-v", "bb-v4", "no-such-file.bin"}},
		{name: "不明なサブコマンド", args: []string{"frobnicate"}},
		{name: "入力ファイルの指定が無い", args: []string{"assemble"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Execute(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "banana")
	if err := Execute([]string{"assemble", "input.s"}); err == nil {
		t.Error("expected an error for an invalid LOG_LEVEL value")
	}
}

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "quest.s", expected: "quest.bin"},
		{input: "dir/quest.txt", expected: "dir/quest.bin"},
		{input: "noext", expected: "noext.bin"},
	}
	for _, tt := range tests {
		if got := replaceExtension(tt.input, ".bin"); got != tt.expected {
			t.Errorf("replaceExtension(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
