package native

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zurustar/questscript/pkg/version"
)

type fakeAssembler struct {
	source string
	offset uint32
	output []byte
}

func (f *fakeAssembler) Assemble(source string, startOffset uint32) ([]byte, error) {
	f.source = source
	f.offset = startOffset
	return f.output, nil
}

func TestAssembleDispatch(t *testing.T) {
	fake := &fakeAssembler{output: []byte{0xDE, 0xAD}}
	Register(version.ArchSH4, fake)
	defer Register(version.ArchSH4, nil)

	code, err := Assemble(version.DCV2, "mov r0, r1", 0x40)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if !bytes.Equal(code, fake.output) {
		t.Errorf("code = % X, want % X", code, fake.output)
	}
	if fake.source != "mov r0, r1" || fake.offset != 0x40 {
		t.Errorf("backend received (%q, %#x)", fake.source, fake.offset)
	}
}

func TestAssembleNoBackend(t *testing.T) {
	_, err := Assemble(version.GCV3, "nop", 0)
	if err == nil || !strings.Contains(err.Error(), "no PowerPC assembler") {
		t.Errorf("expected missing backend error, got %v", err)
	}
}

func TestAssembleNoNativeCode(t *testing.T) {
	_, err := Assemble(version.BBV4, "nop", 0)
	if err == nil || !strings.Contains(err.Error(), "cannot contain native code") {
		t.Errorf("expected no-arch error, got %v", err)
	}
}
