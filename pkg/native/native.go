// Package native dispatches .include_native directives to an architecture
// assembler. No assembler backends ship with this module; the registry
// exists so one can be plugged in at build time.
package native

import (
	"fmt"
	"sync"

	"github.com/zurustar/questscript/pkg/version"
)

// Assembler turns architecture assembly text into machine code placed at
// the given code offset.
type Assembler interface {
	Assemble(source string, startOffset uint32) ([]byte, error)
}

var (
	mu       sync.RWMutex
	backends = make(map[version.Arch]Assembler)
)

// Register installs an assembler for an architecture. Later registrations
// replace earlier ones.
func Register(a version.Arch, asm Assembler) {
	mu.Lock()
	defer mu.Unlock()
	backends[a] = asm
}

// Assemble compiles native source for the build's target architecture.
func Assemble(b version.Build, source string, startOffset uint32) ([]byte, error) {
	arch := b.NativeArch()
	if arch == version.ArchNone {
		return nil, fmt.Errorf("%s quests cannot contain native code", b)
	}
	mu.RLock()
	asm := backends[arch]
	mu.RUnlock()
	if asm == nil {
		return nil, fmt.Errorf("no %s assembler is available", arch)
	}
	return asm.Assemble(source, startOffset)
}
