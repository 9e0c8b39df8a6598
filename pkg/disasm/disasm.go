// Package disasm renders compiled quest files as assembly text. Two output
// modes are supported: annotated listings with offsets, raw bytes, and data
// interpretations, and reassembly listings that round-trip through the
// assembler.
package disasm

import (
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/zurustar/questscript/pkg/binio"
	"github.com/zurustar/questscript/pkg/gamedata"
	"github.com/zurustar/questscript/pkg/header"
	"github.com/zurustar/questscript/pkg/opcode"
	"github.com/zurustar/questscript/pkg/prs"
	"github.com/zurustar/questscript/pkg/text"
	"github.com/zurustar/questscript/pkg/version"
)

// Options control how a quest file is rendered.
type Options struct {
	Build version.Build
	// OverrideLanguage replaces the header language when not 0xFF.
	OverrideLanguage uint8
	// ReassemblyMode drops annotations so the output can be assembled again.
	ReassemblyMode bool
	// UseQEditNames prefers the alternate mnemonics where they exist.
	UseQEditNames bool
}

type label struct {
	name      string
	offset    uint32
	id        uint32
	typeFlags uint64
	refs      map[int]struct{}
}

func (l *label) addType(dt opcode.DataType) {
	l.typeFlags |= 1 << uint(dt)
}

func (l *label) hasType(dt opcode.DataType) bool {
	return l.typeFlags&(1<<uint(dt)) != 0
}

func (l *label) addRef(off int) {
	if l.refs == nil {
		l.refs = make(map[int]struct{})
	}
	l.refs[off] = struct{}{}
}

type stackValType int

const (
	stackReg stackValType = iota
	stackRegPtr
	stackLabel
	stackInt
	stackCString
)

type stackVal struct {
	t stackValType
	i uint32
	s string
}

type dasmLine struct {
	text string
	next int
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

func hexString(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

func formatFloat(v float32) string {
	return gamedata.FormatFloat(v)
}

// Disassemble renders a compiled quest file as assembly text.
func Disassemble(data []byte, opts Options) (string, error) {
	b := opts.Build
	m, err := header.Parse(b, data, opts.OverrideLanguage)
	if err != nil {
		return "", err
	}
	lines := header.Directives(m)

	codeOffset := int(m.CodeOffset)
	fto := int(m.FunctionTableOffset)
	if codeOffset > len(data) || fto < codeOffset {
		return "", fmt.Errorf("invalid code region %#x..%#x in %d byte file", codeOffset, fto, len(data))
	}
	if fto > len(data) {
		fto = len(data)
	}
	cmd := data[codeOffset:fto]

	useWstrs := b.UsesUTF16()
	table := opcode.ForBuild(b)
	versionHasArgs := b.HasArgs()

	// Function table
	var functionTable []*label
	for off := fto; off+4 <= len(data); off += 4 {
		id := uint32(len(functionTable))
		name := "start"
		if id != 0 {
			name = fmt.Sprintf("label%04X", id)
		}
		labelOffset := uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16 | uint32(data[off+3])<<24
		l := &label{name: name, offset: labelOffset, id: id}
		if id == 0 {
			l.addType(opcode.DataScript)
		}
		functionTable = append(functionTable, l)
	}

	var placed []*label
	for _, l := range functionTable {
		if int(l.offset) < len(cmd) {
			placed = append(placed, l)
		}
	}
	sort.SliceStable(placed, func(i, j int) bool { return placed[i].offset < placed[j].offset })

	pending := make(map[int]bool)
	for _, l := range placed {
		pending[int(l.offset)] = true
	}

	dasmLines := make(map[int]dasmLine)

	decodeLabelArg := func(r *binio.Reader, arg opcode.Arg, def *opcode.Def, opStart int, stack *[]stackVal) (string, error) {
		var labelID uint32
		if arg.Type == opcode.Label32 {
			v, err := r.U32()
			if err != nil {
				return "", err
			}
			labelID = v
		} else {
			v, err := r.U16()
			if err != nil {
				return "", err
			}
			labelID = uint32(v)
		}
		if def.Flags&opcode.FPass != 0 {
			*stack = append(*stack, stackVal{t: stackLabel, i: labelID})
		}
		if int(labelID) >= len(functionTable) {
			return fmt.Sprintf("label%04X", labelID), nil
		}
		l := functionTable[labelID]
		l.addRef(opStart)
		l.addType(arg.Data)
		if arg.Data == opcode.DataScript && int(l.offset) < len(cmd) {
			if !dasmLinesHas(dasmLines, int(l.offset)) {
				pending[int(l.offset)] = true
			}
		}
		if opts.ReassemblyMode {
			return fmt.Sprintf("label%04X", labelID), nil
		}
		return fmt.Sprintf("label%04X /* %04X */", labelID, l.offset), nil
	}

	decodeInline := func(r *binio.Reader, def *opcode.Def, opStart int, stack *[]stackVal) (string, error) {
		line := pad(displayName(def, opts.UseQEditNames), 0x20)
		for argIndex, arg := range def.Args {
			var rendered string
			switch arg.Type {
			case opcode.Label16, opcode.Label32:
				s, err := decodeLabelArg(r, arg, def, opStart, stack)
				if err != nil {
					return "", err
				}
				rendered = s

			case opcode.Label16Set:
				count, err := r.U8()
				if err != nil {
					return "", err
				}
				var sb strings.Builder
				for z := 0; z < int(count); z++ {
					if sb.Len() == 0 {
						sb.WriteString("[")
					} else {
						sb.WriteString(", ")
					}
					v, err := r.U16()
					if err != nil {
						return "", err
					}
					labelID := uint32(v)
					if int(labelID) >= len(functionTable) {
						fmt.Fprintf(&sb, "label%04X", labelID)
						continue
					}
					l := functionTable[labelID]
					if opts.ReassemblyMode {
						fmt.Fprintf(&sb, "label%04X", labelID)
					} else {
						fmt.Fprintf(&sb, "label%04X /* %04X */", labelID, l.offset)
					}
					l.addRef(opStart)
					l.addType(arg.Data)
					if arg.Data == opcode.DataScript && int(l.offset) < len(cmd) {
						if !dasmLinesHas(dasmLines, int(l.offset)) {
							pending[int(l.offset)] = true
						}
					}
				}
				if sb.Len() == 0 {
					rendered = "[]"
				} else {
					rendered = sb.String() + "]"
				}

			case opcode.Reg:
				v, err := r.U8()
				if err != nil {
					return "", err
				}
				if def.Flags&opcode.FPass != 0 {
					t := stackReg
					if def.Opcode == 0x004C {
						t = stackRegPtr
					}
					*stack = append(*stack, stackVal{t: t, i: uint32(v)})
				}
				rendered = fmt.Sprintf("r%d", v)

			case opcode.Reg32:
				v, err := r.U32()
				if err != nil {
					return "", err
				}
				rendered = fmt.Sprintf("r%d", v)

			case opcode.RegSet:
				count, err := r.U8()
				if err != nil {
					return "", err
				}
				var sb strings.Builder
				for z := 0; z < int(count); z++ {
					v, err := r.U8()
					if err != nil {
						return "", err
					}
					if sb.Len() == 0 {
						fmt.Fprintf(&sb, "[r%d", v)
					} else {
						fmt.Fprintf(&sb, ", r%d", v)
					}
				}
				if sb.Len() == 0 {
					rendered = "[]"
				} else {
					rendered = sb.String() + "]"
				}

			case opcode.RegSetFixed:
				first, err := r.U8()
				if err != nil {
					return "", err
				}
				rendered = fmt.Sprintf("r%d-r%d", first, uint8(int(first)+arg.Count-1))

			case opcode.Reg32SetFixed:
				first, err := r.U32()
				if err != nil {
					return "", err
				}
				rendered = fmt.Sprintf("r%d-r%d", first, first+uint32(arg.Count)-1)

			case opcode.Int8:
				v, err := r.U8()
				if err != nil {
					return "", err
				}
				if def.Flags&opcode.FPass != 0 {
					*stack = append(*stack, stackVal{t: stackInt, i: uint32(v)})
				}
				rendered = fmt.Sprintf("0x%02X", v)

			case opcode.Int16:
				v, err := r.U16()
				if err != nil {
					return "", err
				}
				if def.Flags&opcode.FPass != 0 {
					*stack = append(*stack, stackVal{t: stackInt, i: uint32(v)})
				}
				rendered = fmt.Sprintf("0x%04X", v)

			case opcode.Int32:
				v, err := r.U32()
				if err != nil {
					return "", err
				}
				if def.Flags&opcode.FPass != 0 {
					*stack = append(*stack, stackVal{t: stackInt, i: v})
				}
				rendered = fmt.Sprintf("0x%08X", v)

			case opcode.Float32:
				v, err := r.F32()
				if err != nil {
					return "", err
				}
				if def.Flags&opcode.FPass != 0 {
					*stack = append(*stack, stackVal{t: stackInt, i: math.Float32bits(v)})
				}
				rendered = formatFloat(v)

			case opcode.CString:
				var raw []byte
				var err error
				if useWstrs {
					raw, err = r.WString()
				} else {
					raw, err = r.CString()
				}
				if err != nil {
					return "", err
				}
				s, err := text.Decode(b, m.Language, raw)
				if err != nil {
					return "", err
				}
				if def.Flags&opcode.FPass != 0 {
					*stack = append(*stack, stackVal{t: stackCString, s: s})
				}
				rendered = text.Escape(s)
			}

			if argIndex > 0 {
				line += ", "
			}
			line += rendered
		}
		return line, nil
	}

	renderPushedArgs := func(def *opcode.Def, opStart int, stack []stackVal) string {
		line := pad(displayName(def, opts.UseQEditNames), 0x20) + "... "
		if len(def.Args) != len(stack) {
			return line + fmt.Sprintf("/* matching error: expected %d arguments, received %d arguments */",
				len(def.Args), len(stack))
		}
		for z, argDef := range def.Args {
			v := stack[z]
			var rendered string
			switch argDef.Type {
			case opcode.Label16, opcode.Label32:
				switch v.t {
				case stackReg:
					rendered = fmt.Sprintf("r%d/* warning: cannot determine label data type */", v.i)
				case stackLabel, stackInt:
					rendered = fmt.Sprintf("label%04X", v.i)
					if int(v.i) < len(functionTable) {
						l := functionTable[v.i]
						l.addType(argDef.Data)
						l.addRef(opStart)
					}
				default:
					rendered = "/* invalid-type */"
				}
			case opcode.Reg, opcode.Reg32:
				switch v.t {
				case stackReg:
					rendered = fmt.Sprintf("regs[r%d]", v.i)
				case stackInt:
					rendered = fmt.Sprintf("r%d", v.i)
				default:
					rendered = "/* invalid-type */"
				}
			case opcode.RegSetFixed, opcode.Reg32SetFixed:
				switch v.t {
				case stackReg:
					rendered = fmt.Sprintf("regs[r%d]-regs[r%d+%d]", v.i, v.i, argDef.Count-1)
				case stackInt:
					rendered = fmt.Sprintf("r%d-r%d", v.i, uint8(int(v.i)+argDef.Count-1))
				default:
					rendered = "/* invalid-type */"
				}
			case opcode.Int8, opcode.Int16, opcode.Int32:
				switch v.t {
				case stackReg:
					rendered = fmt.Sprintf("r%d", v.i)
				case stackRegPtr:
					rendered = fmt.Sprintf("&r%d", v.i)
				case stackInt:
					rendered = fmt.Sprintf("0x%X /* %d */", v.i, v.i)
				default:
					rendered = "/* invalid-type */"
				}
			case opcode.Float32:
				switch v.t {
				case stackReg:
					rendered = fmt.Sprintf("f%d", v.i)
				case stackInt:
					rendered = formatFloat(math.Float32frombits(v.i))
				default:
					rendered = "/* invalid-type */"
				}
			case opcode.CString:
				if v.t == stackCString {
					rendered = text.Escape(v.s)
				} else {
					rendered = "/* invalid-type */"
				}
			default:
				rendered = "/* invalid-type */"
			}
			if z > 0 {
				line += ", "
			}
			line += rendered
		}
		return line
	}

	for len(pending) > 0 {
		start := -1
		for off := range pending {
			if start < 0 || off < start {
				start = off
			}
		}
		delete(pending, start)

		r := binio.NewReader(cmd)
		if err := r.Go(start); err != nil {
			continue
		}
		var stack []stackVal
		for !r.EOF() && !dasmLinesHas(dasmLines, r.Where()) {
			opStart := r.Where()
			var line string

			op, def, err := readOpcode(r, table)
			if err != nil {
				line = fmt.Sprintf(".failed (%s)", err)
			} else if def == nil {
				line = fmt.Sprintf(".unknown %04X", op)
			} else if !versionHasArgs || def.Flags&opcode.FArgs == 0 {
				line, err = decodeInline(r, def, opStart, &stack)
				if err != nil {
					line = fmt.Sprintf(".failed (%s)", err)
				}
			} else if opts.ReassemblyMode {
				line = pad(displayName(def, opts.UseQEditNames), 0x20) + "..."
			} else {
				line = renderPushedArgs(def, opStart, stack)
			}
			if def != nil && def.Flags&opcode.FPass == 0 {
				stack = stack[:0]
			}
			line = strings.TrimRight(line, " ")

			var rendered string
			if opts.ReassemblyMode {
				rendered = "  " + line
			} else {
				hexData := hexString(cmd[opStart:r.Where()])
				if len(hexData) > 14 {
					hexData = hexData[:12] + "..."
				}
				rendered = fmt.Sprintf("  %04X  %s  %s", opStart, pad(hexData, 16), line)
			}
			dasmLines[opStart] = dasmLine{text: rendered, next: r.Where()}
			if err != nil {
				break
			}
		}
	}

	appendCode := func(dst []string, start, size int) []string {
		for z := start; z < start+size; {
			dl, ok := dasmLines[z]
			if !ok || dl.next <= z {
				break
			}
			dst = append(dst, dl.text)
			z = dl.next
		}
		return dst
	}

	for i, l := range placed {
		off := int(l.offset)
		end := len(cmd)
		if i+1 < len(placed) {
			end = int(placed[i+1].offset)
		}
		size := end - off
		region := cmd[off : off+size]

		if size > 0 {
			lines = append(lines, "")
		}
		if opts.ReassemblyMode {
			lines = append(lines, fmt.Sprintf("%s@0x%04X:", l.name, l.id))
		} else {
			lines = append(lines, l.name+":")
			if len(l.refs) > 0 {
				refs := make([]int, 0, len(l.refs))
				for ref := range l.refs {
					refs = append(refs, ref)
				}
				sort.Ints(refs)
				if len(refs) == 1 {
					lines = append(lines, fmt.Sprintf("  // Referenced by instruction at %04X", refs[0]))
				} else {
					tokens := make([]string, len(refs))
					for z, ref := range refs {
						tokens[z] = fmt.Sprintf("%04X", ref)
					}
					lines = append(lines, "  // Referenced by instructions at "+strings.Join(tokens, ", "))
				}
			}
		}

		if l.typeFlags == 0 {
			lines = append(lines, "  // Could not determine data type; disassembling as code")
			l.addType(opcode.DataScript)
		}

		if opts.ReassemblyMode {
			if l.hasType(opcode.DataScript) {
				lines = appendCode(lines, off, size)
			} else {
				lines = append(lines, ".data "+hexString(region))
			}
			continue
		}

		if l.hasType(opcode.DataRaw) {
			lines = append(lines, fmt.Sprintf("  // As raw data (0x%X bytes)", size))
			lines = append(lines, gamedata.Hexdump(region, off)...)
		}
		if l.hasType(opcode.DataCString) {
			lines = append(lines, fmt.Sprintf("  // As C string (0x%X bytes)", size))
			strData := region
			for len(strData) > 0 && strData[len(strData)-1] == 0 {
				strData = strData[:len(strData)-1]
			}
			if useWstrs && len(strData)%2 != 0 {
				strData = append(append([]byte(nil), strData...), 0)
			}
			s, err := text.Decode(b, m.Language, strData)
			if err != nil {
				return "", fmt.Errorf("decode string at %04X: %w", off, err)
			}
			lines = append(lines, fmt.Sprintf("  %04X  %s", off, text.Escape(s)))
		}

		dumpStruct := func(dt opcode.DataType, structSize int, dump func([]byte) ([]string, error)) error {
			if !l.hasType(dt) {
				return nil
			}
			if size < structSize {
				lines = append(lines, fmt.Sprintf("  // As raw data (0x%X bytes; too small for referenced type)", size))
				lines = append(lines, gamedata.Hexdump(region, off)...)
				return nil
			}
			structLines, err := dump(region[:structSize])
			if err != nil {
				return err
			}
			lines = append(lines, structLines...)
			if size > structSize {
				lines = append(lines, "  // Extra data after structure")
				lines = append(lines, gamedata.Hexdump(region[structSize:], off+structSize)...)
			}
			return nil
		}

		structErr := dumpStruct(opcode.DataPlayerVisualConfig, gamedata.PlayerVisualConfigSize, func(raw []byte) ([]string, error) {
			v, err := gamedata.ParsePlayerVisualConfig(raw)
			if err != nil {
				return nil, err
			}
			return v.Dump(off), nil
		})
		if structErr == nil {
			structErr = dumpStruct(opcode.DataPlayerStats, gamedata.PlayerStatsSize, func(raw []byte) ([]string, error) {
				v, err := gamedata.ParsePlayerStats(raw)
				if err != nil {
					return nil, err
				}
				return v.Dump(off), nil
			})
		}
		if structErr == nil {
			structErr = dumpStruct(opcode.DataResistData, gamedata.ResistDataSize, func(raw []byte) ([]string, error) {
				v, err := gamedata.ParseResistData(raw)
				if err != nil {
					return nil, err
				}
				return v.Dump(off), nil
			})
		}
		if structErr == nil {
			structErr = dumpStruct(opcode.DataAttackData, gamedata.AttackDataSize, func(raw []byte) ([]string, error) {
				v, err := gamedata.ParseAttackData(raw)
				if err != nil {
					return nil, err
				}
				return v.Dump(off), nil
			})
		}
		if structErr == nil {
			structErr = dumpStruct(opcode.DataMovementData, gamedata.MovementDataSize, func(raw []byte) ([]string, error) {
				v, err := gamedata.ParseMovementData(raw)
				if err != nil {
					return nil, err
				}
				return v.Dump(off), nil
			})
		}
		if structErr != nil {
			return "", fmt.Errorf("dump structure at %04X: %w", off, structErr)
		}

		if l.hasType(opcode.DataImageData) {
			decompressed, used, err := prs.Decompress(region)
			if err != nil {
				return "", fmt.Errorf("decompress image data at %04X: %w", off, err)
			}
			lines = append(lines, fmt.Sprintf("  // As decompressed image data (0x%X bytes)", len(decompressed)))
			lines = append(lines, gamedata.Hexdump(decompressed, 0)...)
			if used < size {
				lines = append(lines, "  // Extra data after compressed data")
				lines = append(lines, gamedata.Hexdump(region[used:], off+used)...)
			}
		}
		if l.hasType(opcode.DataF8F2Entries) {
			lines = append(lines, "  // As F8F2 entries")
			z := 0
			for ; z+gamedata.F8F2EntrySize <= size; z += gamedata.F8F2EntrySize {
				e, err := gamedata.ParseF8F2Entry(region[z : z+gamedata.F8F2EntrySize])
				if err != nil {
					return "", fmt.Errorf("parse entry at %04X: %w", off+z, err)
				}
				lines = append(lines, e.Dump(off+z))
			}
			if z < size {
				lines = append(lines, "  // Extra data after structures")
				lines = append(lines, gamedata.Hexdump(region[z:], off+z)...)
			}
		}
		if l.hasType(opcode.DataScript) {
			lines = appendCode(lines, off, size)
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n"), nil
}

func dasmLinesHas(m map[int]dasmLine, off int) bool {
	_, ok := m[off]
	return ok
}

func displayName(def *opcode.Def, useQEdit bool) string {
	if useQEdit && def.QEditName != "" {
		return def.QEditName
	}
	return def.Name
}

func readOpcode(r *binio.Reader, table map[uint16]*opcode.Def) (uint16, *opcode.Def, error) {
	first, err := r.U8()
	if err != nil {
		return 0, nil, err
	}
	op := uint16(first)
	if first&0xFE == 0xF8 {
		second, err := r.U8()
		if err != nil {
			return 0, nil, err
		}
		op = op<<8 | uint16(second)
	}
	return op, table[op], nil
}
