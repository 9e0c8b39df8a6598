// Package asm compiles quest assembly text into the binary quest format.
// The input is the output of the disassembler's reassembly mode: metadata
// directives, labels, data directives, and opcode lines.
package asm

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/zurustar/questscript/pkg/binio"
	"github.com/zurustar/questscript/pkg/fileutil"
	"github.com/zurustar/questscript/pkg/header"
	"github.com/zurustar/questscript/pkg/native"
	"github.com/zurustar/questscript/pkg/opcode"
	"github.com/zurustar/questscript/pkg/text"
	"github.com/zurustar/questscript/pkg/version"
)

// Options control where the assembler looks for included files.
type Options struct {
	IncludeDir string
}

// Result is a fully assembled quest file.
type Result struct {
	Data []byte
	Meta *header.Meta
}

type asmLabel struct {
	name   string
	index  int
	offset int
}

// Assemble compiles quest assembly source into a quest file.
func Assemble(source string, opts Options) (*Result, error) {
	rawLines := strings.Split(source, "\n")
	lines := make([]string, len(rawLines))
	for i, line := range rawLines {
		stripped, err := stripComments(line)
		if err != nil {
			return nil, lineError(source, i+1, err)
		}
		lines[i] = strings.TrimSpace(stripped)
	}

	meta, err := collectMetadata(source, lines)
	if err != nil {
		return nil, err
	}
	b := meta.Build

	labelsByName, labelsByIndex, err := collectLabels(source, lines)
	if err != nil {
		return nil, err
	}

	ra := newRegisterAssigner()
	w := binio.NewWriter()
	byName := opcode.ByNameForBuild(b)
	versionHasArgs := b.HasArgs()

	for lineNum := 1; lineNum <= len(lines); lineNum++ {
		line := lines[lineNum-1]
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ":") {
			name := line[:len(line)-1]
			if at := strings.IndexByte(name, '@'); at >= 0 {
				name = name[:at]
			}
			labelsByName[name].offset = w.Len()
			continue
		}

		if strings.HasPrefix(line, ".") {
			if err := assembleDirective(line, w, b, opts.IncludeDir); err != nil {
				return nil, lineError(source, lineNum, err)
			}
			continue
		}

		mnemonic, operands, _ := strings.Cut(line, " ")
		def := byName[mnemonic]
		if def == nil {
			return nil, lineError(source, lineNum, fmt.Errorf("unknown opcode %s", mnemonic))
		}
		useArgs := versionHasArgs && def.Flags&opcode.FArgs != 0

		if !useArgs {
			putOpcode(w, def.Opcode)
		}

		operands = strings.TrimSpace(operands)
		if len(def.Args) == 0 {
			if operands != "" {
				return nil, lineError(source, lineNum, fmt.Errorf("arguments not allowed for %s", def.Name))
			}
			continue
		}
		if operands == "" {
			return nil, lineError(source, lineNum, fmt.Errorf("arguments required for %s", def.Name))
		}

		if strings.HasPrefix(operands, "...") {
			if !useArgs {
				return nil, lineError(source, lineNum, fmt.Errorf("'...' can only be used with push-argument opcodes"))
			}
		} else {
			args := splitArgs(operands)
			if len(args) != len(def.Args) {
				return nil, lineError(source, lineNum, fmt.Errorf("incorrect argument count for %s", def.Name))
			}
			for z := range args {
				arg := strings.TrimSpace(args[z])
				var err error
				if useArgs {
					err = encodePushArg(w, arg, def.Args[z], b, meta.Language, labelsByName, ra)
				} else {
					err = encodeDirectArg(w, arg, def.Args[z], b, meta.Language, labelsByName, ra)
				}
				if err != nil {
					return nil, lineError(source, lineNum, fmt.Errorf("(arg %d) %w", z+1, err))
				}
			}
		}

		if useArgs {
			putOpcode(w, def.Opcode)
		}
	}
	w.Align(4)

	if err := ra.assignAll(); err != nil {
		return nil, err
	}
	for _, reg := range ra.numbered {
		if reg == nil {
			continue
		}
		for _, off := range reg.offsets {
			if err := w.PatchU8(off, uint8(reg.number)); err != nil {
				return nil, err
			}
		}
	}

	maxIndex := -1
	for index := range labelsByIndex {
		if index > maxIndex {
			maxIndex = index
		}
	}
	table := binio.NewWriter()
	for z := 0; z <= maxIndex; z++ {
		l := labelsByIndex[z]
		if l == nil {
			table.PutU32(0xFFFFFFFF)
			continue
		}
		if l.offset < 0 {
			return nil, fmt.Errorf("label %s does not have a valid offset", l.name)
		}
		table.PutU32(uint32(l.offset))
	}

	headerData, err := header.Emit(meta, w.Len(), maxIndex+1)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(headerData)+w.Len()+table.Len())
	out = append(out, headerData...)
	out = append(out, w.Bytes()...)
	out = append(out, table.Bytes()...)
	return &Result{Data: out, Meta: meta}, nil
}

func stripComments(line string) (string, error) {
	for {
		start := strings.Index(line, "/*")
		if start < 0 {
			break
		}
		end := strings.Index(line[start+2:], "*/")
		if end < 0 {
			return "", fmt.Errorf("unterminated inline comment")
		}
		line = line[:start] + line[start+2+end+2:]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return line, nil
}

func collectMetadata(source string, lines []string) (*header.Meta, error) {
	m := &header.Meta{Language: 1, Episode: version.Episode1, MaxPlayers: 4}
	haveVersion := false
	questNum := -1

	for lineNum := 1; lineNum <= len(lines); lineNum++ {
		line := lines[lineNum-1]
		if line == "" || line[0] != '.' {
			continue
		}
		directive, operand, _ := strings.Cut(line, " ")
		operand = strings.TrimSpace(operand)
		var err error
		switch directive {
		case ".version":
			m.Build, err = version.Parse(operand)
			haveVersion = err == nil
		case ".name":
			m.Name, err = parseStringOperand(operand)
		case ".short_desc":
			m.ShortDescription, err = parseStringOperand(operand)
		case ".long_desc":
			m.LongDescription, err = parseStringOperand(operand)
		case ".quest_num":
			var v uint64
			if v, err = strconv.ParseUint(operand, 0, 16); err == nil {
				m.QuestNumber = uint16(v)
				questNum = int(v)
			}
		case ".language":
			var v uint64
			if v, err = strconv.ParseUint(operand, 0, 8); err == nil {
				m.Language = uint8(v)
			}
		case ".episode":
			// Annotations after the episode name are ignored.
			name, _, _ := strings.Cut(operand, " ")
			m.Episode, err = version.ParseEpisode(name)
		case ".max_players":
			var v uint64
			if v, err = strconv.ParseUint(operand, 0, 8); err == nil {
				m.MaxPlayers = uint8(v)
			}
		case ".joinable":
			m.Joinable = true
		}
		if err != nil {
			return nil, lineError(source, lineNum, err)
		}
	}

	if !haveVersion {
		return nil, fmt.Errorf(".version directive is missing or invalid")
	}
	if questNum < 0 {
		return nil, fmt.Errorf(".quest_num directive is missing or invalid")
	}
	if m.Name == "" {
		return nil, fmt.Errorf(".name directive is missing or invalid")
	}
	return m, nil
}

func collectLabels(source string, lines []string) (map[string]*asmLabel, map[int]*asmLabel, error) {
	byName := make(map[string]*asmLabel)
	byIndex := make(map[int]*asmLabel)
	for lineNum := 1; lineNum <= len(lines); lineNum++ {
		line := lines[lineNum-1]
		if !strings.HasSuffix(line, ":") {
			continue
		}
		l := &asmLabel{name: line[:len(line)-1], index: -1, offset: -1}
		if at := strings.IndexByte(l.name, '@'); at >= 0 {
			v, err := strconv.ParseUint(strings.TrimSuffix(l.name[at+1:], ""), 0, 32)
			if err != nil {
				return nil, nil, lineError(source, lineNum, fmt.Errorf("invalid index in label (%v)", err))
			}
			l.index = int(v)
			l.name = l.name[:at]
			if l.name == "start" && l.index != 0 {
				return nil, nil, fmt.Errorf("start label cannot have a nonzero label ID")
			}
		} else if l.name == "start" {
			l.index = 0
		}
		if _, ok := byName[l.name]; ok {
			return nil, nil, lineError(source, lineNum, fmt.Errorf("duplicate label name: %s", l.name))
		}
		byName[l.name] = l
		if l.index >= 0 {
			if other, ok := byIndex[l.index]; ok {
				return nil, nil, lineError(source, lineNum,
					fmt.Errorf("duplicate label index: %d (0x%X) from %s and %s", l.index, l.index, l.name, other.name))
			}
			byIndex[l.index] = l
		}
	}
	if _, ok := byName["start"]; !ok {
		return nil, nil, fmt.Errorf("start label is not defined")
	}

	// Unpinned labels get the lowest free indexes, in name order.
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	nextIndex := 0
	for _, name := range names {
		l := byName[name]
		if l.index >= 0 {
			continue
		}
		for byIndex[nextIndex] != nil {
			nextIndex++
		}
		l.index = nextIndex
		byIndex[nextIndex] = l
		nextIndex++
	}
	return byName, byIndex, nil
}

func assembleDirective(line string, w *binio.Writer, b version.Build, includeDir string) error {
	directive, operand, _ := strings.Cut(line, " ")
	operand = strings.TrimSpace(operand)
	switch directive {
	case ".data":
		data, err := parseDataOperand(operand)
		if err != nil {
			return err
		}
		w.Write(data)
	case ".zero":
		n, err := strconv.ParseUint(operand, 0, 32)
		if err != nil {
			return err
		}
		w.ExtendBy(int(n))
	case ".zero_until":
		n, err := strconv.ParseUint(operand, 0, 32)
		if err != nil {
			return err
		}
		w.ExtendTo(int(n))
	case ".align":
		n, err := strconv.ParseUint(operand, 0, 32)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("invalid alignment")
		}
		w.Align(int(n))
	case ".unknown":
		op, err := strconv.ParseUint(operand, 16, 16)
		if err != nil {
			return fmt.Errorf("invalid opcode value: %s", operand)
		}
		putOpcode(w, uint16(op))
	case ".include_bin":
		data, err := loadInclude(includeDir, operand)
		if err != nil {
			return err
		}
		w.Write(data)
	case ".include_native":
		src, err := loadInclude(includeDir, operand)
		if err != nil {
			return err
		}
		code, err := native.Assemble(b, string(src), uint32(w.Len()))
		if err != nil {
			return err
		}
		w.Write(code)
	}
	return nil
}

func loadInclude(dir, filename string) ([]byte, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		resolved, ferr := fileutil.FindFileCaseInsensitive(dir, filename)
		if ferr != nil {
			return nil, ferr
		}
		path = resolved
	}
	return os.ReadFile(path)
}

func putOpcode(w *binio.Writer, op uint16) {
	if op&0xFF00 == 0 {
		w.PutU8(uint8(op))
	} else {
		w.PutBEU16(op)
	}
}

func encodeCString(w *binio.Writer, arg string, b version.Build, language uint8) error {
	if rest, ok := strings.CutPrefix(arg, "bin:"); ok {
		raw, err := parseDataOperand(rest)
		if err != nil {
			return err
		}
		w.Write(raw)
		if b.UsesUTF16() {
			w.PutU16(0)
		} else {
			w.PutU8(0)
		}
		return nil
	}
	s, err := parseStringOperand(arg)
	if err != nil {
		return err
	}
	data, err := text.EncodeCString(b, language, s)
	if err != nil {
		return err
	}
	w.Write(data)
	return nil
}

func encodePushArg(w *binio.Writer, arg string, argDef opcode.Arg, b version.Build, language uint8, labels map[string]*asmLabel, ra *registerAssigner) error {
	if arg == "" {
		return fmt.Errorf("argument is empty")
	}

	if l, ok := labels[arg]; ok {
		w.PutU8(0x4B) // arg_pushw
		w.PutU16(uint16(l.index))
		return nil
	}

	if arg[0] == 'r' || arg[0] == 'f' || (arg[0] == '(' && arg[len(arg)-1] == ')') {
		// REG and REG_SET_FIXED parameters are out-params, so the register
		// number is pushed rather than the register's value.
		switch argDef.Type {
		case opcode.Reg, opcode.Reg32:
			reg, err := parseReg(ra, arg, true)
			if err != nil {
				return err
			}
			w.PutU8(0x4A) // arg_pushb
			reg.offsets = append(reg.offsets, w.Len())
			w.PutU8(uint8(reg.number & 0xFF))
		case opcode.RegSetFixed, opcode.Reg32SetFixed:
			regs, err := parseRegSetFixed(ra, arg, argDef.Count)
			if err != nil {
				return err
			}
			w.PutU8(0x4A) // arg_pushb
			regs[0].offsets = append(regs[0].offsets, w.Len())
			w.PutU8(uint8(regs[0].number & 0xFF))
		default:
			reg, err := parseReg(ra, arg, true)
			if err != nil {
				return err
			}
			w.PutU8(0x48) // arg_pushr
			reg.offsets = append(reg.offsets, w.Len())
			w.PutU8(uint8(reg.number & 0xFF))
		}
		return nil
	}

	if len(arg) >= 2 && arg[0] == '@' && (arg[1] == 'r' || arg[1] == 'f') {
		reg, err := parseReg(ra, arg[1:], true)
		if err != nil {
			return err
		}
		w.PutU8(0x4C) // arg_pusha
		reg.offsets = append(reg.offsets, w.Len())
		w.PutU8(uint8(reg.number & 0xFF))
		return nil
	}

	if arg[0] == '@' {
		if l, ok := labels[arg[1:]]; ok {
			w.PutU8(0x4D) // arg_pusho
			w.PutU16(uint16(l.index))
			return nil
		}
	}

	if arg[0] == '"' {
		w.PutU8(0x4E) // arg_pushs
		return encodeCString(w, arg, b, language)
	}

	i, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid argument syntax")
	}
	v := uint64(i)
	switch {
	case v > 0xFFFF:
		w.PutU8(0x49) // arg_pushl
		w.PutU32(uint32(v))
	case v > 0xFF:
		w.PutU8(0x4B) // arg_pushw
		w.PutU16(uint16(v))
	default:
		w.PutU8(0x4A) // arg_pushb
		w.PutU8(uint8(v))
	}
	return nil
}

func encodeDirectArg(w *binio.Writer, arg string, argDef opcode.Arg, b version.Build, language uint8, labels map[string]*asmLabel, ra *registerAssigner) error {
	addLabel := func(name string, is32 bool) error {
		l, ok := labels[name]
		if !ok {
			return fmt.Errorf("label not defined: %s", name)
		}
		if is32 {
			w.PutU32(uint32(l.index))
		} else {
			w.PutU16(uint16(l.index))
		}
		return nil
	}
	addReg := func(reg *register, is32 bool) {
		reg.offsets = append(reg.offsets, w.Len())
		if is32 {
			w.PutU32(uint32(reg.number & 0xFF))
		} else {
			w.PutU8(uint8(reg.number & 0xFF))
		}
	}
	splitSet := func(s string) ([]string, error) {
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("incorrect syntax for set-valued argument")
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return nil, nil
		}
		values := strings.Split(inner, ",")
		if len(values) > 0xFF {
			return nil, fmt.Errorf("too many values in set-valued argument")
		}
		return values, nil
	}

	switch argDef.Type {
	case opcode.Label16, opcode.Label32:
		return addLabel(arg, argDef.Type == opcode.Label32)

	case opcode.Label16Set:
		names, err := splitSet(arg)
		if err != nil {
			return err
		}
		w.PutU8(uint8(len(names)))
		for _, name := range names {
			if err := addLabel(strings.TrimSpace(name), false); err != nil {
				return err
			}
		}

	case opcode.Reg, opcode.Reg32:
		reg, err := parseReg(ra, arg, true)
		if err != nil {
			return err
		}
		addReg(reg, argDef.Type == opcode.Reg32)

	case opcode.RegSetFixed, opcode.Reg32SetFixed:
		regs, err := parseRegSetFixed(ra, arg, argDef.Count)
		if err != nil {
			return err
		}
		addReg(regs[0], argDef.Type == opcode.Reg32SetFixed)

	case opcode.RegSet:
		values, err := splitSet(arg)
		if err != nil {
			return err
		}
		w.PutU8(uint8(len(values)))
		for _, value := range values {
			reg, err := parseReg(ra, strings.TrimSpace(value), true)
			if err != nil {
				return err
			}
			addReg(reg, false)
		}

	case opcode.Int8:
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return err
		}
		w.PutU8(uint8(v))

	case opcode.Int16:
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return err
		}
		w.PutU16(uint16(v))

	case opcode.Int32:
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return err
		}
		w.PutU32(uint32(v))

	case opcode.Float32:
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return err
		}
		w.PutF32(float32(v))

	case opcode.CString:
		return encodeCString(w, arg, b, language)
	}
	return nil
}

func parseReg(ra *registerAssigner, arg string, allowUnnumbered bool) (*register, error) {
	if len(arg) < 2 {
		return nil, fmt.Errorf("register argument is too short")
	}
	if arg[0] != 'r' && arg[0] != 'f' {
		return nil, fmt.Errorf("a register is required")
	}
	name := ""
	number := -1
	if arg[1] == ':' {
		parts := strings.Split(arg[2:], "@")
		switch len(parts) {
		case 1:
			name = parts[0]
		case 2:
			name = parts[0]
			v, err := strconv.ParseUint(parts[1], 0, 16)
			if err != nil {
				return nil, fmt.Errorf("invalid register number %q", parts[1])
			}
			number = int(v)
		default:
			return nil, fmt.Errorf("invalid register specification")
		}
	} else {
		v, err := strconv.ParseUint(arg[1:], 0, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid register number %q", arg[1:])
		}
		number = int(v)
	}
	if !allowUnnumbered && number < 0 {
		return nil, fmt.Errorf("a numbered register is required")
	}
	if number > 0xFF {
		return nil, fmt.Errorf("invalid register number")
	}
	return ra.getOrCreate(name, number)
}

func parseRegSetFixed(ra *registerAssigner, arg string, expectedCount int) ([]*register, error) {
	if expectedCount == 0 {
		return nil, fmt.Errorf("argument expects no registers")
	}
	if arg == "" {
		return nil, fmt.Errorf("no register specified for fixed register set")
	}

	var regs []*register
	if arg[0] == '(' && arg[len(arg)-1] == ')' {
		tokens := strings.Split(arg[1:len(arg)-1], ",")
		if len(tokens) != expectedCount {
			return nil, fmt.Errorf("incorrect number of registers in fixed register set")
		}
		for _, token := range tokens {
			reg, err := parseReg(ra, strings.TrimSpace(token), true)
			if err != nil {
				return nil, err
			}
			regs = append(regs, reg)
			if len(regs) > 1 {
				if err := ra.constrain(regs[len(regs)-2], regs[len(regs)-1]); err != nil {
					return nil, err
				}
			}
		}
		return regs, nil
	}

	tokens := strings.Split(arg, "-")
	switch len(tokens) {
	case 1:
		first, err := parseReg(ra, tokens[0], false)
		if err != nil {
			return nil, err
		}
		regs = append(regs, first)
		for len(regs) < expectedCount {
			next, err := ra.getOrCreate("", (regs[len(regs)-1].number+1)&0xFF)
			if err != nil {
				return nil, err
			}
			regs = append(regs, next)
			if err := ra.constrain(regs[len(regs)-2], regs[len(regs)-1]); err != nil {
				return nil, err
			}
		}
	case 2:
		first, err := parseReg(ra, tokens[0], false)
		if err != nil {
			return nil, err
		}
		regs = append(regs, first)
		for len(regs) < expectedCount-1 {
			mid, err := ra.getOrCreate("", (regs[len(regs)-1].number+1)&0xFF)
			if err != nil {
				return nil, err
			}
			regs = append(regs, mid)
			if err := ra.constrain(regs[len(regs)-2], regs[len(regs)-1]); err != nil {
				return nil, err
			}
		}
		last, err := parseReg(ra, tokens[1], false)
		if err != nil {
			return nil, err
		}
		regs = append(regs, last)
		if last.number-regs[0].number+1 != expectedCount {
			return nil, fmt.Errorf("incorrect number of registers used")
		}
		if err := ra.constrain(regs[len(regs)-2], regs[len(regs)-1]); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid fixed register set syntax")
	}
	return regs, nil
}

// splitArgs splits an operand list on commas, ignoring commas inside
// quotes, parentheses, and brackets.
func splitArgs(s string) []string {
	var out []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// parseStringOperand parses a directive operand that is either a quoted
// string or hex digit pairs.
func parseStringOperand(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return text.Unescape(s[1 : len(s)-1])
	}
	data, err := text.ParseDataString(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func parseDataOperand(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		v, err := text.Unescape(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return []byte(v), nil
	}
	return text.ParseDataString(s)
}
