package disasm

import (
	"errors"
	"fmt"

	"github.com/zurustar/questscript/pkg/binio"
	"github.com/zurustar/questscript/pkg/header"
	"github.com/zurustar/questscript/pkg/logger"
	"github.com/zurustar/questscript/pkg/opcode"
	"github.com/zurustar/questscript/pkg/version"
)

// FindEpisode determines which episode a quest belongs to. The set_episode
// opcode is expected in the first function, so that function is scanned
// linearly up to the first returning opcode; if the scan fails or finds
// nothing, the header's episode field decides.
func FindEpisode(data []byte, b version.Build) (version.Episode, error) {
	switch b {
	case version.DCNTE, version.DC112000, version.DCV1, version.DCV2, version.PCNTE, version.PCV2:
		return version.Episode1, nil
	}

	m, err := header.Parse(b, data, 0xFF)
	if err != nil {
		return 0, err
	}
	if !m.EpisodeValid {
		return 0, fmt.Errorf("invalid episode number %02X", m.EpisodeRaw)
	}

	found, err := scanFirstFunction(data, b, m)
	if err != nil {
		logger.GetLogger().Warn(fmt.Sprintf("Cannot determine episode from quest script (%s)", err))
		found = nil
	}

	if len(found) > 1 {
		return 0, errors.New("multiple episodes found")
	}
	for ep := range found {
		return ep, nil
	}
	return m.Episode, nil
}

func scanFirstFunction(data []byte, b version.Build, m *header.Meta) (map[version.Episode]struct{}, error) {
	r := binio.NewReader(data)
	start, err := r.PU32(int(m.FunctionTableOffset))
	if err != nil {
		return nil, err
	}
	if err := r.Go(int(m.CodeOffset) + int(start)); err != nil {
		return nil, err
	}

	table := opcode.ForBuild(b)
	useWstrs := b.UsesUTF16()
	found := make(map[version.Episode]struct{})

	for !r.EOF() {
		op, def, err := readOpcode(r, table)
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, fmt.Errorf("unknown quest opcode %04X", op)
		}
		if def.Flags&opcode.FRet != 0 {
			break
		}
		if def.Flags&opcode.FArgs != 0 {
			continue
		}
		for _, arg := range def.Args {
			switch arg.Type {
			case opcode.Label16:
				err = r.Skip(2)
			case opcode.Label32:
				err = r.Skip(4)
			case opcode.Label16Set:
				var count uint8
				if count, err = r.U8(); err == nil {
					err = r.Skip(int(count) * 2)
				}
			case opcode.Reg:
				err = r.Skip(1)
			case opcode.RegSet:
				var count uint8
				if count, err = r.U8(); err == nil {
					err = r.Skip(int(count))
				}
			case opcode.RegSetFixed:
				err = r.Skip(1)
			case opcode.Reg32, opcode.Reg32SetFixed:
				err = r.Skip(4)
			case opcode.Int8:
				err = r.Skip(1)
			case opcode.Int16:
				err = r.Skip(2)
			case opcode.Int32:
				if def.Flags&opcode.FSetEpisode != 0 {
					var v uint32
					if v, err = r.U32(); err == nil {
						var ep version.Episode
						if ep, err = version.EpisodeForNumber(uint8(v)); err == nil {
							found[ep] = struct{}{}
						}
					}
				} else {
					err = r.Skip(4)
				}
			case opcode.Float32:
				err = r.Skip(4)
			case opcode.CString:
				if useWstrs {
					_, err = r.WString()
				} else {
					_, err = r.CString()
				}
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return found, nil
}
