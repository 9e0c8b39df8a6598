package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zurustar/questscript/pkg/version"
)

func TestEmitParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		meta Meta
	}{
		{
			name: "BB",
			meta: Meta{
				Build:            version.BBV4,
				QuestNumber:      123,
				Language:         1,
				Episode:          version.Episode2,
				MaxPlayers:       4,
				Joinable:         true,
				Name:             "Test Quest",
				ShortDescription: "A short description",
				LongDescription:  "A rather longer description",
			},
		},
		{
			name: "GC",
			meta: Meta{
				Build:            version.GCV3,
				QuestNumber:      58,
				Language:         1,
				HeaderLanguage:   1,
				Episode:          version.Episode1,
				MaxPlayers:       4,
				Name:             "Lost HEAT SWORD",
				ShortDescription: "Retrieve a lost weapon.",
				LongDescription:  "Client: Hopkins, father\nQuest: My weapon was stolen.",
			},
		},
		{
			name: "DC NTE",
			meta: Meta{
				Build:      version.DCNTE,
				Language:   0,
				Episode:    version.Episode1,
				MaxPlayers: 4,
				Name:       "BATTLE01",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Emit(&tt.meta, 0x40, 3)
			require.NoError(t, err)
			require.Equal(t, Size(tt.meta.Build), len(raw))

			m, err := Parse(tt.meta.Build, raw, 0xFF)
			require.NoError(t, err)

			assert.Equal(t, uint32(Size(tt.meta.Build)), m.CodeOffset)
			assert.Equal(t, m.CodeOffset+0x40, m.FunctionTableOffset)
			assert.Equal(t, m.FunctionTableOffset+3*4, m.Size)
			assert.Equal(t, tt.meta.QuestNumber, m.QuestNumber)
			assert.Equal(t, tt.meta.Name, m.Name)
			assert.Equal(t, tt.meta.ShortDescription, m.ShortDescription)
			assert.Equal(t, tt.meta.LongDescription, m.LongDescription)
			assert.Equal(t, tt.meta.Episode, m.Episode)
			if tt.meta.Build == version.BBV4 {
				assert.Equal(t, tt.meta.MaxPlayers, m.MaxPlayers)
				assert.Equal(t, tt.meta.Joinable, m.Joinable)
			}
		})
	}
}

func TestEmitEpisodeBytes(t *testing.T) {
	tests := []struct {
		name     string
		build    version.Build
		episode  version.Episode
		expected version.Episode
	}{
		{name: "BBのエピソード4", build: version.BBV4, episode: version.Episode4, expected: version.Episode4},
		{name: "BBのエピソード2", build: version.BBV4, episode: version.Episode2, expected: version.Episode2},
		{name: "BBのエピソード1", build: version.BBV4, episode: version.Episode1, expected: version.Episode1},
		// The GC header has no representation for episode 4.
		{name: "GCのエピソード4はエピソード1になる", build: version.GCV3, episode: version.Episode4, expected: version.Episode1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Meta{Build: tt.build, Language: 1, Episode: tt.episode, MaxPlayers: 4}
			raw, err := Emit(m, 0, 0)
			require.NoError(t, err)
			parsed, err := Parse(tt.build, raw, 0xFF)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed.Episode)
		})
	}
}

func TestParseTooSmall(t *testing.T) {
	_, err := Parse(version.BBV4, make([]byte, 0x100), 0xFF)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too small")
}

func TestParseLanguageOverride(t *testing.T) {
	m := &Meta{Build: version.GCV3, Language: 0, HeaderLanguage: 0, Episode: version.Episode1, Name: "テスト"}
	raw, err := Emit(m, 0, 0)
	require.NoError(t, err)

	// Without an override the header language decides the text encoding.
	parsed, err := Parse(version.GCV3, raw, 0xFF)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), parsed.Language)
	assert.Equal(t, "テスト", parsed.Name)

	// An override replaces the header language.
	parsed, err = Parse(version.GCV3, raw, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), parsed.Language)
}

func TestParseBBMaxPlayersDefault(t *testing.T) {
	raw, err := Emit(&Meta{Build: version.BBV4, Language: 1, Episode: version.Episode1}, 0, 0)
	require.NoError(t, err)
	m, err := Parse(version.BBV4, raw, 0xFF)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), m.MaxPlayers)
}

func TestDirectives(t *testing.T) {
	tests := []struct {
		name     string
		meta     Meta
		expected []string
	}{
		{
			name: "DC NTEは名前のみ",
			meta: Meta{Build: version.DCNTE, Name: "BATTLE01"},
			expected: []string{
				".version DC_NTE",
				`.name "BATTLE01"`,
			},
		},
		{
			name: "GCはエピソードを含む",
			meta: Meta{
				Build:          version.GCV3,
				QuestNumber:    58,
				HeaderLanguage: 1,
				Episode:        version.Episode2,
				EpisodeValid:   true,
				Name:           "quest",
			},
			expected: []string{
				".version GC_V3",
				".quest_num 58",
				".language 1",
				".episode Episode2",
				`.name "quest"`,
				`.short_desc ""`,
				`.long_desc ""`,
			},
		},
		{
			name: "BBの参加可能クエスト",
			meta: Meta{
				Build:        version.BBV4,
				QuestNumber:  301,
				Episode:      version.Episode4,
				EpisodeValid: true,
				MaxPlayers:   4,
				Joinable:     true,
				Name:         "quest",
			},
			expected: []string{
				".version BB_V4",
				".quest_num 301",
				".episode Episode4",
				".max_players 4",
				".joinable",
				`.name "quest"`,
				`.short_desc ""`,
				`.long_desc ""`,
			},
		},
		{
			name: "不正なエピソード値には注記が付く",
			meta: Meta{
				Build:       version.BBV4,
				QuestNumber: 1,
				Episode:     version.Episode1,
				EpisodeRaw:  0x7F,
				MaxPlayers:  4,
				Name:        "quest",
			},
			expected: []string{
				".version BB_V4",
				".quest_num 1",
				".episode Episode1  # invalid value in header",
				".max_players 4",
				`.name "quest"`,
				`.short_desc ""`,
				`.long_desc ""`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Directives(&tt.meta))
		})
	}
}
