package disasm

import (
	"strings"
	"testing"

	"github.com/zurustar/questscript/pkg/version"
)

func assembleEpisodeQuest(t *testing.T, episode string, body ...string) []byte {
	t.Helper()
	lines := []string{
		".version BB_V4",
		".quest_num 1",
		".episode " + episode,
		`.name "episode"`,
		"start:",
	}
	lines = append(lines, body...)
	lines = append(lines, "ret")
	return mustAssemble(t, strings.Join(lines, "\n"))
}

func TestFindEpisode(t *testing.T) {
	t.Run("V2以前は常にエピソード1", func(t *testing.T) {
		ep, err := FindEpisode(nil, version.DCV2)
		if err != nil {
			t.Fatalf("FindEpisode returned error: %v", err)
		}
		if ep != version.Episode1 {
			t.Errorf("episode = %v, want %v", ep, version.Episode1)
		}
	})

	t.Run("スクリプトがヘッダより優先される", func(t *testing.T) {
		data := assembleEpisodeQuest(t, "Episode2", "set_episode 0x00000002")
		ep, err := FindEpisode(data, version.BBV4)
		if err != nil {
			t.Fatalf("FindEpisode returned error: %v", err)
		}
		if ep != version.Episode4 {
			t.Errorf("episode = %v, want %v", ep, version.Episode4)
		}
	})

	t.Run("set_episodeが無ければヘッダに従う", func(t *testing.T) {
		data := assembleEpisodeQuest(t, "Episode2")
		ep, err := FindEpisode(data, version.BBV4)
		if err != nil {
			t.Fatalf("FindEpisode returned error: %v", err)
		}
		if ep != version.Episode2 {
			t.Errorf("episode = %v, want %v", ep, version.Episode2)
		}
	})

	t.Run("スクリプトが読めない場合もヘッダに従う", func(t *testing.T) {
		// The first function starts with an undefined opcode, so the scan
		// fails and the header decides.
		data := assembleEpisodeQuest(t, "Episode2", ".data FF")
		ep, err := FindEpisode(data, version.BBV4)
		if err != nil {
			t.Fatalf("FindEpisode returned error: %v", err)
		}
		if ep != version.Episode2 {
			t.Errorf("episode = %v, want %v", ep, version.Episode2)
		}
	})

	t.Run("複数のエピソードはエラー", func(t *testing.T) {
		data := assembleEpisodeQuest(t, "Episode1",
			"set_episode 0x00000001",
			"set_episode 0x00000002")
		_, err := FindEpisode(data, version.BBV4)
		if err == nil || !strings.Contains(err.Error(), "multiple episodes") {
			t.Errorf("expected multiple episode error, got %v", err)
		}
	})

	t.Run("ヘッダのエピソード値が不正", func(t *testing.T) {
		data := assembleEpisodeQuest(t, "Episode1")
		data[0x14] = 0x7F
		_, err := FindEpisode(data, version.BBV4)
		if err == nil || !strings.Contains(err.Error(), "invalid episode number 7F") {
			t.Errorf("expected invalid episode error, got %v", err)
		}
	})
}
