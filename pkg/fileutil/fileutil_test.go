package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindFileCaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []string{
		"Quest.bin",
		"NATIVE.S",
		"lowercase.dat",
	}
	for _, filename := range testFiles {
		path := filepath.Join(tmpDir, filename)
		if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "subdir.bin"), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		searchName    string
		shouldFind    bool
		expectedMatch string
	}{
		{
			name:          "完全一致",
			searchName:    "Quest.bin",
			shouldFind:    true,
			expectedMatch: "Quest.bin",
		},
		{
			name:          "小文字での検索",
			searchName:    "quest.bin",
			shouldFind:    true,
			expectedMatch: "Quest.bin",
		},
		{
			name:          "大文字での検索",
			searchName:    "QUEST.BIN",
			shouldFind:    true,
			expectedMatch: "Quest.bin",
		},
		{
			name:          "大文字のファイルを小文字で検索",
			searchName:    "native.s",
			shouldFind:    true,
			expectedMatch: "NATIVE.S",
		},
		{
			name:          "小文字のファイルを大文字で検索",
			searchName:    "LOWERCASE.DAT",
			shouldFind:    true,
			expectedMatch: "lowercase.dat",
		},
		{
			name:       "見つからない",
			searchName: "nonexistent.bin",
			shouldFind: false,
		},
		{
			name:       "ディレクトリは対象外",
			searchName: "subdir.bin",
			shouldFind: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FindFileCaseInsensitive(tmpDir, tt.searchName)

			if !tt.shouldFind {
				if err == nil {
					t.Errorf("Expected error, but got path: %s", path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected to find file, but got error: %v", err)
			}
			if actual := filepath.Base(path); actual != tt.expectedMatch {
				t.Errorf("Expected filename %s, got %s", tt.expectedMatch, actual)
			}
			if _, err := os.Stat(path); err != nil {
				t.Errorf("Returned path does not exist: %s", path)
			}
		})
	}
}
