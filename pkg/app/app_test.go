package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileReader_DataDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "characters"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "characters", "steve.yaml"), []byte("id: steve\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	read := NewFileReader(dir)
	data, err := read("data/characters/steve.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "id: steve\n" {
		t.Errorf("read = %q", data)
	}
	if _, err := read("data/characters/demon.yaml"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadConfigs_RepoData(t *testing.T) {
	read := NewFileReader(filepath.Join("..", "..", "data"))
	tuning, level, err := LoadConfigs(read)
	if err != nil {
		t.Fatalf("LoadConfigs: %v", err)
	}
	if tuning.Chase.FarDistance <= tuning.Chase.NearDistance {
		t.Errorf("chase bands out of order: far %v, near %v", tuning.Chase.FarDistance, tuning.Chase.NearDistance)
	}
	if level.EnemyGrid.Rows*level.EnemyGrid.Cols != 25 {
		t.Errorf("enemy grid = %dx%d, want 25 enemies", level.EnemyGrid.Rows, level.EnemyGrid.Cols)
	}
}

func TestLoadConfigs_MissingFiles(t *testing.T) {
	read := NewFileReader(t.TempDir())
	if _, _, err := LoadConfigs(read); err == nil {
		t.Error("LoadConfigs should fail without tuning.yaml")
	}
}
