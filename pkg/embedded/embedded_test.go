package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/level.yaml":            {Data: []byte("name: test\n")},
		"data/characters/steve.yaml": {Data: []byte("id: steve\n")},
		"data/characters/demon.yaml": {Data: []byte("id: demon\n")},
		"data/characters/readme.txt": {Data: []byte("not a descriptor\n")},
	}
}

func TestNotInitialized(t *testing.T) {
	Init(nil)

	if IsInitialized() {
		t.Error("IsInitialized() = true before Init with a real FS")
	}
	if _, err := ReadFile("data/level.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile error = %v, want ErrNotInitialized", err)
	}
	if _, err := Open("data/level.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/level.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"普通路径", "data/level.yaml", "name: test\n", false},
		{"去掉 ./ 前缀", "./data/characters/steve.yaml", "id: steve\n", false},
		{"错误前缀", "assets/level.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/characters/demon.yaml") {
		t.Error("demon.yaml should exist")
	}
	if Exists("data/characters/skeleton.yaml") {
		t.Error("skeleton.yaml should not exist in the test FS")
	}

	matches, err := Glob("data/characters/*.yaml")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob matched %v, want 2 descriptors", matches)
	}
}
