package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/demo.yaml":       {Data: []byte("title: test\n")},
		"data/fonts/font.ttf":  {Data: []byte{0, 1, 0, 0}},
		"data/fonts/other.ttf": {Data: []byte{0, 1, 0, 0}},
	}
}

// withFS 在测试期间替换文件系统，结束后恢复
func withFS(t *testing.T, fsys fstest.MapFS) {
	t.Helper()
	mu.RLock()
	prev := dataFS
	mu.RUnlock()

	if fsys == nil {
		mu.Lock()
		dataFS = nil
		mu.Unlock()
	} else {
		Init(fsys)
	}
	t.Cleanup(func() {
		mu.Lock()
		dataFS = prev
		mu.Unlock()
	})
}

func TestNotInitialized(t *testing.T) {
	withFS(t, nil)

	if IsInitialized() {
		t.Fatal("IsInitialized() = true before Init")
	}
	if _, err := ReadFile("data/demo.yaml"); err == nil {
		t.Error("ReadFile() should fail before Init")
	}
	if _, err := Open("data/demo.yaml"); err == nil {
		t.Error("Open() should fail before Init")
	}
	if _, err := Glob("data/*.yaml"); err == nil {
		t.Error("Glob() should fail before Init")
	}
	if Exists("data/demo.yaml") {
		t.Error("Exists() = true before Init")
	}
}

func TestReadFile(t *testing.T) {
	withFS(t, testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain", "data/demo.yaml", "title: test\n", false},
		{"dot prefix", "./data/demo.yaml", "title: test\n", false},
		{"missing", "data/missing.yaml", "", true},
		{"bad prefix", "assets/demo.yaml", "", true},
		{"absolute", "/data/demo.yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	withFS(t, testFS())

	if !Exists("data/demo.yaml") {
		t.Error("Exists(data/demo.yaml) = false")
	}
	if Exists("data/nope.yaml") {
		t.Error("Exists(data/nope.yaml) = true")
	}
}

func TestGlobAndReadDir(t *testing.T) {
	withFS(t, testFS())

	matches, err := Glob("data/fonts/*.ttf")
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob() = %v, want 2 matches", matches)
	}

	entries, err := ReadDir("data/fonts/")
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("ReadDir() returned %d entries, want 2", len(entries))
	}

	if _, err := ReadDir("fonts"); err == nil {
		t.Error("ReadDir() with bad prefix should fail")
	}
}
