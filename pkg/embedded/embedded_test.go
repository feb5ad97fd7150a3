package embedded

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/palette.yaml":        {Data: []byte("targets: []\n")},
		"data/folding/vienna.yaml": {Data: []byte("name: Vienna\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/palette.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
}

// TestReadFile 测试路径标准化和读取
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain", path: "data/palette.yaml", want: "targets: []\n"},
		{name: "dot prefix", path: "./data/folding/vienna.yaml", want: "name: Vienna\n"},
		{name: "bad prefix", path: "assets/palette.png", wantErr: true},
		{name: "missing", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// TestExistsAndGlob 测试文件存在检查和匹配
func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/palette.yaml") {
		t.Error("Exists(data/palette.yaml) = false, want true")
	}
	if Exists("data/nothing.yaml") {
		t.Error("Exists(data/nothing.yaml) = true, want false")
	}

	got, err := Glob("data/folding/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if diff := cmp.Diff([]string{"data/folding/vienna.yaml"}, got); diff != "" {
		t.Errorf("Glob mismatch (-want +got):\n%s", diff)
	}
}
