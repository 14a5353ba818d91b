package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml":  {Data: []byte("viewport:\n  width: 800\n")},
		"data/extra.yaml": {Data: []byte("{}")},
	}
}

// TestIsInitialized checks the initialization flag.
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	initialized = false
}

func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("data/game.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	}
	_, err := ReadFile("data/game.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
	if Exists("data/game.yaml") {
		t.Error("Exists should be false before Init()")
	}
	if _, err := Glob("data/*.yaml"); err == nil {
		t.Error("Expected error when calling Glob() before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"data path", "data/game.yaml", false},
		{"dot prefix", "./data/game.yaml", false},
		{"missing file", "data/missing.yaml", true},
		{"invalid prefix", "assets/game.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%s) failed: %v", tt.path, err)
			}
			if len(data) == 0 {
				t.Error("Expected non-empty content")
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/game.yaml") {
		t.Error("Expected data/game.yaml to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("Expected data/nope.yaml to be missing")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %v", matches)
	}
}
