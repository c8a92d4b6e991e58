package policy

import (
	"reflect"
	"testing"
)

func TestDefaultLoads(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	want := []string{"cat", "cp", "mkdir", "pwd", "touch"}
	if got := p.Programs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Programs() = %v, want %v", got, want)
	}
}

func TestDefaultCached(t *testing.T) {
	p1, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	p2, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if p1 != p2 {
		t.Error("Default() returned distinct policies, want the cached one")
	}
}

func TestDefaultShapes(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	tests := []struct {
		program  string
		patterns []ArgMatcher
		flags    []string
		paths    []string
	}{
		{"pwd", nil, []string{"-L", "-P"}, nil},
		{"cp", []ArgMatcher{ReadableFiles(), WriteableFile()}, nil, []string{"/bin/cp", "/usr/bin/cp"}},
		{"cat", []ArgMatcher{ReadableFiles()}, nil, []string{"/bin/cat", "/usr/bin/cat"}},
		{"mkdir", []ArgMatcher{WriteableFile()}, []string{"-p"}, []string{"/bin/mkdir", "/usr/bin/mkdir"}},
		{"touch", []ArgMatcher{WriteableFile()}, nil, []string{"/bin/touch", "/usr/bin/touch"}},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			pp, ok := p.Get(tt.program)
			if !ok {
				t.Fatalf("Get(%s) not found", tt.program)
			}
			if !reflect.DeepEqual(pp.ArgPatterns, tt.patterns) {
				t.Errorf("ArgPatterns = %v, want %v", pp.ArgPatterns, tt.patterns)
			}
			if !reflect.DeepEqual(pp.Flags, tt.flags) {
				t.Errorf("Flags = %v, want %v", pp.Flags, tt.flags)
			}
			if !reflect.DeepEqual(pp.SystemPath, tt.paths) {
				t.Errorf("SystemPath = %v, want %v", pp.SystemPath, tt.paths)
			}
		})
	}
}
