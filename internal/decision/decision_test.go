package decision

import (
	"strings"
	"testing"

	"github.com/hpkotak/execgate/internal/policy"
)

func TestEvaluate(t *testing.T) {
	p, err := policy.Default()
	if err != nil {
		t.Fatalf("loading default policy: %v", err)
	}

	tests := []struct {
		name       string
		call       policy.ExecCall
		wantMode   Mode
		wantReason string // substring expected in Reason, empty for Allow
	}{
		{"full match", policy.NewExecCall("cp", "a", "b"), Allow, ""},
		{"zero-arg match", policy.NewExecCall("pwd"), Allow, ""},
		{"unknown program", policy.NewExecCall("curl", "https://example.com"), Sandbox, "no policy"},
		{"policy violation", policy.NewExecCall("pwd", "extra"), AskUser, "unexpected arguments"},
		{"vararg violation", policy.NewExecCall("cp", "only-one"), AskUser, "matched nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(p, tt.call)
			if v.Mode != tt.wantMode {
				t.Fatalf("Mode = %v, want %v", v.Mode, tt.wantMode)
			}
			if tt.wantMode == Allow {
				if v.Match == nil {
					t.Error("Match = nil for Allow verdict")
				}
				if v.Reason != "" {
					t.Errorf("Reason = %q, want empty", v.Reason)
				}
				return
			}
			if v.Match != nil {
				t.Errorf("Match = %+v, want nil", v.Match)
			}
			if !strings.Contains(v.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want substring %q", v.Reason, tt.wantReason)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Allow, "allow"},
		{AskUser, "ask-user"},
		{Sandbox, "sandbox"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
