package editor

import (
	"reflect"
	"testing"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		line   int
		want   []string
	}{
		{"vim jumps to line", "vim", 12, []string{"+12", "page.tsx"}},
		{"full path to nvim", "/usr/bin/nvim", 3, []string{"+3", "page.tsx"}},
		{"vscode goto", "code", 7, []string{"--goto", "page.tsx:7"}},
		{"first line needs no jump", "vim", 1, []string{"page.tsx"}},
		{"unknown editor", "ed", 9, []string{"page.tsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Args(tt.editor, "page.tsx", tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCommand_PrefersEditorThenVisual(t *testing.T) {
	env := map[string]string{"EDITOR": "nano", "VISUAL": "code"}
	o := &Opener{lookup: func(k string) string { return env[k] }}

	cmd, err := o.Command("/site/src/pages/a.tsx", 4)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if want := []string{"nano", "+4", "/site/src/pages/a.tsx"}; !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("expected %v, got %v", want, cmd.Args)
	}

	delete(env, "EDITOR")
	cmd, err = o.Command("/site/src/pages/a.tsx", 4)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if cmd.Args[0] != "code" {
		t.Errorf("expected VISUAL fallback, got %v", cmd.Args)
	}
}
