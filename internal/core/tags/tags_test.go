package tags

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	table := Default()

	tests := []struct {
		name      string
		tag       string
		wantLabel string
		wantColor string
	}{
		{
			name:      "known tag with color",
			tag:       "People with a Full Access Registration Can Attend",
			wantLabel: "FA",
			wantColor: "#FF9800",
		},
		{
			name:      "known tag without color gets neutral",
			tag:       "This Session will be held in Japanese Language",
			wantLabel: "ja",
			wantColor: DefaultColor,
		},
		{
			name:      "short-form alias",
			tag:       "flag-japan",
			wantLabel: "ja",
			wantColor: DefaultColor,
		},
		{
			name:      "unknown tag passes through verbatim",
			tag:       "totally-new-tag",
			wantLabel: "totally-new-tag",
			wantColor: DefaultColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := table.Resolve(tt.tag)
			if b.Label != tt.wantLabel {
				t.Errorf("Resolve(%q).Label = %q, want %q", tt.tag, b.Label, tt.wantLabel)
			}
			if b.Color != tt.wantColor {
				t.Errorf("Resolve(%q).Color = %q, want %q", tt.tag, b.Color, tt.wantColor)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.toml")
	custom := `
[tags."sponsor"]
label = "SP"
color = "#123456"
`
	if err := os.WriteFile(path, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if b := table.Resolve("sponsor"); b.Label != "SP" || b.Color != "#123456" {
		t.Errorf("Resolve(sponsor) = %+v", b)
	}
	// Override tables replace the default wholesale; unknown tags still
	// fall back verbatim.
	if b := table.Resolve("flag-japan"); b.Label != "flag-japan" {
		t.Errorf("Resolve(flag-japan) on custom table = %+v, want verbatim fallback", b)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFile() on missing file should error")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("not [valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("LoadFile() on malformed TOML should error")
	}
}
