package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFont(t *testing.T) {
	fnt, err := LoadFont("")
	if err != nil {
		t.Fatal(err)
	}
	if fnt.Name != "Go Regular" || len(fnt.Data) == 0 {
		t.Fatalf("embedded font %q with %d bytes", fnt.Name, len(fnt.Data))
	}

	dir := t.TempDir()
	if _, err := LoadFont(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Fatalf("missing font loaded")
	}
	junk := filepath.Join(dir, "junk.ttf")
	if err := os.WriteFile(junk, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(junk); err == nil {
		t.Fatalf("junk font loaded")
	}
}

func TestSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 150
	cfg.LabelSize = 12
	fnt, err := LoadFont("")
	if err != nil {
		t.Fatal(err)
	}
	v := NewView(cfg, Functions(cfg.NoiseSeed), 0)

	dir := filepath.Join(t.TempDir(), "shots")
	path, err := Snapshot(v, cfg, fnt, dir, time.Unix(1700000000, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, filepath.Join(dir, "grapher-1700000000.png"), path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("snapshot is %v", b)
	}

	// Vertical axis through the origin column, well above the curve and labels.
	if r, g, b, _ := img.At(100, 10).RGBA(); r > 0x4000 || g > 0x4000 || b > 0x4000 {
		t.Fatalf("axis pixel = %x %x %x; want dark", r, g, b)
	}
	// Background away from every line.
	if r, g, b, _ := img.At(112, 112).RGBA(); r < 0xe000 || g < 0xe000 || b < 0xe000 {
		t.Fatalf("background pixel = %x %x %x; want light", r, g, b)
	}
}
