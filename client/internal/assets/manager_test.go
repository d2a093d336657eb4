package assets

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"VoxelForge/shared/atlas"
)

func TestPlaceholderKnownColors(t *testing.T) {
	tests := []struct {
		name string
		want color.RGBA
	}{
		{"dirt", placeholderColors["dirt"]},
		{"stone", placeholderColors["stone"]},
	}

	for _, tt := range tests {
		img := Placeholder(tt.name)
		bounds := img.Bounds()
		if bounds.Dx() != atlas.TileSize || bounds.Dy() != atlas.TileSize {
			t.Fatalf("Placeholder(%q) com tamanho %v", tt.name, bounds)
		}
		r, g, b, a := img.At(8, 8).RGBA()
		got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		if got != tt.want {
			t.Errorf("Placeholder(%q) cor = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlaceholderUnknownDeterministic(t *testing.T) {
	a := Placeholder("obsidian")
	b := Placeholder("obsidian")
	if a.At(0, 0) != b.At(0, 0) {
		t.Error("placeholder de nome desconhecido deveria ser determinístico")
	}
}

func TestLoadAllFallsBack(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nao-existe"))
	out := m.LoadAll([]string{"dirt", "stone"})
	if len(out) != 2 {
		t.Fatalf("LoadAll retornou %d imagens, want 2", len(out))
	}
	for _, ni := range out {
		if ni.Image == nil {
			t.Errorf("textura %q sem imagem de fallback", ni.Name)
		}
	}
}

func TestLoadTextureRoundtrip(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "dirt.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, Placeholder("dirt")); err != nil {
		t.Fatal(err)
	}
	f.Close()

	m := NewManager(dir)
	img, err := m.LoadTexture("dirt")
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if img.Bounds().Dx() != atlas.TileSize {
		t.Errorf("textura carregada com largura %d", img.Bounds().Dx())
	}

	if _, err := m.LoadTexture("lava"); err == nil {
		t.Error("LoadTexture de arquivo ausente deveria retornar erro")
	}
}
