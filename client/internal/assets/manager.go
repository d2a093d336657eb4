// Package assets carrega as texturas nomeadas dos blocos a partir do disco.
// Falha de I/O é condição de ambiente, não bug: texturas ausentes caem em
// placeholders de cor chapada para que o mundo sempre renderize algo.
package assets

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"VoxelForge/shared/atlas"
)

// Manager resolve nomes de textura para imagens 16x16.
type Manager struct {
	dir string
}

// NewManager cria um manager apontando para o diretório de texturas.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// LoadTexture carrega <dir>/<name>.png. Erros de I/O ou decodificação são
// propagados ao chamador.
func (m *Manager) LoadTexture(name string) (image.Image, error) {
	path := filepath.Join(m.dir, name+".png")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: falha ao abrir %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: falha ao decodificar %s: %w", path, err)
	}
	return img, nil
}

// LoadAll resolve cada nome para uma imagem, usando o placeholder quando o
// arquivo não existe ou não decodifica.
func (m *Manager) LoadAll(names []string) []atlas.NamedImage {
	out := make([]atlas.NamedImage, 0, len(names))
	for _, name := range names {
		img, err := m.LoadTexture(name)
		if err != nil {
			log.Printf("[Assets] %v — usando placeholder", err)
			img = Placeholder(name)
		}
		out = append(out, atlas.NamedImage{Name: name, Image: img})
	}
	return out
}

// placeholderColors são as cores dos blocos básicos; nomes fora da tabela
// ganham uma cor derivada do hash do nome.
var placeholderColors = map[string]color.RGBA{
	"grass_top":  {G: 160, R: 60, B: 50, A: 255},
	"grass_side": {R: 110, G: 120, B: 50, A: 255},
	"dirt":       {R: 120, G: 85, B: 55, A: 255},
	"stone":      {R: 128, G: 128, B: 130, A: 255},
}

// Placeholder gera uma imagem 16x16 de cor chapada para o nome informado.
func Placeholder(name string) image.Image {
	c, ok := placeholderColors[name]
	if !ok {
		h := fnv.New32a()
		h.Write([]byte(name))
		sum := h.Sum32()
		c = color.RGBA{
			R: uint8(sum),
			G: uint8(sum >> 8),
			B: uint8(sum >> 16),
			A: 255,
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, atlas.TileSize, atlas.TileSize))
	for y := 0; y < atlas.TileSize; y++ {
		for x := 0; x < atlas.TileSize; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
