// Package atlas empacota texturas nomeadas em uma única imagem e fornece a
// tabela de consulta nome → cantos UV usada pelo mesher.
package atlas

import (
	"fmt"
	"image"
	"image/draw"
	"math"
)

// TileSize é o lado em pixels de cada textura dentro do atlas.
const TileSize = 16

// TexCoords são os quatro cantos de uma textura específica dentro do atlas.
type TexCoords struct {
	TL, TR, BL, BR [2]float32
}

// NamedImage associa um nome de textura à sua imagem de origem.
type NamedImage struct {
	Name  string
	Image image.Image
}

// Atlas é a imagem empacotada mais a tabela de consulta por nome.
type Atlas struct {
	image  *image.RGBA
	side   int
	lookup map[string]TexCoords
}

// bestPackingSize retorna o lado da menor grade quadrada que comporta n texturas.
func bestPackingSize(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// Pack monta o atlas a partir das texturas informadas.
// As texturas são dispostas em uma grade quadrada de células de 16px; a
// posição de cada uma vira um retângulo UV normalizado na tabela de consulta.
func Pack(textures []NamedImage) (*Atlas, error) {
	if len(textures) == 0 {
		return nil, fmt.Errorf("atlas: nenhuma textura para empacotar")
	}

	side := bestPackingSize(len(textures))
	img := image.NewRGBA(image.Rect(0, 0, side*TileSize, side*TileSize))
	lookup := make(map[string]TexCoords, len(textures))

	s := 1.0 / float32(side)

	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			i := x*side + y
			if i >= len(textures) {
				break
			}

			dst := image.Rect(x*TileSize, y*TileSize, (x+1)*TileSize, (y+1)*TileSize)
			draw.Draw(img, dst, textures[i].Image, textures[i].Image.Bounds().Min, draw.Src)

			xf := float32(x) / float32(side)
			yf := float32(y) / float32(side)

			lookup[textures[i].Name] = TexCoords{
				TL: [2]float32{xf, yf},
				TR: [2]float32{xf + s, yf},
				BL: [2]float32{xf, yf + s},
				BR: [2]float32{xf + s, yf + s},
			}
		}
	}

	return &Atlas{image: img, side: side, lookup: lookup}, nil
}

// CoordsOf retorna os cantos UV da textura com o nome informado.
// Uma textura ausente é uma condição esperada: o chamador decide pular a
// face em vez de abortar.
func (a *Atlas) CoordsOf(name string) (TexCoords, error) {
	if coords, ok := a.lookup[name]; ok {
		return coords, nil
	}
	return TexCoords{}, fmt.Errorf("atlas: textura %q não empacotada", name)
}

// Image retorna a imagem empacotada, pronta para upload na GPU.
func (a *Atlas) Image() *image.RGBA {
	return a.image
}

// Side retorna o número de células por lado da grade.
func (a *Atlas) Side() int {
	return a.side
}

// Len retorna quantas texturas estão na tabela de consulta.
func (a *Atlas) Len() int {
	return len(a.lookup)
}
