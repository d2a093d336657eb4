package voxel

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// WorldGen decide o bloco de cada célula durante a geração de um chunk.
// Deve ser pura e determinística: as mesmas entradas produzem sempre o
// mesmo bloco, para que a geração seja reproduzível em teste.
type WorldGen interface {
	At(x, y, z int, reg *BlockRegistry) Block
}

// SphereGen é o gerador padrão: uma esfera centrada no chunk com grama na
// superfície e terra no interior. O discriminador superfície/interior é um
// segundo teste de esfera deslocado uma célula em +Y.
type SphereGen struct {
	Radius float64
}

// At implementa WorldGen.
func (g SphereGen) At(x, y, z int, reg *BlockRegistry) Block {
	if !g.inSphere(x, y, z) {
		return reg.Instantiate("air")
	}
	if g.inSphere(x, y+1, z) {
		return reg.Instantiate("dirt")
	}
	return reg.Instantiate("grass")
}

func (g SphereGen) inSphere(x, y, z int) bool {
	center := float64(ChunkWidth) / 2
	dx := float64(x) - center
	dy := float64(y) - center
	dz := float64(z) - center
	return math.Sqrt(dx*dx+dy*dy+dz*dz) <= g.Radius
}

// PerlinGen gera terreno por mapa de altura com ruído Perlin. A semente é
// fixada na construção, então o resultado é determinístico por semente.
type PerlinGen struct {
	noise *perlin.Perlin
}

// NewPerlinGen cria um gerador Perlin com a semente informada.
func NewPerlinGen(seed int64) *PerlinGen {
	alpha := 2.0 // Suavização do ruído
	beta := 2.0  // Frequência do ruído
	n := int32(3)
	return &PerlinGen{noise: perlin.NewPerlin(alpha, beta, n, seed)}
}

// At implementa WorldGen: pedra na base, uma faixa de terra e grama na
// superfície do mapa de altura.
func (g *PerlinGen) At(x, y, z int, reg *BlockRegistry) Block {
	n := g.noise.Noise2D(float64(x)/ChunkWidth, float64(z)/ChunkWidth)
	// Normaliza [-1, 1] para uma altura entre 1 e ChunkWidth-1
	height := 1 + int(((n+1)/2)*float64(ChunkWidth-2))

	switch {
	case y < height-3:
		return reg.Instantiate("stone")
	case y < height:
		return reg.Instantiate("dirt")
	case y == height:
		return reg.Instantiate("grass")
	default:
		return reg.Instantiate("air")
	}
}
