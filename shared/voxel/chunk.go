package voxel

import "fmt"

// ChunkWidth é o lado do cubo de células de um chunk.
const ChunkWidth = 16

// ChunkSize é o total de células de um chunk.
const ChunkSize = ChunkWidth * ChunkWidth * ChunkWidth

// neighborOffsets são os seis vizinhos alinhados aos eixos.
var neighborOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Chunk armazena um cubo denso de 16³ blocos, o bitset paralelo de
// visibilidade e a malha em cache. Criado vazio (tudo Air, tudo visível);
// mutado via SetBlock; a malha é recalculada de forma lazy em MeshData.
type Chunk struct {
	blocks  [ChunkSize]Block
	visible [ChunkSize]bool

	needsRemesh bool
	cacheVerts  []Vertex
	cacheIdx    []uint32
}

// NewChunk cria um chunk preenchido com Air e todas as células visíveis.
func NewChunk() *Chunk {
	c := &Chunk{}
	for i := range c.blocks {
		c.blocks[i] = Air
		c.visible[i] = true
	}
	return c
}

// cellIndex achata (x, y, z) para o índice x*256 + y*16 + z.
// Coordenadas fora de [0, 16) são violação de contrato do chamador.
func cellIndex(x, y, z int) int {
	if !inBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: coordenada de bloco inválida: %d, %d, %d", x, y, z))
	}
	return x*ChunkWidth*ChunkWidth + y*ChunkWidth + z
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkWidth &&
		y >= 0 && y < ChunkWidth &&
		z >= 0 && z < ChunkWidth
}

// Get retorna um ponteiro para o bloco na célula informada.
func (c *Chunk) Get(x, y, z int) *Block {
	return &c.blocks[cellIndex(x, y, z)]
}

// IsVisible retorna o bit de visibilidade da célula informada.
func (c *Chunk) IsVisible(x, y, z int) bool {
	return c.visible[cellIndex(x, y, z)]
}

// Dirty informa se a malha em cache está desatualizada.
func (c *Chunk) Dirty() bool {
	return c.needsRemesh
}

// SetBlock grava um bloco e atualiza o rastreador de visibilidade:
//  1. A própria célula fica visível sse todos os seis vizinhos dentro do
//     chunk estiverem marcados visíveis (vizinhos fora do chunk contam
//     como visíveis).
//  2. Se o novo bloco é transparente e a célula ficou visível, todos os
//     vizinhos dentro do chunk são marcados visíveis. A propagação tem
//     exatamente um anel de profundidade — não recursa.
//
// É uma aproximação barata de "esta célula toca espaço exposto", dependente
// da ordem das escritas; o custo por SetBlock é O(1) em vez de varrer o
// chunk inteiro.
func (c *Chunk) SetBlock(x, y, z int, b Block) {
	c.blocks[cellIndex(x, y, z)] = b

	vis := true
	for _, d := range neighborOffsets {
		nx, ny, nz := x+d[0], y+d[1], z+d[2]
		if !inBounds(nx, ny, nz) {
			continue
		}
		if !c.visible[cellIndex(nx, ny, nz)] {
			vis = false
			break
		}
	}
	c.visible[cellIndex(x, y, z)] = vis

	if b.Transparent && vis {
		for _, d := range neighborOffsets {
			nx, ny, nz := x+d[0], y+d[1], z+d[2]
			if inBounds(nx, ny, nz) {
				c.visible[cellIndex(nx, ny, nz)] = true
			}
		}
	}

	c.needsRemesh = true
}

// MeshData retorna a malha do chunk em espaço local, recalculando apenas
// quando algum SetBlock ocorreu desde a última chamada. Os slices
// retornados pertencem ao cache do chunk; quem precisar alterá-los deve
// copiar.
func (c *Chunk) MeshData(tex TextureLookup, reg *BlockRegistry) ([]Vertex, []uint32) {
	if c.needsRemesh {
		c.cacheVerts, c.cacheIdx = BuildChunkMesh(c, tex, reg)
		c.needsRemesh = false
	}
	return c.cacheVerts, c.cacheIdx
}
