package voxel

// Vertex é o registro de vértice consumido direto pelo renderer:
// posição, coordenada de textura e normal, nessa ordem, 32 bytes sem
// padding. O layout binário é estável — qualquer mudança quebra o
// contrato com o buffer da GPU.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
	Normal   [3]float32
}

// vertexFromPos cria um vértice só com posição; UV e normal são
// preenchidos pela emissão da face.
func vertexFromPos(x, y, z float32) Vertex {
	return Vertex{Position: [3]float32{x, y, z}}
}
