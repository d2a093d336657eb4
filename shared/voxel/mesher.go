package voxel

import "VoxelForge/shared/atlas"

// TextureLookup é o serviço de consulta de coordenadas UV por nome de
// textura. Um nome ausente retorna erro e o mesher pula a face.
type TextureLookup interface {
	CoordsOf(name string) (atlas.TexCoords, error)
}

// faceDir identifica as seis faces de um cubo. A nomenclatura segue o
// ponto de vista da câmera padrão: Right é a face -X, Left a +X,
// Front a -Z e Back a +Z.
type faceDir int

const (
	dirUp faceDir = iota
	dirDown
	dirLeft
	dirRight
	dirFront
	dirBack
)

// BuildChunkMesh converte um chunk em buffers de vértices e índices,
// emitindo uma face por quadrado exposto (sem fusão de quads).
//
// Um bloco contribui faces apenas se não for invisível E o bit de
// visibilidade da célula estiver ligado. Cada uma das seis faces é emitida
// sse o vizinho naquela direção está fora do chunk (borda — sempre emite)
// ou é transparente. Garantias: vértices = 4 × faces, índices = 6 × faces,
// winding anti-horário uniforme visto de fora do cubo.
func BuildChunkMesh(c *Chunk, tex TextureLookup, reg *BlockRegistry) ([]Vertex, []uint32) {
	verts := make([]Vertex, 0, 1024)
	indices := make([]uint32, 0, 1536)

	emit := func(x, y, z int, dir faceDir, texName string) {
		if texName == "" {
			return
		}
		coords, err := tex.CoordsOf(texName)
		if err != nil {
			// Textura não empacotada: a face fica faltando, não é erro fatal
			return
		}
		addFace(&verts, &indices, float32(x), float32(y), float32(z), dir, coords)
	}

	for x := 0; x < ChunkWidth; x++ {
		for y := 0; y < ChunkWidth; y++ {
			for z := 0; z < ChunkWidth; z++ {
				block := c.Get(x, y, z)
				if block.Invisible || !c.IsVisible(x, y, z) {
					continue
				}
				desc := reg.ByID(block.ID)

				// Direções positivas
				if y == ChunkWidth-1 || c.Get(x, y+1, z).Transparent {
					emit(x, y, z, dirUp, desc.TopTexture)
				}
				if x == ChunkWidth-1 || c.Get(x+1, y, z).Transparent {
					emit(x, y, z, dirLeft, desc.SideTextures[3])
				}
				if z == ChunkWidth-1 || c.Get(x, y, z+1).Transparent {
					emit(x, y, z, dirBack, desc.SideTextures[2])
				}

				// Direções negativas
				if y == 0 || c.Get(x, y-1, z).Transparent {
					emit(x, y, z, dirDown, desc.BottomTexture)
				}
				if x == 0 || c.Get(x-1, y, z).Transparent {
					emit(x, y, z, dirRight, desc.SideTextures[1])
				}
				if z == 0 || c.Get(x, y, z-1).Transparent {
					emit(x, y, z, dirFront, desc.SideTextures[0])
				}
			}
		}
	}

	return verts, indices
}

// addFace acrescenta os 4 vértices e 6 índices de um quad. A ordem dos
// vértices e a atribuição dos cantos UV de cada direção são fixas e
// ajustadas à mão para que os dois triângulos girem no mesmo sentido
// (back-face culling correto). Os índices seguem o padrão local
// {1,0,2, 1,2,3} relativo ao início do quad.
func addFace(verts *[]Vertex, indices *[]uint32, x, y, z float32, dir faceDir, tc atlas.TexCoords) {
	faceStart := uint32(len(*verts))
	var face [4]Vertex
	var normal [3]float32

	switch dir {
	case dirUp:
		face[0] = vertexFromPos(x, y+1, z)
		face[1] = vertexFromPos(x+1, y+1, z)
		face[2] = vertexFromPos(x, y+1, z+1)
		face[3] = vertexFromPos(x+1, y+1, z+1)
		face[0].TexCoord = tc.TR
		face[1].TexCoord = tc.TL
		face[2].TexCoord = tc.BR
		face[3].TexCoord = tc.BL
		normal = [3]float32{0, 1, 0}

	case dirDown:
		face[0] = vertexFromPos(x, y, z)
		face[1] = vertexFromPos(x, y, z+1)
		face[2] = vertexFromPos(x+1, y, z)
		face[3] = vertexFromPos(x+1, y, z+1)
		face[0].TexCoord = tc.TR
		face[1].TexCoord = tc.TL
		face[2].TexCoord = tc.BR
		face[3].TexCoord = tc.BL
		normal = [3]float32{0, -1, 0}

	case dirRight: // face -X
		face[0] = vertexFromPos(x, y, z)
		face[1] = vertexFromPos(x, y+1, z)
		face[2] = vertexFromPos(x, y, z+1)
		face[3] = vertexFromPos(x, y+1, z+1)
		face[0].TexCoord = tc.BR
		face[1].TexCoord = tc.TR
		face[2].TexCoord = tc.BL
		face[3].TexCoord = tc.TL
		normal = [3]float32{-1, 0, 0}

	case dirLeft: // face +X
		face[0] = vertexFromPos(x+1, y, z)
		face[1] = vertexFromPos(x+1, y, z+1)
		face[2] = vertexFromPos(x+1, y+1, z)
		face[3] = vertexFromPos(x+1, y+1, z+1)
		face[0].TexCoord = tc.BL
		face[1].TexCoord = tc.BR
		face[2].TexCoord = tc.TL
		face[3].TexCoord = tc.TR
		normal = [3]float32{1, 0, 0}

	case dirBack: // face +Z
		face[0] = vertexFromPos(x, y, z+1)
		face[1] = vertexFromPos(x, y+1, z+1)
		face[2] = vertexFromPos(x+1, y, z+1)
		face[3] = vertexFromPos(x+1, y+1, z+1)
		face[0].TexCoord = tc.BR
		face[1].TexCoord = tc.TR
		face[2].TexCoord = tc.BL
		face[3].TexCoord = tc.TL
		normal = [3]float32{0, 0, 1}

	case dirFront: // face -Z
		face[0] = vertexFromPos(x, y, z)
		face[1] = vertexFromPos(x+1, y, z)
		face[2] = vertexFromPos(x, y+1, z)
		face[3] = vertexFromPos(x+1, y+1, z)
		face[0].TexCoord = tc.BR
		face[1].TexCoord = tc.BL
		face[2].TexCoord = tc.TR
		face[3].TexCoord = tc.TL
		normal = [3]float32{0, 0, -1}
	}

	for i := range face {
		face[i].Normal = normal
	}

	*verts = append(*verts, face[:]...)
	*indices = append(*indices,
		faceStart+1, faceStart, faceStart+2,
		faceStart+1, faceStart+2, faceStart+3,
	)
}
