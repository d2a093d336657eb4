package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VoxelForge/shared/util"
)

func TestGetChunkOrGenerateLazy(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)
	w := NewWorld(SphereGen{Radius: 7}, 2)

	coord := util.NewChunkCoord(0, 0, 0)
	c1 := w.GetChunkOrGenerate(coord, reg)
	require.NotNil(t, c1)
	assert.Equal(t, 1, w.Len())

	// Segundo acesso é lookup puro: mesmo chunk, nada novo materializado
	c2 := w.GetChunkOrGenerate(coord, reg)
	assert.Same(t, c1, c2)
	assert.Equal(t, 1, w.Len())

	// O conteúdo gerado bate com o gerador célula a célula
	assert.Equal(t, reg.Instantiate("dirt"), *c1.Get(8, 8, 8))
	assert.Equal(t, reg.Instantiate("air"), *c1.Get(0, 0, 0))
}

func TestGenerateExistingChunkFails(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)
	w := NewWorld(SphereGen{Radius: 7}, 2)

	coord := util.NewChunkCoord(1, 2, 3)
	_, err := w.generate(coord, reg)
	require.NoError(t, err)

	_, err = w.generate(coord, reg)
	assert.Error(t, err, "gerar duas vezes a mesma coordenada é violação de contrato")
}

func TestEvict(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)
	w := NewWorld(SphereGen{Radius: 7}, 2)

	coord := util.NewChunkCoord(0, 0, 0)
	w.GetChunkOrGenerate(coord, reg)
	w.Evict(coord)
	assert.Equal(t, 0, w.Len())

	_, ok := w.Chunk(coord)
	assert.False(t, ok)
}

// A costura global precisa valer para qualquer ordem de término dos
// workers: somas de vértices/índices batem com os chunks individuais e
// nenhum índice aponta para fora do buffer rebaseado.
func TestMakeMeshStitching(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)
	tex := newTestAtlas(t)

	coords := []util.ChunkCoord{
		util.NewChunkCoord(0, 0, 0),
		util.NewChunkCoord(1, 0, 0),
		util.NewChunkCoord(0, 0, 1),
		util.NewChunkCoord(-1, 0, -1),
	}

	w := NewWorld(SphereGen{Radius: 7}, 4)
	wantVerts, wantIdx := 0, 0
	for _, coord := range coords {
		c := w.GetChunkOrGenerate(coord, reg)
		cv, ci := c.MeshData(tex, reg)
		wantVerts += len(cv)
		wantIdx += len(ci)
	}
	require.Greater(t, wantVerts, 0)

	verts, indices := w.MakeMesh(tex, reg)
	assert.Equal(t, wantVerts, len(verts))
	assert.Equal(t, wantIdx, len(indices))
	assert.Zero(t, len(verts)%4)
	assert.Equal(t, 6*(len(verts)/4), len(indices))

	for _, ix := range indices {
		if int(ix) >= len(verts) {
			t.Fatalf("índice %d fora do buffer global de %d vértices", ix, len(verts))
		}
	}
}

// Posições de cada chunk são transladadas por coord × 16 antes do merge.
func TestMakeMeshTranslatesPositions(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)
	tex := newTestAtlas(t)

	w := NewWorld(SphereGen{Radius: 7}, 1)
	w.GetChunkOrGenerate(util.NewChunkCoord(2, 0, 0), reg)

	verts, _ := w.MakeMesh(tex, reg)
	require.NotEmpty(t, verts)

	for _, v := range verts {
		if v.Position[0] < 32 || v.Position[0] > 48 {
			t.Fatalf("vértice x=%v fora do volume do chunk (2,0,0)", v.Position[0])
		}
	}
}

// Rodar MakeMesh repetidas vezes (cache quente, ordens de merge distintas)
// sempre produz os mesmos totais e índices válidos.
func TestMakeMeshStableAcrossRuns(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)
	tex := newTestAtlas(t)

	w := NewWorld(SphereGen{Radius: 7}, 4)
	for cx := int32(-1); cx <= 1; cx++ {
		for cz := int32(-1); cz <= 1; cz++ {
			w.GetChunkOrGenerate(util.NewChunkCoord(cx, 0, cz), reg)
		}
	}

	verts0, idx0 := w.MakeMesh(tex, reg)
	for run := 0; run < 5; run++ {
		verts, indices := w.MakeMesh(tex, reg)
		assert.Equal(t, len(verts0), len(verts), "rodada %d", run)
		assert.Equal(t, len(idx0), len(indices), "rodada %d", run)
		for _, ix := range indices {
			if int(ix) >= len(verts) {
				t.Fatalf("rodada %d: índice %d fora do buffer de %d vértices", run, ix, len(verts))
			}
		}
	}
}

func TestMakeMeshEmptyWorld(t *testing.T) {
	w := NewWorld(SphereGen{Radius: 7}, 2)
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)
	tex := newTestAtlas(t)

	verts, indices := w.MakeMesh(tex, reg)
	assert.Empty(t, verts)
	assert.Empty(t, indices)
}
