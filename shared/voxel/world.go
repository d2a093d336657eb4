package voxel

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"VoxelForge/shared/util"
)

// World mantém o mapa esparso coordenada-de-chunk → chunk, o gerador
// compartilhado e o tamanho do pool de workers de meshing. Chunks são
// materializados de forma lazy no primeiro acesso; o mapa não tem limite
// de tamanho — remoção é responsabilidade do chamador via Evict.
type World struct {
	chunks  map[util.ChunkCoord]*Chunk
	gen     WorldGen
	workers int
}

// NewWorld cria um mundo vazio. workers <= 0 usa um worker por núcleo.
func NewWorld(gen WorldGen, workers int) *World {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &World{
		chunks:  make(map[util.ChunkCoord]*Chunk),
		gen:     gen,
		workers: workers,
	}
}

// Chunk retorna o chunk na coordenada, se existir.
func (w *World) Chunk(coord util.ChunkCoord) (*Chunk, bool) {
	c, ok := w.chunks[coord]
	return c, ok
}

// Len retorna quantos chunks estão materializados.
func (w *World) Len() int {
	return len(w.chunks)
}

// Evict remove um chunk do mapa. Política deliberada: o mapa é ilimitado
// e a remoção fica a cargo do chamador — sem LRU.
func (w *World) Evict(coord util.ChunkCoord) {
	delete(w.chunks, coord)
}

// GetChunkOrGenerate retorna o chunk na coordenada, gerando-o de forma
// síncrona no primeiro acesso. A geração percorre as 4096 células chamando
// SetBlock, o que paga o custo da propagação de visibilidade célula a célula.
func (w *World) GetChunkOrGenerate(coord util.ChunkCoord, reg *BlockRegistry) *Chunk {
	if c, ok := w.chunks[coord]; ok {
		return c
	}
	c, err := w.generate(coord, reg)
	if err != nil {
		// Inalcançável pelo caminho lazy acima; se acontecer é bug de contrato
		panic(err)
	}
	return c
}

// generate materializa um chunk novo. Retorna erro se a coordenada já
// existe (defensivo: geração dupla descartaria o estado do chunk atual).
func (w *World) generate(coord util.ChunkCoord, reg *BlockRegistry) (*Chunk, error) {
	if _, ok := w.chunks[coord]; ok {
		return nil, fmt.Errorf("voxel: chunk %s já gerado", coord)
	}

	c := NewChunk()
	for x := 0; x < ChunkWidth; x++ {
		for y := 0; y < ChunkWidth; y++ {
			for z := 0; z < ChunkWidth; z++ {
				c.SetBlock(x, y, z, w.gen.At(x, y, z, reg))
			}
		}
	}

	w.chunks[coord] = c
	return c, nil
}

// MakeMesh gera a malha de todos os chunks em paralelo e costura os
// resultados em um único par (vértices, índices) pronto para um draw call.
//
// Cada worker gera a malha de um chunk inteiro localmente, traduz as
// posições pela origem do chunk (coord × 16) e só então entra no mutex para
// anexar ao acumulador global. Os índices de cada chunk são densos a partir
// de 0, então o maior índice global é sempre len(verts)-1 e o rebase do
// próximo chunk é o tamanho atual do buffer de vértices — calculado no
// momento do merge, o que mantém o resultado correto seja qual for a ordem
// de término dos workers.
func (w *World) MakeMesh(tex TextureLookup, reg *BlockRegistry) ([]Vertex, []uint32) {
	start := time.Now()

	type job struct {
		coord util.ChunkCoord
		chunk *Chunk
	}

	// Snapshot do mapa antes do fan-out: nenhuma mutação concorre com a
	// leitura paralela
	jobs := make(chan job, len(w.chunks))
	for coord, c := range w.chunks {
		jobs <- job{coord: coord, chunk: c}
	}
	close(jobs)

	var (
		mu      sync.Mutex
		verts   []Vertex
		indices []uint32
	)

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				chunkVerts, chunkIdx := j.chunk.MeshData(tex, reg)
				if len(chunkVerts) == 0 {
					continue
				}

				// Tradução para espaço de mundo fora do lock; o cache do
				// chunk permanece em espaço local
				translated := make([]Vertex, len(chunkVerts))
				copy(translated, chunkVerts)
				ox := float32(j.coord.X) * ChunkWidth
				oy := float32(j.coord.Y) * ChunkWidth
				oz := float32(j.coord.Z) * ChunkWidth
				for i := range translated {
					translated[i].Position[0] += ox
					translated[i].Position[1] += oy
					translated[i].Position[2] += oz
				}

				mu.Lock()
				offset := uint32(len(verts))
				verts = append(verts, translated...)
				for _, ix := range chunkIdx {
					indices = append(indices, ix+offset)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	log.Printf("[World] malha global: %d chunks, %d vértices, %d índices em %v",
		len(w.chunks), len(verts), len(indices), time.Since(start))

	return verts, indices
}
