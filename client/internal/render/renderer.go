package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"image"
	"log"
	"unsafe"

	"VoxelForge/shared/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxBatchQuads limita cada batch a 16000 quads (64000 vértices), abaixo do
// teto de 65535 do buffer de índices uint16 do raylib. A malha global é
// sempre múltiplo de quads, então o corte em fronteira de quad preserva
// todos os triângulos.
const maxBatchQuads = 16000

// Renderer converte a malha global do mundo em modelos raylib e desenha.
type Renderer struct {
	models    []rl.Model
	atlasTex  rl.Texture2D
	hasAtlas  bool
	Wireframe bool

	// Estatísticas do último upload, para o HUD
	VertexCount int
	IndexCount  int
}

// New cria um renderer vazio.
func New() *Renderer {
	return &Renderer{}
}

// UploadAtlas envia a imagem do atlas para a GPU como textura diffuse.
func (r *Renderer) UploadAtlas(img *image.RGBA) {
	if !rl.IsWindowReady() {
		return
	}
	if r.hasAtlas {
		rl.UnloadTexture(r.atlasTex)
	}
	rlImg := rl.NewImageFromImage(img)
	r.atlasTex = rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(r.atlasTex, rl.FilterPoint)
	r.hasAtlas = true
}

// UploadWorldMesh descarta os modelos atuais e envia o novo par de buffers
// para a GPU, fatiado em batches alinhados a quads por causa dos índices
// uint16 do raylib.
func (r *Renderer) UploadWorldMesh(verts []voxel.Vertex, indices []uint32) {
	if !rl.IsWindowReady() {
		return
	}

	r.unloadModels()
	r.VertexCount = len(verts)
	r.IndexCount = len(indices)

	if len(verts) == 0 {
		return
	}

	quads := len(verts) / 4
	for q0 := 0; q0 < quads; q0 += maxBatchQuads {
		q1 := q0 + maxBatchQuads
		if q1 > quads {
			q1 = quads
		}
		r.uploadBatch(verts[q0*4:q1*4], indices[q0*6:q1*6], uint32(q0*4))
	}

	log.Printf("[Renderer] %d vértices em %d modelos", len(verts), len(r.models))
}

// uploadBatch cria um rl.Mesh a partir de uma fatia da malha global.
// rebase é o índice global do primeiro vértice da fatia; subtraí-lo devolve
// os índices ao espaço local do batch.
func (r *Renderer) uploadBatch(verts []voxel.Vertex, indices []uint32, rebase uint32) {
	vertices := make([]float32, 0, len(verts)*3)
	texcoords := make([]float32, 0, len(verts)*2)
	normals := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		vertices = append(vertices, v.Position[0], v.Position[1], v.Position[2])
		texcoords = append(texcoords, v.TexCoord[0], v.TexCoord[1])
		normals = append(normals, v.Normal[0], v.Normal[1], v.Normal[2])
	}

	localIdx := make([]uint16, 0, len(indices))
	for _, ix := range indices {
		localIdx = append(localIdx, uint16(ix-rebase))
	}

	var mesh rl.Mesh
	mesh.VertexCount = int32(len(verts))
	mesh.TriangleCount = int32(len(localIdx) / 3)
	mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&vertices[0]), len(vertices)*4))
	mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&texcoords[0]), len(texcoords)*4))
	mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&normals[0]), len(normals)*4))
	mesh.Indices = (*uint16)(copyToC(unsafe.Pointer(&localIdx[0]), len(localIdx)*2))

	rl.UploadMesh(&mesh, false)
	model := rl.LoadModelFromMesh(mesh)

	if r.hasAtlas && model.MaterialCount > 0 {
		materials := unsafe.Slice(model.Materials, model.MaterialCount)
		rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, r.atlasTex)
	}

	r.models = append(r.models, model)
}

// copyToC duplica um buffer Go em memória C; o raylib assume a posse dos
// buffers da malha e os libera em UnloadModel.
func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// Draw desenha todos os batches da malha do mundo.
func (r *Renderer) Draw() {
	origin := rl.Vector3{}
	for _, m := range r.models {
		if r.Wireframe {
			rl.DrawModelWires(m, origin, 1.0, rl.White)
		} else {
			rl.DrawModel(m, origin, 1.0, rl.White)
		}
	}
}

func (r *Renderer) unloadModels() {
	for _, m := range r.models {
		rl.UnloadModel(m)
	}
	r.models = r.models[:0]
}

// Unload libera todos os recursos de GPU do renderer.
func (r *Renderer) Unload() {
	r.unloadModels()
	if r.hasAtlas {
		rl.UnloadTexture(r.atlasTex)
		r.hasAtlas = false
	}
}
