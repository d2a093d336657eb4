package app

import (
	"fmt"
	"log"

	"VoxelForge/client/internal/assets"
	"VoxelForge/client/internal/camera"
	"VoxelForge/client/internal/render"
	"VoxelForge/shared/atlas"
	"VoxelForge/shared/config"
	"VoxelForge/shared/util"
	"VoxelForge/shared/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State representa os estados possíveis da aplicação.
type State int

const (
	StateLoading State = iota // Gerando mundo e malha
	StateViewing              // Visualizando o mundo
)

// App é a aplicação principal do VoxelForge: liga config → registro →
// atlas → mundo → malha → renderer e roda o loop raylib.
type App struct {
	Config *config.Config
	State  State

	Cam *camera.Controller

	registry *voxel.BlockRegistry
	world    *voxel.World
	atlas    *atlas.Atlas
	renderer *render.Renderer

	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		State:  StateLoading,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)

	a.Cam = camera.New(a.Config.CameraSpeed, a.Config.CameraSensitivity, a.Config.ZoomSpeed)
	a.renderer = render.New()
	a.renderer.Wireframe = a.Config.WireframeMode

	a.bootstrap()
	a.State = StateViewing

	// Centraliza a câmera no meio do volume gerado
	center := float32(voxel.ChunkWidth) / 2
	a.Cam.SetTarget(rl.Vector3{X: center, Y: center, Z: center})

	log.Println("[App] mundo pronto, entrando no loop principal")

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		a.handleInput(dt)
		a.Cam.Update(dt)
		a.draw()
		a.frameCount++
	}

	a.renderer.Unload()
	rl.CloseWindow()
}

// bootstrap monta registro, atlas e mundo, e sobe a primeira malha.
func (a *App) bootstrap() {
	a.registry = voxel.NewBlockRegistry()
	voxel.RegisterDefaultBlocks(a.registry)

	mgr := assets.NewManager(a.Config.AssetsDir)
	imgs := mgr.LoadAll(a.registry.TextureNames())

	packed, err := atlas.Pack(imgs)
	if err != nil {
		// Sem atlas não há UVs: nada além de abortar faz sentido aqui
		log.Fatalf("[App] falha ao montar o atlas: %v", err)
	}
	a.atlas = packed
	a.renderer.UploadAtlas(packed.Image())
	log.Printf("[App] atlas com %d texturas (%dx%d células)",
		packed.Len(), packed.Side(), packed.Side())

	var gen voxel.WorldGen
	switch a.Config.Generator {
	case "perlin":
		gen = voxel.NewPerlinGen(a.Config.Seed)
	default:
		gen = voxel.SphereGen{Radius: a.Config.SphereRadius}
	}
	a.world = voxel.NewWorld(gen, a.Config.MesherThreads)

	r := a.Config.WorldRadius
	for cx := -r; cx <= r; cx++ {
		for cz := -r; cz <= r; cz++ {
			a.world.GetChunkOrGenerate(util.NewChunkCoord(cx, 0, cz), a.registry)
		}
	}
	log.Printf("[App] %d chunks gerados (raio %d)", a.world.Len(), r)

	a.rebuildMesh()
}

// rebuildMesh refaz a malha global e envia para a GPU.
func (a *App) rebuildMesh() {
	verts, indices := a.world.MakeMesh(a.atlas, a.registry)
	a.renderer.UploadWorldMesh(verts, indices)
}

// handleInput processa atalhos do app; o resto vai para a câmera.
func (a *App) handleInput(dt float32) {
	a.Cam.HandleInput(dt)

	if rl.IsKeyPressed(rl.KeyR) {
		a.rebuildMesh()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.renderer.Wireframe = !a.renderer.Wireframe
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyX) {
		a.digAtFocus()
	}
}

// digAtFocus remove o bloco mais próximo do foco da câmera — exercita o
// caminho SetBlock → remesh em tempo real.
func (a *App) digAtFocus() {
	look := a.Cam.CurrentLookAt
	coord, lx, ly, lz := worldToChunkCell(look.X, look.Y, look.Z)

	chunk, ok := a.world.Chunk(coord)
	if !ok {
		return
	}
	chunk.SetBlock(lx, ly, lz, a.registry.Instantiate("air"))
	a.rebuildMesh()
}

// worldToChunkCell decompõe uma posição de mundo em (chunk, célula local).
func worldToChunkCell(x, y, z float32) (util.ChunkCoord, int, int, int) {
	div := func(v float32) (int32, int) {
		cell := int(v)
		if v < 0 && v != float32(cell) {
			cell--
		}
		c := cell / voxel.ChunkWidth
		l := cell % voxel.ChunkWidth
		if l < 0 {
			c--
			l += voxel.ChunkWidth
		}
		return int32(c), l
	}
	cx, lx := div(x)
	cy, ly := div(y)
	cz, lz := div(z)
	return util.NewChunkCoord(cx, cy, cz), lx, ly, lz
}

// draw renderiza um frame completo.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.SkyBlue)

	rl.BeginMode3D(a.Cam.RLCamera)
	a.renderer.Draw()
	if a.Config.ShowGrid {
		rl.DrawGrid(64, float32(voxel.ChunkWidth))
	}
	rl.EndMode3D()

	if a.Config.ShowDebugInfo {
		a.drawHUD()
	}

	rl.EndDrawing()
}

// drawHUD desenha o overlay de debug.
func (a *App) drawHUD() {
	rl.DrawFPS(10, 10)
	rl.DrawText(fmt.Sprintf("chunks: %d", a.world.Len()), 10, 34, 18, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("vertices: %d  indices: %d",
		a.renderer.VertexCount, a.renderer.IndexCount), 10, 54, 18, rl.DarkGray)
	rl.DrawText("WASD move | LMB orbita | roda zoom | X cava | R remesh | F wireframe",
		10, int32(rl.GetScreenHeight())-26, 16, rl.DarkGray)
}
