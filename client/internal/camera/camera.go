package camera

import (
	"math"

	"VoxelForge/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller gerencia a câmera orbital: WASD move o ponto de foco no plano
// do chão, o botão esquerdo orbita e a roda controla o zoom. O movimento é
// interpolado para dar sensação de peso.
type Controller struct {
	RLCamera rl.Camera3D

	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	MinZoom      float32
	MaxZoom      float32
	SmoothFactor float32

	// Estado alvo (para interpolação suave)
	TargetLookAt rl.Vector3
	TargetZoom   float32
	TargetAngleY float32 // Azimute (radianos)
	TargetAngleX float32 // Elevação (radianos)

	// Estado atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria um controlador com os ajustes informados.
func New(moveSpeed, rotateSpeed, zoomSpeed float32) *Controller {
	c := &Controller{
		MoveSpeed:    moveSpeed,
		RotateSpeed:  rotateSpeed,
		ZoomSpeed:    zoomSpeed,
		MinZoom:      5.0,
		MaxZoom:      200.0,
		SmoothFactor: 0.1,

		TargetZoom:   50.0,
		TargetAngleY: 45.0 * rl.Deg2rad,
		TargetAngleX: -30.0 * rl.Deg2rad,
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	c.recalcPosition()
	return c
}

// SetTarget posiciona o foco imediatamente, sem suavização.
func (c *Controller) SetTarget(pos rl.Vector3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
	c.recalcPosition()
}

// Update interpola foco e zoom em direção aos alvos. Chamar a cada frame.
func (c *Controller) Update(dt float32) {
	// Fator de amortecimento normalizado para 60 FPS
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	cur := mgl32.Vec3{c.CurrentLookAt.X, c.CurrentLookAt.Y, c.CurrentLookAt.Z}
	tgt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}
	lerped := cur.Add(tgt.Sub(cur).Mul(factor))

	c.CurrentLookAt = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.recalcPosition()
}

// recalcPosition converte (ângulos, zoom) esféricos na posição cartesiana
// da câmera ao redor do foco atual.
func (c *Controller) recalcPosition() {
	dist := c.CurrentZoom

	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + dist*cosX*sinY,
		Y: c.CurrentLookAt.Y + dist*-sinX,
		Z: c.CurrentLookAt.Z + dist*cosX*cosY,
	}
	c.RLCamera.Target = c.CurrentLookAt
}

// HandleInput processa entrada do usuário. Retorna true se houve movimento.
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		moved = true
		c.TargetZoom = util.Clamp(c.TargetZoom-wheel*c.ZoomSpeed, c.MinZoom, c.MaxZoom)
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp na elevação para a câmera não virar de ponta cabeça
		c.TargetAngleX = util.Clamp(c.TargetAngleX,
			-89.0*rl.Deg2rad, -5.0*rl.Deg2rad)
	}

	// WASD relativo à câmera, projetado no plano XZ
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	lookAt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}

	forward := lookAt.Sub(camPos)
	forward[1] = 0
	if forward.Len() == 0 {
		return moved
	}
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	// Quanto mais longe o zoom, mais rápido o pan
	speed := c.MoveSpeed * (c.CurrentZoom / 50.0) * dt

	move := mgl32.Vec3{}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	if move.Len() > 0 {
		moved = true
		lookAt = lookAt.Add(move.Normalize().Mul(speed))
		c.TargetLookAt = rl.Vector3{X: lookAt.X(), Y: lookAt.Y(), Z: lookAt.Z()}
	}

	return moved
}
