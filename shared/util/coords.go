package util

import "fmt"

// ChunkCoord representa a posição de um chunk na grade do mundo.
// As unidades são chunks inteiros, não células: o chunk (1, 0, 0) começa
// na célula de mundo (16, 0, 0).
type ChunkCoord struct {
	X, Y, Z int32
}

// NewChunkCoord cria uma nova coordenada de chunk.
func NewChunkCoord(x, y, z int32) ChunkCoord {
	return ChunkCoord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c ChunkCoord) Add(other ChunkCoord) ChunkCoord {
	return ChunkCoord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// Sub subtrai duas coordenadas.
func (c ChunkCoord) Sub(other ChunkCoord) ChunkCoord {
	return ChunkCoord{
		X: c.X - other.X,
		Y: c.Y - other.Y,
		Z: c.Z - other.Z,
	}
}

// Equals verifica igualdade entre coordenadas.
func (c ChunkCoord) Equals(other ChunkCoord) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// String retorna a representação em string da coordenada.
func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}
