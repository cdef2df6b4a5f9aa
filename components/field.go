package components

import (
	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/shared/grass"
	"github.com/yohamta/donburi"
)

// FieldData holds the grass field and the instance buffer the renderer reads.
type FieldData struct {
	Field *grass.Field

	// Matrices is refreshed from Field only when it is dirty.
	Matrices []math32.Matrix4
	Uploads  uint64
}

var Field = donburi.NewComponentType[FieldData]()
