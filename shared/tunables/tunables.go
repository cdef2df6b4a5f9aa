// Package tunables reads optional overrides for the viewer's tuning constants
// from a YAML file.
package tunables

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the viewer looks for overrides next to the binary.
const DefaultPath = "meadow.yaml"

// FieldOverrides tune the grass field. Count and Side take effect on the
// next scene load only.
type FieldOverrides struct {
	Count        *int     `yaml:"count"`
	Side         *float32 `yaml:"side"`
	Variation    *float32 `yaml:"variation"`
	WindStrength *float32 `yaml:"windStrength"`
}

// CameraOverrides tune the follow camera. Angles are in degrees.
type CameraOverrides struct {
	Sensitivity *float32 `yaml:"sensitivity"`
	Smoothing   *float32 `yaml:"smoothing"`
	MinPitchDeg *float32 `yaml:"minPitchDeg"`
	MaxPitchDeg *float32 `yaml:"maxPitchDeg"`
	FOV         *float32 `yaml:"fov"`
}

// AvatarOverrides tune avatar motion.
type AvatarOverrides struct {
	MoveSpeed     *float32 `yaml:"moveSpeed"`
	RotationSpeed *float32 `yaml:"rotationSpeed"`
	JumpSpeed     *float32 `yaml:"jumpSpeed"`
	Gravity       *float32 `yaml:"gravity"`
}

// Overrides is the file layout. Absent keys leave defaults alone.
type Overrides struct {
	Field  FieldOverrides  `yaml:"field"`
	Camera CameraOverrides `yaml:"camera"`
	Avatar AvatarOverrides `yaml:"avatar"`
}

// Parse decodes overrides and rejects values that cannot be applied.
func Parse(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("tunables: parse: %w", err)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Load reads overrides from path. A missing file yields nil overrides and no
// error.
func Load(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tunables: read %s: %w", path, err)
	}
	return Parse(data)
}

func (o *Overrides) validate() error {
	if o.Field.Count != nil && *o.Field.Count < 0 {
		return fmt.Errorf("tunables: field.count must be >= 0, got %d", *o.Field.Count)
	}
	if o.Field.Side != nil && *o.Field.Side <= 0 {
		return fmt.Errorf("tunables: field.side must be > 0, got %g", *o.Field.Side)
	}
	if o.Field.WindStrength != nil && *o.Field.WindStrength < 0 {
		return fmt.Errorf("tunables: field.windStrength must be >= 0, got %g", *o.Field.WindStrength)
	}
	lo, hi := o.Camera.MinPitchDeg, o.Camera.MaxPitchDeg
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("tunables: camera.minPitchDeg %g exceeds maxPitchDeg %g", *lo, *hi)
	}
	return nil
}

// Set copies v into dst when v is present.
func Set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
