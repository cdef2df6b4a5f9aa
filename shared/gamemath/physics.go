package gamemath

// Jump integrates the vertical motion of a grounded character.
type Jump struct {
	Speed    float32 // launch velocity, units per second
	Gravity  float32 // downward acceleration, units per second squared
	Velocity float32
	Airborne bool
}

// Step advances height y by delta seconds. A jump starts only from the ground;
// landing snaps to groundY and clears the velocity.
func (j *Jump) Step(y, groundY float32, pressed bool, delta float32) float32 {
	if !j.Airborne {
		if !pressed {
			return y
		}
		j.Airborne = true
		j.Velocity = j.Speed
	}

	j.Velocity -= j.Gravity * delta
	y += j.Velocity * delta
	if y <= groundY {
		y = groundY
		j.Velocity = 0
		j.Airborne = false
	}
	return y
}
