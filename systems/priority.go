package systems

// Frame order of the simulation passes, lower runs first
const (
	PrioritySpawn     = 10
	PriorityCombo     = 20
	PriorityTrail     = 30
	PriorityObjects   = 40
	PriorityParticles = 50
)
