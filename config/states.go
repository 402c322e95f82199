package config

// Facing is the direction the player is looking.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

var facingNames = map[Facing]string{
	FacingUp:    "up",
	FacingDown:  "down",
	FacingLeft:  "left",
	FacingRight: "right",
}

func (f Facing) String() string {
	if name, ok := facingNames[f]; ok {
		return name
	}
	return "unknown"
}

// PlayerAction is what the player is doing.
type PlayerAction int

const (
	ActionIdle PlayerAction = iota
	ActionRun
)

var actionNames = map[PlayerAction]string{
	ActionIdle: "idle",
	ActionRun:  "run",
}

func (a PlayerAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ClipKey identifies one entry of the player animation table.
type ClipKey struct {
	Action PlayerAction
	Facing Facing
}
