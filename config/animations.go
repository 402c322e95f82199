package config

// ClipDef describes one spritesheet animation. Sheet is relative to the
// embedded images directory.
type ClipDef struct {
	Sheet      string
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
	FlipX      bool
	FlipY      bool
	TickMillis int
}

// PlayerAnimations maps every (action, facing) pair the player can reach to
// its clip. Right-facing clips reuse the left sheet mirrored.
var PlayerAnimations = map[ClipKey]ClipDef{
	{ActionIdle, FacingUp}:    {Sheet: "texture/player/back/idle_sprite_sheet.png", CellWidth: 293, CellHeight: 337, Columns: 5, Rows: 5, TickMillis: 25},
	{ActionIdle, FacingDown}:  {Sheet: "texture/player/front/idle_sprite_sheet.png", CellWidth: 280, CellHeight: 339, Columns: 5, Rows: 5, TickMillis: 25},
	{ActionIdle, FacingLeft}:  {Sheet: "texture/player/left/idle_sprite_sheet.png", CellWidth: 267, CellHeight: 338, Columns: 5, Rows: 5, TickMillis: 25},
	{ActionIdle, FacingRight}: {Sheet: "texture/player/left/idle_sprite_sheet.png", CellWidth: 267, CellHeight: 338, Columns: 5, Rows: 5, FlipX: true, TickMillis: 25},
	{ActionRun, FacingUp}:     {Sheet: "texture/player/back/run_sprite_sheet.png", CellWidth: 286, CellHeight: 341, Columns: 4, Rows: 4, TickMillis: 25},
	{ActionRun, FacingDown}:   {Sheet: "texture/player/front/run_sprite_sheet.png", CellWidth: 286, CellHeight: 341, Columns: 4, Rows: 4, TickMillis: 25},
	{ActionRun, FacingLeft}:   {Sheet: "texture/player/left/run_sprite_sheet.png", CellWidth: 269, CellHeight: 341, Columns: 4, Rows: 4, TickMillis: 25},
	{ActionRun, FacingRight}:  {Sheet: "texture/player/left/run_sprite_sheet.png", CellWidth: 269, CellHeight: 341, Columns: 4, Rows: 4, FlipX: true, TickMillis: 25},
}
