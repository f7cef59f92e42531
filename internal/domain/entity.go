package domain

// Clock - игровое время. TotalMinutes в [0, 1440).
// Accumulator копит дробные минуты между тиками.
type Clock struct {
	Day          int     `json:"day"`
	TotalMinutes int     `json:"totalMinutes"`
	Accumulator  float64 `json:"-"`
}

// NewClock - первый день, 6:00
func NewClock() Clock {
	return Clock{Day: 1, TotalMinutes: DayStartMinute}
}

// Hour - текущий час
func (c Clock) Hour() int {
	return c.TotalMinutes / 60
}

// Inventory - семена и урожай
type Inventory struct {
	Seeds int `json:"parsnipSeeds"`
	Crops int `json:"parsnip"`
}

// Player - состояние игрока
type Player struct {
	Pos          Vec2      `json:"pos"`
	Facing       Facing    `json:"facing"`
	SelectedTool Tool      `json:"selectedTool"`
	Stamina      int       `json:"stamina"`
	Money        int       `json:"money"`
	Inventory    Inventory `json:"inventory"`
	Moving       bool      `json:"moving"`
}

// NewPlayer создает игрока в центре стартовой клетки
func NewPlayer(spawn Position) Player {
	return Player{
		Pos:          spawn.Center(),
		Facing:       DefaultFacing,
		SelectedTool: ToolHoe,
		Stamina:      StaminaMax,
		Money:        StartingMoney,
		Inventory:    Inventory{Seeds: StartingSeeds},
	}
}

// Tile - клетка под игроком
func (p *Player) Tile() Position {
	return p.Pos.Tile()
}

// FacingTile - клетка перед игроком
func (p *Player) FacingTile() Position {
	return p.Tile().Shift(p.Facing)
}

// ConsumeStamina списывает стамину. false, если не хватает (ничего не меняет).
func (p *Player) ConsumeStamina(cost int) bool {
	if p.Stamina < cost {
		return false
	}
	p.Stamina -= cost
	return true
}

// NPC - житель с расписанием
type NPC struct {
	Name        string `json:"name"`
	Pos         Vec2   `json:"pos"`
	Facing      Facing `json:"facing"`
	Friendship  int    `json:"friendship"`
	LastTalkDay int    `json:"lastTalkDay"`
	TargetIndex int    `json:"targetIndex"`
	Moving      bool   `json:"moving"`
}

// NewNPC ставит NPC в первую точку расписания
func NewNPC(schedule []Waypoint) NPC {
	npc := NPC{Name: NPCName, Facing: DefaultFacing}
	if len(schedule) > 0 {
		npc.Pos = Position{X: schedule[0].X, Y: schedule[0].Y}.Center()
	}
	return npc
}
