package savegame

// Document - формат сохранения, один JSON-документ под фиксированным ключом.
// Ключи грядок - строки "x,y".
type Document struct {
	Day          int                `json:"day" jsonschema:"minimum=1"`
	TotalMinutes int                `json:"totalMinutes" jsonschema:"minimum=0,maximum=1439"`
	Weather      string             `json:"weather" jsonschema:"enum=Sunny,enum=Cloudy,enum=Rainy"`
	Stamina      int                `json:"stamina" jsonschema:"minimum=0,maximum=100"`
	Money        int                `json:"money" jsonschema:"minimum=0"`
	Inventory    InventoryDoc       `json:"inventory"`
	Plots        map[string]PlotDoc `json:"plots"`
	NPC          NPCDoc             `json:"npc"`
	Player       PlayerDoc          `json:"player"`
}

type InventoryDoc struct {
	ParsnipSeeds int `json:"parsnipSeeds" jsonschema:"minimum=0"`
	Parsnip      int `json:"parsnip" jsonschema:"minimum=0"`
}

type PlotDoc struct {
	Tilled  bool    `json:"tilled"`
	Watered bool    `json:"watered"`
	Crop    *string `json:"crop"`
	Growth  int     `json:"growth" jsonschema:"minimum=0,maximum=2"`
	Ready   bool    `json:"ready"`
}

type FacingDoc struct {
	X int `json:"x" jsonschema:"minimum=-1,maximum=1"`
	Y int `json:"y" jsonschema:"minimum=-1,maximum=1"`
}

type NPCDoc struct {
	Friendship  int       `json:"friendship" jsonschema:"minimum=0"`
	LastTalkDay int       `json:"lastTalkDay" jsonschema:"minimum=0"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Facing      FacingDoc `json:"facing"`
}

type PlayerDoc struct {
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	Facing       FacingDoc `json:"facing"`
	SelectedTool int       `json:"selectedTool" jsonschema:"minimum=0,maximum=4"`
}
