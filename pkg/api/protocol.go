package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы ответов сервера
const (
	ResponseUpdate = "UPDATE" // снимок состояния симуляции
	ResponseWorld  = "WORLD"  // статическая карта, один раз после INIT
	ResponseError  = "ERROR"  // ошибка протокола
)

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// UPDATE - полный снимок изменяемого состояния, рассылается после каждого тика.
type ServerResponse struct {
	// Type тип сообщения: UPDATE, WORLD или ERROR.
	Type string `json:"type"`

	// Tick номер тика симуляции, на котором снят снимок.
	Tick int `json:"tick"`

	// SessionID ID подключения, которому адресован ответ.
	SessionID string `json:"sessionId,omitempty"`

	// Status данные для строки статуса (часы, погода, деньги, стамина, инструмент).
	Status *StatusView `json:"status,omitempty"`

	// Player и NPC - позиции, взгляд и флаг движения.
	Player *AgentView `json:"player,omitempty"`
	NPC    *AgentView `json:"npc,omitempty"`

	// Plots все грядки, когда-либо тронутые игроком.
	Plots []PlotView `json:"plots,omitempty"`

	// Message текущее всплывающее сообщение (живет 3 секунды).
	Message *LogEntry `json:"message,omitempty"`

	// World статическая карта. Только в ответе WORLD.
	World *WorldView `json:"world,omitempty"`

	// Error текст ошибки протокола. Только в ответе ERROR.
	Error string `json:"error,omitempty"`
}

// StatusView - строка статуса
type StatusView struct {
	Day          int    `json:"day"`
	Clock        string `json:"clock"` // "6:00 AM"
	TotalMinutes int    `json:"totalMinutes"`
	Weather      string `json:"weather"`
	Money        int    `json:"money"`
	Stamina      int    `json:"stamina"`
	MaxStamina   int    `json:"maxStamina"`
	StaminaPct   int    `json:"staminaPct"`
	Seeds        int    `json:"parsnipSeeds"`
	Crops        int    `json:"parsnip"`
	ToolSlot     int    `json:"toolSlot"` // 1-5
	ToolLabel    string `json:"toolLabel"`
	NPCName      string `json:"npcName"`
	Friendship   int    `json:"friendship"`
}

// FacingView - направление взгляда
type FacingView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AgentView это DTO для игрока или NPC.
type AgentView struct {
	Name   string     `json:"name,omitempty"`
	X      float64    `json:"x"` // в единицах мира
	Y      float64    `json:"y"`
	TileX  int        `json:"tileX"`
	TileY  int        `json:"tileY"`
	Facing FacingView `json:"facing"`
	Moving bool       `json:"moving"`
}

// PlotView - визуальное состояние грядки.
// Stage: 0 - пусто, 1..3 - стадия роста (3 - можно собирать).
type PlotView struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Tilled  bool   `json:"tilled"`
	Watered bool   `json:"watered"`
	Crop    string `json:"crop,omitempty"`
	Stage   int    `json:"stage"`
}

// LogEntry представляет одно сообщение для игрока.
type LogEntry struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Type      string  `json:"type"`      // INFO, SPEECH, ERROR, SYSTEM
	Timestamp int64   `json:"timestamp"` // Unix milliseconds
	TTL       float64 `json:"ttl"`       // секунд до исчезновения
}

// WorldView - статическая карта и точки интереса
type WorldView struct {
	Width    int        `json:"w"`
	Height   int        `json:"h"`
	TileSize int        `json:"tileSize"`
	Tiles    [][]string `json:"tiles"` // [y][x] имя типа клетки
	Farm     RectView   `json:"farm"`
	Shop     TileRef    `json:"shop"`
	Bin      TileRef    `json:"bin"`
	Bed      TileRef    `json:"bed"`
	Spawn    TileRef    `json:"spawn"`
	Schedule []Waypoint `json:"schedule"`
}

type RectView struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

type TileRef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Waypoint struct {
	Minute int    `json:"minute"`
	Clock  string `json:"clock"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии. Заполняется сервером по соединению, клиент может не слать.
	Token string `json:"token,omitempty"`

	// Action название действия: INIT, MOVE, USE_TOOL, INTERACT, SLEEP, SAVE, LOAD, SELECT_TOOL, TALK.
	Action string `json:"action" validate:"required"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// MovePayload - удерживаемые оси движения. Нулевой вектор означает "стоять".
type MovePayload struct {
	Dx int `json:"dx" validate:"min=-1,max=1"`
	Dy int `json:"dy" validate:"min=-1,max=1"`
}

// SelectToolPayload - выбор слота инструмента
type SelectToolPayload struct {
	Slot int `json:"slot" validate:"min=1,max=5"`
}
