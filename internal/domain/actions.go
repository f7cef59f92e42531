package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove     // установить удерживаемые оси движения
	ActionUseTool  // применить выбранный инструмент
	ActionInteract // контекстное действие (разговор -> магазин -> ящик -> сон)
	ActionSleep
	ActionSave
	ActionLoad
	ActionSelectTool // слот 1-5
	ActionTalk
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":        ActionInit,
	"MOVE":        ActionMove,
	"USE_TOOL":    ActionUseTool,
	"INTERACT":    ActionInteract,
	"SLEEP":       ActionSleep,
	"SAVE":        ActionSave,
	"LOAD":        ActionLoad,
	"SELECT_TOOL": ActionSelectTool,
	"TALK":        ActionTalk,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:       "INIT",
	ActionMove:       "MOVE",
	ActionUseTool:    "USE_TOOL",
	ActionInteract:   "INTERACT",
	ActionSleep:      "SLEEP",
	ActionSave:       "SAVE",
	ActionLoad:       "LOAD",
	ActionSelectTool: "SELECT_TOOL",
	ActionTalk:       "TALK",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
