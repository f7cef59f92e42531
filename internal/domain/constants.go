package domain

// Размеры мира
const (
	WorldWidth  = 64
	WorldHeight = 40
	TileSize    = 32 // единиц мира на клетку
)

// Время суток (в минутах от полуночи)
const (
	MinutesPerDay    = 24 * 60
	DayStartMinute   = 6 * 60  // новый день всегда начинается в 6:00
	SleepAfterMinute = 18 * 60 // спать можно с 18:00
	MinutesPerSecond = 8       // игровых минут за секунду реального времени
)

// Игрок
const (
	StaminaMax     = 100
	StartingMoney  = 120
	StartingSeeds  = 8
	PlayerSpeed    = 120.0 // единиц мира в секунду
	CollisionHalfW = 8.0   // половина ширины хитбокса
)

// Стоимость действий в стамине
const (
	CostHoe     = 2
	CostWater   = 2
	CostSeed    = 1
	CostHarvest = 1
)

// Рост культур
const (
	MaturityStage = 2 // growth >= 2 означает "готово" (3-я стадия из 3)
)

// Экономика
const (
	SeedPrice = 20
	CropValue = 35
)

// NPC и взаимодействия
const (
	NPCName          = "Mira"
	NPCSpeed         = 55.0
	NPCArriveRadius  = 1.0
	TalkRadius       = 44.0 // в единицах мира
	InteractTileDist = 1    // в клетках (Чебышёв)
)
