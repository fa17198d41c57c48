// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 760
	MapOffsetY   = 80 // полоса HUD сверху

	MapCols  = 30
	MapRows  = 17
	TileSize = 40.0

	TickRate     = 60.0 // кадров симуляции в секунду, базовая единица кулдаунов
	MaxDeltaTime = 0.06

	StartingGold  = 300
	StartingLives = 20

	WaveDuration = 30.0 // секунд на волну
	SpawnChance  = 0.02 // вероятность спавна за тик
	WaveEnemyCap = 5    // мягкий предел: wave * WaveEnemyCap живых врагов

	ArrivalThreshold = 5.0 // пикселей до центра крепости

	ProjectileSpeed  = 420.0
	ProjectileRadius = 4.0

	SlotUnlockCost      = 20
	UpgradeCostFactor   = 0.5
	UpgradeDamageFactor = 1.5

	ClickCooldown = 300 // миллисекунд между кликами по UI

	DebugAddr = "localhost:6060"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GrassColor      = color.RGBA{46, 70, 46, 255}
	PathColor       = color.RGBA{120, 104, 72, 255}
	KeepColor       = color.RGBA{50, 205, 50, 255}
	WallColor       = color.RGBA{60, 60, 72, 255}

	SlotLockedColor   = color.RGBA{90, 90, 100, 160}
	SlotEmptyColor    = color.RGBA{220, 220, 230, 160}
	SlotOccupiedColor = color.RGBA{240, 200, 80, 200}

	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	ProjectileColor  = color.RGBA{255, 240, 160, 255}
	KeepRingColor    = color.RGBA{50, 205, 50, 90}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	TextDimColor   = color.RGBA{160, 160, 170, 255}
	HudPanelColor  = color.RGBA{30, 30, 42, 255}
	OverlayColor   = color.RGBA{0, 0, 0, 140}

	MenuButtonColor      = color.RGBA{70, 130, 180, 220}
	MenuButtonHoverColor = color.RGBA{100, 160, 210, 220}
	MenuDisabledColor    = color.RGBA{80, 80, 90, 220}

	// Множители скорости симуляции, переключаются по кругу.
	SpeedLevels = []float64{1, 2, 4}
)
