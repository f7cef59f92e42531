package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/infrastructure/storage"
	"cloverfield-server/internal/savegame"
	"cloverfield-server/internal/systems"
	"cloverfield-server/pkg/farmworld"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	var err error
	switch os.Args[1] {
	case "format":
		err = formatTimestamp(os.Args[2])
	case "clock":
		err = formatClock(os.Args[2])
	case "replay":
		err = dumpReplay(os.Args[2])
	case "save":
		err = dumpSave(os.Args[2])
	default:
		printHelp()
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// formatTimestamp - Unix секунды (как в заголовке записи) в RFC3339
func formatTimestamp(arg string) error {
	ts, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}
	fmt.Println(time.Unix(ts, 0).Format(time.RFC3339))
	return nil
}

// formatClock - минуты от полуночи в "6:00 AM"
func formatClock(arg string) error {
	minutes, err := strconv.Atoi(arg)
	if err != nil || minutes < 0 || minutes >= domain.MinutesPerDay {
		return fmt.Errorf("minutes must be in [0, %d)", domain.MinutesPerDay)
	}
	fmt.Println(systems.FormatClock(minutes))
	return nil
}

func dumpReplay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	session, err := storage.ReadReplay(f)
	if err != nil {
		return err
	}

	fmt.Printf("seed:     %d\n", session.Seed)
	fmt.Printf("recorded: %s\n", time.Unix(session.Timestamp, 0).Format(time.RFC3339))
	fmt.Printf("tick:     %d ms\n", session.TickMillis)
	fmt.Printf("ticks:    %d\n", session.TotalTicks)
	fmt.Printf("actions:  %d\n", len(session.Actions))
	for _, a := range session.Actions {
		fmt.Printf("  %6d %-11s %s\n", a.Tick, a.Action, string(a.Payload))
	}
	return nil
}

func dumpSave(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	_, meta := farmworld.Generate()
	state, ok := savegame.Decode(raw, meta)
	if !ok {
		return fmt.Errorf("%s is not a save document", path)
	}

	fmt.Printf("day %d, %s, %s\n", state.Clock.Day, systems.FormatClock(state.Clock.TotalMinutes), state.Weather)
	fmt.Printf("money %dg, stamina %d, seeds %d, parsnip %d\n",
		state.Player.Money, state.Player.Stamina, state.Player.Inventory.Seeds, state.Player.Inventory.Crops)
	fmt.Printf("%s friendship %d\n", state.NPC.Name, state.NPC.Friendship)
	for _, pos := range state.Plots.Keys() {
		p := state.Plots[pos]
		fmt.Printf("  %s tilled=%t watered=%t crop=%q stage=%d\n", savegame.PlotKey(pos), p.Tilled, p.Watered, p.Crop, p.Stage())
	}
	return nil
}

func printHelp() {
	fmt.Println(`cfutil - утилиты для файлов Cloverfield
Commands:
  format <timestamp>     - Unix время в читаемый формат
  clock <minutes>        - минуты от полуночи в "6:00 AM"
  replay <file.cfrp>     - заголовок и команды записи сессии
  save <file.json>       - сводка по файлу сохранения`)
}
