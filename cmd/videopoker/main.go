// Command videopoker is a terminal trainer: play any registered variant
// against the strategy advisor and track how often your holds match it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"videopoker/internal/app"
	"videopoker/internal/config"
	"videopoker/internal/domain"
	"videopoker/internal/games"
	"videopoker/internal/ports"
	"videopoker/internal/ports/memory"
	"videopoker/internal/ports/postgres"
)

const trainerUser = "local"

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := config.LoadCLIConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if !validGameID(cfg.GameID) {
		log.Fatalf("unknown game id %q, available: %s", cfg.GameID, strings.Join(games.IDs(), ", "))
	}

	ctx := context.Background()
	var store ports.AccuracyStore = memory.NewAccuracyStore()
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pool.Close()
		pg, err := postgres.NewAccuracyStore(ctx, pool, log)
		if err != nil {
			log.Fatalf("failed to init accuracy store: %v", err)
		}
		store = pg
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	spec := games.Lookup(cfg.GameID)
	table := app.NewTable(spec, rng)
	table.Insert(cfg.Credits)
	table.SetBet(cfg.Bet)
	if acc, err := store.Load(ctx, trainerUser, spec.ID); err != nil {
		log.Warnf("could not load accuracy: %v", err)
	} else {
		table.Acc = acc
	}

	pterm.DefaultHeader.WithFullWidth().Println(spec.Title)
	pterm.Info.Printfln("Credits: %d  Bet: %d", table.Credits, table.Bet)
	pterm.Println("Commands: deal | hold <slots> | draw | bet <1-5> | pay | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		pterm.Print(pterm.LightCyan("> "))
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "deal", "d":
			if _, ok := table.Deal(); !ok {
				pterm.Warning.Println("Cannot deal: finish the round or insert more credits.")
				continue
			}
			renderHand(table)
		case "hold", "h":
			holdSlots(table, fields[1:])
			renderHand(table)
		case "draw":
			events, ok := table.Draw()
			if !ok {
				pterm.Warning.Println("Nothing to draw: deal first.")
				continue
			}
			renderSettled(table, events)
			if err := store.Save(ctx, trainerUser, spec.ID, table.Acc); err != nil {
				log.Warnf("could not save accuracy: %v", err)
			}
		case "bet", "b":
			if len(fields) < 2 {
				pterm.Warning.Println("Usage: bet <1-5>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || !table.SetBet(n) {
				pterm.Warning.Println("Cannot change bet now.")
				continue
			}
			pterm.Info.Printfln("Bet set to %d.", table.Bet)
		case "pay", "p":
			renderPaytable(spec)
		case "quit", "q", "exit":
			renderFarewell(table)
			return
		default:
			pterm.Warning.Printfln("Unknown command %q.", fields[0])
		}
	}
	renderFarewell(table)
}

func validGameID(id string) bool {
	for _, known := range games.IDs() {
		if known == id {
			return true
		}
	}
	return false
}

// holdSlots toggles the 1-based slots given on the command line.
func holdSlots(table *app.Table, args []string) {
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > domain.HandSize {
			pterm.Warning.Printfln("Ignoring %q: slots are 1-%d.", arg, domain.HandSize)
			continue
		}
		if !table.ToggleHold(n - 1) {
			pterm.Warning.Println("No live hand to hold.")
			return
		}
	}
}

func renderHand(table *app.Table) {
	if len(table.Hand) == 0 {
		return
	}
	cells := make([]string, 0, domain.HandSize)
	marks := make([]string, 0, domain.HandSize)
	for i, c := range table.Hand {
		text := fmt.Sprintf(" %s ", c)
		if c.Suit == domain.Hearts || c.Suit == domain.Diamonds {
			cells = append(cells, pterm.LightRed(text))
		} else {
			cells = append(cells, pterm.LightWhite(text))
		}
		if table.Holds[i] {
			marks = append(marks, pterm.LightGreen("HELD"))
		} else {
			marks = append(marks, "    ")
		}
	}
	pterm.Println(strings.Join(cells, " "))
	pterm.Println(" " + strings.Join(marks, "  "))
	pterm.Printfln("Credits: %d  Bet: %d", table.Credits, table.Bet)
}

func renderSettled(table *app.Table, events []app.Event) {
	renderHand(table)
	last := table.Last
	if last == nil {
		return
	}
	if last.Payout > 0 {
		pterm.Success.Printfln("%s pays %d.", last.Outcome, last.Payout)
	} else {
		pterm.Println(pterm.Gray("No win."))
	}
	if last.PlayedBest {
		pterm.Success.Println("Your hold matched the advisor.")
	} else {
		pterm.Warning.Printfln("Advisor: %s (hold %s).", last.Advice.Rationale, maskString(last.Advice.Mask))
	}
	if table.Acc.Total > 0 {
		pterm.Printfln("Accuracy: %d/%d (%.1f%%)",
			table.Acc.Correct, table.Acc.Total,
			100*float64(table.Acc.Correct)/float64(table.Acc.Total))
	}
}

// maskString prints 1-based held slot numbers, "nothing" for an empty mask.
func maskString(mask domain.HoldMask) string {
	var slots []string
	for i, held := range mask {
		if held {
			slots = append(slots, strconv.Itoa(i+1))
		}
	}
	if len(slots) == 0 {
		return "nothing"
	}
	return strings.Join(slots, ",")
}

func renderPaytable(spec games.GameSpec) {
	rows := pterm.TableData{{"Hand", "1", "2", "3", "4", "5"}}
	for _, outcome := range spec.DisplayOrder {
		row := []string{string(outcome)}
		for bet := domain.MinBet; bet <= domain.MaxBet; bet++ {
			row = append(row, strconv.FormatInt(spec.Paytable.Payout(outcome, bet), 10))
		}
		rows = append(rows, row)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Printfln("Could not render paytable: %v", err)
	}
}

func renderFarewell(table *app.Table) {
	credits, _ := table.CashOut()
	pterm.Info.Printfln("Cashed out %d credits.", credits)
	if table.Acc.Total > 0 {
		pterm.Info.Printfln("Session accuracy: %d/%d.", table.Acc.Correct, table.Acc.Total)
	}
}
