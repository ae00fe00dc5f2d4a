// Package main provides the ccgsearch CLI: load a card table, run the
// parallel search for a fixed thinking budget, and print the move it
// recommends for the opening decision.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/signalnine/ccgsearch/cards"
	"github.com/signalnine/ccgsearch/engine"
	"github.com/signalnine/ccgsearch/mcts"
	"github.com/signalnine/ccgsearch/simulation"
)

var (
	tablePath string
	seed      int64
	workers   int
	think     time.Duration
)

func init() {
	flag.StringVar(&tablePath, "table", "", "card table YAML file (default: bundled starter set)")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = use current time)")
	flag.IntVar(&workers, "workers", 0, "worker goroutines (0 = auto-detect CPU count)")
	flag.DurationVar(&think, "think", 2*time.Second, "thinking budget before the runner stops")
}

func main() {
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	table, err := loadTable(tablePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccgsearch: %v\n", err)
		os.Exit(1)
	}

	if errs := (cards.Validator{}).Validate(table.Cards); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "ccgsearch: invalid card table: %s\n", e.Error())
		}
		os.Exit(1)
	}

	catalog, err := cards.Compile(table.Cards)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccgsearch: compiling card table: %v\n", err)
		os.Exit(1)
	}

	sim := engine.NewSim(catalog, deckFor(table), engine.CardID(table.HeroPower))

	first := mcts.NewObserver(engine.SideFirst, &mcts.Builder{Sim: sim, Arena: mcts.NewArena(), Exploration: mcts.DefaultExploration}, nil)
	second := mcts.NewObserver(engine.SideSecond, &mcts.Builder{Sim: sim, Arena: mcts.NewArena(), Exploration: mcts.DefaultExploration}, nil)
	multi := mcts.NewMulti(first, second)

	runner := simulation.NewRunner(sim, multi, workers)
	printBanner(table, uint64(seed), think, runner)

	runner.RunFor(uint64(seed), think)
	runner.WaitUntilStopped()

	printResult(sim, runner, uint64(seed))
}

// loadTable reads the requested card table, or the bundled starter set
// when path is empty (cards.BasicTable, cards/examples.go).
func loadTable(path string) (cards.Table, error) {
	if path == "" {
		return cards.BasicTable(), nil
	}
	return cards.LoadTableFile(path)
}

// deckFor builds a 30-card deck from every non-hero-power card in table,
// repeating as needed; the same shape as cards.BasicDeck, generalized to
// an arbitrary loaded table rather than the bundled starter set.
func deckFor(table cards.Table) []engine.CardID {
	var playable []engine.CardID
	for _, c := range table.Cards {
		if c.ID == table.HeroPower {
			continue
		}
		playable = append(playable, engine.CardID(c.ID))
	}
	if len(playable) == 0 {
		return nil
	}
	deck := make([]engine.CardID, 0, 30)
	for len(deck) < 30 {
		deck = append(deck, playable[len(deck)%len(playable)])
	}
	return deck
}

func printBanner(table cards.Table, seed uint64, think time.Duration, runner *simulation.Runner) {
	fmt.Println("ccgsearch")
	fmt.Printf("  table:   %s (%d cards)\n", table.Name, len(table.Cards))
	fmt.Printf("  seed:    %d\n", seed)
	fmt.Printf("  think:   %s\n", think)
	fmt.Printf("  run id:  %s\n", runner.RunID)
	fmt.Println()
}

// printResult rebuilds the searched opening position from the run's seed
// and reads the recommendation off the first player's root, which
// dispatches that position's main-action choices directly.
func printResult(sim *engine.Sim, runner *simulation.Runner, seed uint64) {
	stats := runner.Stats()
	fmt.Printf("iterations: %d succeeded, %d failed\n", stats.Succeeded(), stats.Failed())
	if err := stats.Errors(); err != nil {
		fmt.Printf("failures:\n%v\n", err)
	}

	state := sim.NewEpisode(seed)
	defer engine.PutState(state)

	root := runner.GetRootNode(engine.SideFirst)
	legal := sim.LegalMainActions(state)
	choice, ok := simulation.SelectMove(root, legal)
	if !ok {
		fmt.Println("search never visited any legal opening move")
		return
	}

	fmt.Printf("recommended opening move: %s (choice index %d)\n", engine.MainActionKind(choice), choice)
}
