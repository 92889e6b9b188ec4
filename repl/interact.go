package repl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/folio-lang/folio/ops"
	"github.com/folio-lang/folio/storage/bolt"
)

const (
	folioHistory = ".folio_history"
)

// Interact runs the command loop on the console until end of input or an
// exit command.
func Interact(ctx context.Context, ses *ops.Session, store *bolt.Store) {
	line := liner.NewLiner()
	defer line.Close()

	if f, err := os.Open(folioHistory); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	r := NewRepl(ses, store, os.Stdout)
	for {
		s, err := line.Prompt("folio: ")
		if err != nil {
			break
		}
		line.AppendHistory(s)

		cmd := strings.TrimSpace(s)
		if cmd == "exit" || cmd == "quit" {
			break
		}
		r.Run(ctx, cmd)
	}

	if f, err := os.Create(folioHistory); err != nil {
		fmt.Fprintf(os.Stderr, "folio: error writing history file, %s: %s", folioHistory, err)
	} else {
		line.WriteHistory(f)
		f.Close()
	}
}
