package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/folio-lang/folio/ops"
	"github.com/folio-lang/folio/repl"
	"github.com/folio-lang/folio/storage/bolt"
)

var (
	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Run with an interactive console session",
		RunE:  replRun,
	}

	storeFile = "folio.db"
	workers   = 0

	cmdArgs = []string{}
)

func initSessionFlags(fs *pflag.FlagSet) {
	fs.StringVar(&storeFile, "store", storeFile, "`file` to use for the bolt store")
	cfgVars["store"] = fs.Lookup("store")

	fs.IntVar(&workers, "workers", workers,
		"maximum concurrent row evaluations; 0 for the default")
	cfgVars["workers"] = fs.Lookup("workers")

	fs.StringSliceVar(&cmdArgs, "cmd", cmdArgs, "`command` to execute; multiple allowed")
}

func init() {
	initSessionFlags(replCmd.Flags())

	folioCmd.AddCommand(replCmd)
}

func newSession() *ops.Session {
	ses := ops.NewSession()
	ses.Flags = flgs
	ses.Logger = log.StandardLogger()
	ses.MaxWorkers = workers
	return ses
}

func replRun(cmd *cobra.Command, args []string) error {
	ses := newSession()

	var store *bolt.Store
	if storeFile != "" {
		var err error
		store, err = bolt.Open(storeFile)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx := context.Background()
	if len(cmdArgs) > 0 {
		r := repl.NewRepl(ses, store, os.Stdout)
		for _, arg := range cmdArgs {
			r.Run(ctx, arg)
		}
		return nil
	}

	repl.Interact(ctx, ses, store)
	return nil
}
