package entries

import (
	"context"
	"fmt"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	pentry "github.com/ribgsilva/encyclopedia/persistence/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/bucket"
	"github.com/ribgsilva/encyclopedia/platform/database"
	"github.com/ribgsilva/encyclopedia/platform/env"
	"github.com/ribgsilva/encyclopedia/sys"
	"go.uber.org/zap"
	"io"
	"os"
)

func ListCommands() {
	println("Entries Commands (STORE_DRIVER blob, mysql or sqlite)")
	println("\tlist\t\t\t- Lists every entry title")
	println("\timport <file.yaml>\t- Saves every entry of the bundle, overwriting")
	println("\texport <file.yaml>\t- Writes every entry to the bundle")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	if options[0] == "help" {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	store, closeFn, err := initVars(log)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer closeFn()

	Exec(context.Background(), store, options, os.Stdout)
}

// Exec runs one entries command over store, reporting to out
func Exec(ctx context.Context, store entry.Store, options []string, out io.Writer) {
	switch options[0] {
	case "list":
		if err := List(ctx, store, out); err != nil {
			fmt.Fprintln(out, "failed to list entries:", err)
		}
	case "import":
		if len(options) < 2 {
			fmt.Fprintln(out, "import: missing bundle file")
			return
		}
		f, err := os.Open(options[1])
		if err != nil {
			fmt.Fprintln(out, "import:", err)
			return
		}
		defer f.Close()
		n, err := Import(ctx, store, f)
		if err != nil {
			fmt.Fprintln(out, "failed to import entries:", err)
			return
		}
		fmt.Fprintf(out, "imported %d entries\n", n)
	case "export":
		if len(options) < 2 {
			fmt.Fprintln(out, "export: missing bundle file")
			return
		}
		n, err := Export(ctx, store, options[1])
		if err != nil {
			fmt.Fprintln(out, "failed to export entries:", err)
			return
		}
		fmt.Fprintf(out, "exported %d entries to %s\n", n, options[1])
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) (entry.Store, func(), error) {
	sys.Configs.Store.Driver = env.OrDefault(log, "STORE_DRIVER", "blob")
	sys.Configs.Store.URL = env.OrDefault(log, "STORE_URL", "")
	sys.Configs.Store.Dir = env.OrDefault(log, "STORE_DIR", "entries")
	sys.Configs.Store.OperationTimeout = env.DurationDefault(log, "STORE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/encyclopedia")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	closeFn := func() {}
	switch sys.Configs.Store.Driver {
	case "mysql", "sqlite":
		db, err := database.Open(sys.Configs.Store.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
		if err != nil {
			return nil, nil, err
		}
		sys.R.Database = db
		closeFn = func() { _ = db.Close() }
	default:
		b, err := bucket.Open(context.Background(), sys.Configs.Store.URL, sys.Configs.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		sys.R.Bucket = b
		closeFn = func() { _ = b.Close() }
	}

	store, err := pentry.Default()
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return store, closeFn, nil
}
