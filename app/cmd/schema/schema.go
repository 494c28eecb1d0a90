package schema

import (
	"context"
	"github.com/ribgsilva/encyclopedia/persistence/v1/schema"
	"github.com/ribgsilva/encyclopedia/platform/database"
	"github.com/ribgsilva/encyclopedia/platform/env"
	"github.com/ribgsilva/encyclopedia/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Schema Commands (STORE_DRIVER mysql or sqlite)")
	println("\tcreate\t\t\t- Creates the entries table")
	println("\tdelete\t\t\t- Deletes the entries table")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	if err := initVars(log); err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := sys.R.Database.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	switch options[0] {
	case "create":
		println("creating schema")
		if err := schema.Create(context.Background()); err != nil {
			println("failed to create schema:", err.Error())
		} else {
			println("created schema")
		}
	case "delete":
		println("deleting schema")
		if err := schema.Drop(context.Background()); err != nil {
			println("failed to delete schema:", err.Error())
		} else {
			println("deleted schema")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) error {
	sys.Configs.Store.Driver = env.OrDefault(log, "STORE_DRIVER", "mysql")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/encyclopedia")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	db, err := database.Open(sys.Configs.Store.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
