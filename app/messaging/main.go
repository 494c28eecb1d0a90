package main

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/encyclopedia/app/api/handlers"
	"github.com/ribgsilva/encyclopedia/app/messaging/consumers/v1/entries"
	pentry "github.com/ribgsilva/encyclopedia/persistence/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/bucket"
	"github.com/ribgsilva/encyclopedia/platform/database"
	"github.com/ribgsilva/encyclopedia/platform/env"
	"github.com/ribgsilva/encyclopedia/platform/logger"
	"github.com/ribgsilva/encyclopedia/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/awssnssqs"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	_ "gocloud.dev/pubsub/mempubsub"
)

func main() {

	log, err := logger.New("Encyclopedia-Messaging")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8081")
	sys.Configs.Store.Driver = env.OrDefault(log, "STORE_DRIVER", "blob")
	sys.Configs.Store.URL = env.OrDefault(log, "STORE_URL", "")
	sys.Configs.Store.Dir = env.OrDefault(log, "STORE_DIR", "entries")
	sys.Configs.Store.OperationTimeout = env.DurationDefault(log, "STORE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/encyclopedia")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "encyclopedia-messaging")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.Messaging.SubscriptionURL = env.Must(log, "MESSAGING_SUBSCRIPTION_URL")
	sys.Configs.Messaging.TopicURL = env.OrDefault(log, "MESSAGING_TOPIC_URL", "")
	sys.Configs.Messaging.PublishTimeout = env.DurationDefault(log, "MESSAGING_PUBLISH_TIMEOUT", "5s")
	sys.Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	sys.Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// entry store
	switch sys.Configs.Store.Driver {
	case "mysql", "sqlite":
		db, err := database.Open(sys.Configs.Store.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Errorf("could not close db conn gracefully: %s", err)
			}
		}()
		sys.R.Database = db
	default:
		b, err := bucket.Open(context.Background(), sys.Configs.Store.URL, sys.Configs.Store.Dir)
		if err != nil {
			return err
		}
		defer func() {
			_ = b.Close()
		}()
		sys.R.Bucket = b
	}
	store, err := pentry.Default()
	if err != nil {
		return err
	}

	// entry events
	if sys.Configs.Messaging.TopicURL != "" {
		topic, err := pubsub.OpenTopic(context.Background(), sys.Configs.Messaging.TopicURL)
		if err != nil {
			return fmt.Errorf("could not open topic: %w", err)
		}
		defer func() {
			stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
			defer stdCancel()
			_ = topic.Shutdown(stdCtx)
		}()
		sys.R.Topic = topic
	}

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(sys.Configs.NewRelic.AppName),
		newrelic.ConfigLicense(sys.Configs.NewRelic.Licence),
		newrelic.ConfigEnabled(sys.Configs.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if sys.Configs.NewRelic.Enabled {
		if err := nrApp.WaitForConnection(sys.Configs.NewRelic.ConnectionTimeout); err != nil {
			return err
		}
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Messaging configuration

	subscription, err := openSubscription(context.Background(), sys.Configs.Messaging.SubscriptionURL)
	if err != nil {
		return err
	}

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		if err := subscription.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop subscription gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler: router,
	}

	go func() {
		log.Info("started healthcheck http server")
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("error in server http server: %s", err)
		}
	}()
	defer func() {
		_ = svr.Close()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		sig := <-shutdown
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)
		cancelFunc()
	}()

	if err := entries.Consume(withCancel, subscription, sys.Configs.Messaging.MaxWorkers, store); err != nil {
		return fmt.Errorf("listener error: %w", err)
	}

	return nil
}

// openSubscription reads a raw SQS queue when url is a queue url, anything else goes through
// the gocloud url openers ("awssqs://...", "mem://...")
func openSubscription(ctx context.Context, url string) (*pubsub.Subscription, error) {
	if !strings.HasPrefix(url, "https://sqs.") {
		sub, err := pubsub.OpenSubscription(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("could not open subscription: %w", err)
		}
		return sub, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	sqsCli := sqs.NewFromConfig(cfg)

	return awssnssqs.OpenSubscriptionV2(
		ctx,
		sqsCli,
		url,
		&awssnssqs.SubscriptionOptions{
			Raw:      true,
			WaitTime: sys.Configs.Messaging.WaitTime,
		}), nil
}
