package main

import (
	"context"
	"fmt"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/encyclopedia/app/api/docs"
	"github.com/ribgsilva/encyclopedia/app/api/handlers"
	"github.com/ribgsilva/encyclopedia/app/api/handlers/v1/wiki"
	"github.com/ribgsilva/encyclopedia/app/api/web"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	pentry "github.com/ribgsilva/encyclopedia/persistence/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/bucket"
	"github.com/ribgsilva/encyclopedia/platform/database"
	"github.com/ribgsilva/encyclopedia/platform/env"
	"github.com/ribgsilva/encyclopedia/platform/logger"
	"github.com/ribgsilva/encyclopedia/platform/web/templates"
	"github.com/ribgsilva/encyclopedia/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	_ "gocloud.dev/pubsub/awssnssqs"
	_ "gocloud.dev/pubsub/mempubsub"
)

// @title Encyclopedia API
// @version 1.0
// @description Wiki of markdown entries, read and searched as json.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Encyclopedia-API")
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
	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	sys.Configs.Http.SSL = env.BoolDefault(log, "HTTP_SSL", "f")
	sys.Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	sys.Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	sys.Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	sys.Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	sys.Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	sys.Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+sys.Configs.Http.Port)
	sys.Configs.Store.Driver = env.OrDefault(log, "STORE_DRIVER", "blob")
	sys.Configs.Store.URL = env.OrDefault(log, "STORE_URL", "")
	sys.Configs.Store.Dir = env.OrDefault(log, "STORE_DIR", "entries")
	sys.Configs.Store.OperationTimeout = env.DurationDefault(log, "STORE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/encyclopedia")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.Enabled = env.BoolDefault(log, "CACHE_ENABLED", "f")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	sys.Configs.Templates.Dir = env.OrDefault(log, "TEMPLATES_DIR", "")
	sys.Configs.Messaging.TopicURL = env.OrDefault(log, "MESSAGING_TOPIC_URL", "")
	sys.Configs.Messaging.PublishTimeout = env.DurationDefault(log, "MESSAGING_PUBLISH_TIMEOUT", "5s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "encyclopedia-api")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

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
			_ = db.Close()
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

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	if sys.Configs.Cache.Enabled {
		var rdb *redis.Client
		if err := func() error {
			rdb = redis.NewClient(&redis.Options{
				Addr:     sys.Configs.Cache.ConnectionURL,
				Username: sys.Configs.Cache.User,
				Password: sys.Configs.Cache.Pass,
			})
			rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
			defer rdsCancel()
			if err := rdb.Ping(rdsCtx).Err(); err != nil {
				return fmt.Errorf("could not connect to redis: %w", err)
			}
			return nil
		}(); err != nil {
			return err
		}
		defer func() {
			_ = rdb.Close()
		}()

		sys.R.Cache = rdb
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
			if err := topic.Shutdown(stdCtx); err != nil {
				log.Errorf("could not stop topic gracefully: %s", err)
			}
		}()
		sys.R.Topic = topic
	}

	// templates
	renderer, err := web.Renderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	tmplCtx, tmplCancel := context.WithCancel(context.Background())
	defer tmplCancel()
	if dir := sys.Configs.Templates.Dir; dir != "" {
		if err := renderer.Load(os.DirFS(dir)); err != nil {
			return fmt.Errorf("templates: %w", err)
		}
		go func(r *templates.Renderer) {
			if err := r.Watch(tmplCtx, log, dir); err != nil {
				log.Errorw("templates", "ERROR", err)
			}
		}(renderer)
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
	// Router configuration

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if sys.Configs.Http.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), secure.New(secureConfig), nrgin.Middleware(nrApp))
	router.HTMLRender = renderer

	handlers.MapDefaults(router)
	handlers.MapApi(router, store)
	handlers.MapWiki(router, wiki.Wiki{Entries: store, Rand: entry.DefaultRand()})

	docs.SwaggerInfo.Host = sys.Configs.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", sys.Configs.Swagger.Protocol, sys.Configs.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler:      router,
		ReadTimeout:  sys.Configs.Http.ReadTimeout,
		WriteTimeout: sys.Configs.Http.WriteTimeout,
		IdleTimeout:  sys.Configs.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "started http server", "addr", svr.Addr, "store", sys.Configs.Store.Driver)
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
