package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	esv7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	rv8 "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"

	"github.com/avelinos/tasktrack-api/cmd/internal"
	internaldomain "github.com/avelinos/tasktrack-api/internal"
	"github.com/avelinos/tasktrack-api/internal/elasticsearch"
	"github.com/avelinos/tasktrack-api/internal/envvar"
	"github.com/avelinos/tasktrack-api/internal/kafka"
	"github.com/avelinos/tasktrack-api/internal/memcached"
	"github.com/avelinos/tasktrack-api/internal/postgresql"
	"github.com/avelinos/tasktrack-api/internal/redis"
	"github.com/avelinos/tasktrack-api/internal/rest"
	"github.com/avelinos/tasktrack-api/internal/service"
)

func main() {
	var env, address string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&address, "address", ":9234", "HTTP Server Address")
	flag.Parse()

	errC, err := run(env, address)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env, address string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "zap.NewProduction")
	}

	if err := envvar.Load(env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	pool, err := internal.NewPostgreSQL(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewPostgreSQL")
	}

	es, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewElasticSearch")
	}

	producer, err := internal.NewKafkaProducer(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewKafkaProducer")
	}

	metrics, err := internal.NewOTExporter(conf, "tasktrack-rest-server")
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewOTExporter")
	}

	logging := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info(r.Method,
				zap.Time("time", time.Now()),
				zap.String("url", r.URL.String()),
			)

			h.ServeHTTP(w, r)
		})
	}

	conf1 := serverConfig{
		Address:       address,
		DB:            pool,
		ElasticSearch: es,
		Kafka:         producer,
		Metrics:       metrics,
		Middlewares:   []func(next http.Handler) http.Handler{otelchi.Middleware("tasktrack-rest-server"), logging},
		Logger:        logger,
	}

	// The cache decorators are interchangeable, pick one per deployment.
	switch conf.GetOrDefault("CACHE_BACKEND", "memcached") {
	case "memcached":
		memcached, err := internal.NewMemcached(conf)
		if err != nil {
			return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewMemcached")
		}

		conf1.Memcached = memcached
	case "redis":
		rdb, err := internal.NewRedis(conf)
		if err != nil {
			return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewRedis")
		}

		conf1.Redis = rdb
	}

	srv, err := newServer(conf1)
	if err != nil {
		return nil, fmt.Errorf("newServer %w", err)
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		defer func() {
			_ = logger.Sync()
			producer.Close()
			pool.Close()
			stop()
			cancel()
			close(errC)
		}()

		srv.SetKeepAlivesEnabled(false)

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving", zap.String("address", address))

		// "ListenAndServe always returns a non-nil error. After Shutdown or
		// Close, the returned error is ErrServerClosed."
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	return errC, nil
}

type serverConfig struct {
	Address       string
	DB            *pgxpool.Pool
	ElasticSearch *esv7.Client
	Kafka         *internal.KafkaProducer
	Memcached     *memcache.Client
	Redis         *rv8.Client
	Metrics       http.Handler
	Middlewares   []func(next http.Handler) http.Handler
	Logger        *zap.Logger
}

func newServer(conf serverConfig) (*http.Server, error) {
	router := chi.NewRouter()
	router.Use(render.SetContentType(render.ContentTypeJSON))

	for _, mw := range conf.Middlewares {
		router.Use(mw)
	}

	categories := postgresql.NewCategory(conf.DB)

	var repo service.TaskRepository = postgresql.NewTask(conf.DB)

	switch {
	case conf.Memcached != nil:
		repo = memcached.NewTask(conf.Memcached, repo, categories, conf.Logger)
	case conf.Redis != nil:
		repo = redis.NewTask(conf.Redis, repo, categories, conf.Logger)
	}

	search := elasticsearch.NewTask(conf.ElasticSearch)
	msgBroker := kafka.NewTask(conf.Kafka.Producer, conf.Kafka.Topic)

	svc := service.NewTask(conf.Logger, repo, search, msgBroker, categories)
	categorySvc := service.NewCategory(categories)

	rest.RegisterOpenAPI(router)
	rest.NewTaskHandler(svc).Register(router)
	rest.NewCategoryHandler(categorySvc).Register(router)

	router.Handle("/metrics", conf.Metrics)

	lmt := tollbooth.NewLimiter(3, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Second})
	lmtmw := tollbooth.LimitHandler(lmt, router)

	return &http.Server{
		Handler:           lmtmw,
		Addr:              conf.Address,
		ReadTimeout:       1 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		WriteTimeout:      1 * time.Second,
		IdleTimeout:       1 * time.Second,
	}, nil
}
