package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/database/mongoclient"
	"github.com/unicmarket/goapi/base/database/redisclient"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/base/metrics"
	bValidator "github.com/unicmarket/goapi/base/validator"
	"github.com/unicmarket/goapi/domain"
	registryDomain "github.com/unicmarket/goapi/domain/registry"
	mmiddleware "github.com/unicmarket/goapi/middleware"
	"github.com/unicmarket/goapi/service/query"
	"github.com/unicmarket/goapi/service/redis"
	registry_service "github.com/unicmarket/goapi/service/registry"
	"github.com/unicmarket/goapi/service/treasury"
	auth_delivery "github.com/unicmarket/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/unicmarket/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/unicmarket/goapi/stores/auth/usecase"
	deposit_repository "github.com/unicmarket/goapi/stores/deposit/repository"
	deposit_usecase "github.com/unicmarket/goapi/stores/deposit/usecase"
	hc_delivery "github.com/unicmarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/unicmarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/unicmarket/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/unicmarket/goapi/stores/listing/delivery/http"
	listing_repository "github.com/unicmarket/goapi/stores/listing/repository"
	listing_usecase "github.com/unicmarket/goapi/stores/listing/usecase"
	settlement_usecase "github.com/unicmarket/goapi/stores/settlement/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())

	v := validator.New()
	v.RegisterValidation("account", func(fl validator.FieldLevel) bool {
		return bValidator.IsValidAccount(fl.Field().String())
	})
	e.Validator = bValidator.NewCustomValidator(v)

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	httpTimeout := viper.GetDuration("http.timeout")

	// endpoints of the registries this market serves
	registries := viper.Sub("registries")
	endpoints := make(map[domain.RegistryId]string)
	for k := range registries.AllSettings() {
		id := registries.GetString(fmt.Sprintf("%s.accountId", k))
		endpoint := registries.GetString(fmt.Sprintf("%s.endpoint", k))
		endpoints[domain.RegistryId(id)] = endpoint
	}
	registryClient := registry_service.NewClient(&registryDomain.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("registries_apikey"),
		Endpoints:  endpoints,
	})

	funds := treasury.NewTransferer(&treasury.TransfererCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("treasury.apikey"),
		Endpoint:   viper.GetString("treasury.endpoint"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.NewListing(q)
	depositRepo := deposit_repository.NewDeposit(q)

	hc := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	deposit := deposit_usecase.New(depositRepo, funds)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Listing:           listingRepo,
		Deposit:           depositRepo,
		Funds:             funds,
		StoragePerListing: domain.Amount(viper.GetString("market.storagePerListing")),
		EnrollmentFee:     domain.Amount(viper.GetString("market.enrollmentFee")),
	})
	settlement := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		Listing:      listingRepo,
		Registry:     registryClient,
		Funds:        funds,
		MaxLenPayout: uint32(viper.GetUint("market.maxLenPayout")),
	})

	auth_middleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listing, settlement, deposit, auth_middleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
