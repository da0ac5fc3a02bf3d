// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"urhymes/cnf"
	"urhymes/dict"
	"urhymes/docs"
	"urhymes/general"
	"urhymes/monitoring"
	"urhymes/patterns"
	"urhymes/rarity"
	"urhymes/rdb"
	"urhymes/rhymes"
	rhymeActions "urhymes/rhymes/handlers"
)

type apiServer struct {
	server      *http.Server
	conf        *cnf.Conf
	version     general.VersionInfo
	radapter    *rdb.Adapter
	engine      *rhymes.Engine
	store       *dict.Store
	rarityTable *rarity.Table
	patterns    *patterns.Store
	statsLogger *monitoring.QueryStatsLogger
}

//go:embed docs/swagger.json
var swaggerJSON embed.FS

func mkServerInfo(conf *cnf.Conf, version general.VersionInfo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
			"name":      "URHYMES - a specialized rhyme querying server",
			"version":   version,
			"publicUrl": conf.PublicURL,
		})
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	protected := engine.Group("/monitoring").Use(AuthRequired(api.conf))

	rActions := rhymeActions.NewActions(
		api.engine, api.store, api.rarityTable, api.patterns,
		api.radapter, api.statsLogger)
	mActions := monitoring.NewActions(api.statsLogger, api.conf.TimezoneLocation())

	engine.GET("/", mkServerInfo(api.conf, api.version))

	if api.conf.APIDocsURLPath != "" {
		docs.SwaggerInfo.BasePath = api.conf.APIDocsURLPath
	}

	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// also serve the JSON variant of the docs on a stable URL:
	engine.GET(
		"/openapi",
		func(ctx *gin.Context) {
			jsonFile, err := swaggerJSON.ReadFile("docs/swagger.json")
			if err != nil {
				err = fmt.Errorf("Failed to read Swagger file: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			uniresp.WriteRawJSONResponse(ctx.Writer, jsonFile)
		},
	)

	engine.GET(
		"/rhymes", rActions.Search)

	engine.GET(
		"/word-info", rActions.WordInfo)

	engine.GET(
		"/patterns", rActions.PatternLine)

	protected.GET(
		"/queries-load", mActions.QueriesLoad)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down URHYMES HTTP API server")
	return s.server.Shutdown(ctx)
}

// loadSharedData builds all the immutable structures the engine
// needs. The three sources are independent files so they load
// concurrently; the rhyme key index is derived afterwards as it
// needs the complete store.
func loadSharedData(conf *cnf.Conf) (*dict.Store, *rarity.Table, *patterns.Store, error) {
	var store *dict.Store
	var rarityTable *rarity.Table
	var patternsStore *patterns.Store
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		store, err = dict.LoadCMUFile(conf.DictFilePath)
		return err
	})
	eg.Go(func() error {
		var err error
		rarityTable, err = rarity.LoadFile(conf.Rarity)
		return err
	})
	eg.Go(func() error {
		var err error
		patternsStore, err = patterns.Open(conf.Patterns)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return store, rarityTable, patternsStore, nil
}

func runApiServer(conf *cnf.Conf, version general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(ctx, conf.Redis)
	if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}

	store, rarityTable, patternsStore, err := loadSharedData(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load shared data")
		return
	}
	index := rhymes.BuildIndex(store)
	engine := rhymes.NewEngine(store, index, rarityTable, conf.Rhymes)

	var statusWriter monitoring.StatusWriter
	services := make([]service, 0, 3)
	if conf.Monitoring != nil {
		tsWriter, err := monitoring.NewTimescaleDBWriter(
			ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to TimescaleDB")
			return
		}
		statusWriter = tsWriter
		services = append(services, tsWriter)

	} else {
		log.Info().Msg("monitoring database not configured - query stats will be kept in memory only")
		statusWriter = &monitoring.NullWriter{}
	}
	statsLogger := monitoring.NewQueryStatsLogger(statusWriter, conf.TimezoneLocation())
	services = append(services, statsLogger)

	server := &apiServer{
		conf:        conf,
		version:     version,
		radapter:    radapter,
		engine:      engine,
		store:       store,
		rarityTable: rarityTable,
		patterns:    patternsStore,
		statsLogger: statsLogger,
	}
	services = append(services, server)

	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}
	if err := patternsStore.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing patterns store")
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
