package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/skycastapp/locsync/internal/config"
	"github.com/skycastapp/locsync/internal/crypto"
	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/internal/service"
	"github.com/skycastapp/locsync/internal/store"
	"github.com/skycastapp/locsync/internal/transport"
	"github.com/skycastapp/locsync/internal/workers"
	"github.com/skycastapp/locsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("locsync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sealer, err := crypto.NewSealer(crypto.DeriveKey(cfg.Sync.SealKey))
	if err != nil {
		log.Fatal().Err(err).Msg("create field sealer")
	}

	zone := models.ZoneID(cfg.Sync.ZoneName)
	queue := service.NewPendingChangeQueue()

	// the engine and the operations facade share one mutex so user calls and
	// transport event handlers never interleave their store access
	var gate sync.Mutex

	engine := service.NewReconciliationEngine(
		&gate,
		storages.Locations,
		storages.Records,
		storages.Checkpoints,
		queue,
		service.NewReconciler(store.NewFieldCodec(sealer)),
		service.NewLogNotifier(log),
		zone,
		log,
	)

	remote := transport.NewMemoryTransport(cfg.Sync.EventBuffer, log)
	remote.SeedZone(zone)

	ops := service.NewOperations(&gate, storages.Locations, storages.Records, queue, remote, zone, log)

	checkpoint, err := storages.Checkpoints.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load sync checkpoint, starting with a full fetch")
		checkpoint = nil
	}

	if err := remote.Start(ctx, checkpoint, engine); err != nil {
		log.Fatal().Err(err).Msg("start transport")
	}
	defer remote.Stop()

	dispatcher := workers.NewEventDispatcher(engine, remote.Events(), log)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	runPrompt(ctx, ops, storages.Locations, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
