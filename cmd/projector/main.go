package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gallerie/market-indexer/internal/adapter"
	"github.com/gallerie/market-indexer/internal/config"
	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/logger"
	"github.com/gallerie/market-indexer/internal/projector"
	ethprovider "github.com/gallerie/market-indexer/internal/providers/ethereum"
	"github.com/gallerie/market-indexer/internal/providers/jetstream"
	"github.com/gallerie/market-indexer/internal/store"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to the directory holding .env files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadProjectorConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "projector"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting projector")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	err = store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime)
	if err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the Ethereum RPC used for contract view reads
	dialCtx, dialCancel := context.WithTimeout(ctx, ethprovider.DialTimeout)
	ethClient, err := adapter.NewEthClientDialer().Dial(dialCtx, cfg.Ethereum.RPCURL)
	dialCancel()
	if err != nil {
		logger.Fatal("Failed to connect to Ethereum RPC", zap.Error(err))
	}
	reader := ethprovider.NewContractReader(ethClient)
	defer reader.Close()
	logger.Info("Connected to Ethereum RPC")

	// Subscribe to the decoded event stream
	subscriber, err := jetstream.NewSubscriber(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.Fatal("Failed to create subscriber", zap.Error(err))
	}
	defer subscriber.Close()
	logger.Info("Subscribed to event stream",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName))

	eventProjector := projector.New(dataStore, reader, common.HexToAddress(cfg.Ethereum.MarketAddress))

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for subscriber errors
	errCh := make(chan error, 1)

	go func() {
		err := subscriber.SubscribeEvents(ctx, func(event *domain.Event) error {
			return eventProjector.Process(ctx, event)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "subscriber"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Projector stopped")
}
