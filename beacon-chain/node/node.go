// Package node is the main service which launches a beacon node and manages
// the lifecycle of all its associated services at runtime, such as p2p, sync and
// block import, gracefully closing them if the process ends.
package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain"
	"github.com/prysmaticlabs/blobnode/beacon-chain/db"
	"github.com/prysmaticlabs/blobnode/beacon-chain/db/kv"
	"github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice"
	doublylinkedtree "github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice/doubly-linked-tree"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	regularsync "github.com/prysmaticlabs/blobnode/beacon-chain/sync"
	"github.com/prysmaticlabs/blobnode/cmd"
	"github.com/prysmaticlabs/blobnode/cmd/beacon-chain/flags"
	"github.com/prysmaticlabs/blobnode/monitoring/prometheus"
	"github.com/prysmaticlabs/blobnode/runtime"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type serviceFlagOpts struct {
	blockchainFlagOpts []blockchain.Option
	syncFlagOpts       []regularsync.Option
}

// BeaconNode defines a struct that handles the services running the block and blob
// ingestion pipeline. It handles the lifecycle of the entire system and registers
// services to a service registry.
type BeaconNode struct {
	cliCtx          *cli.Context
	ctx             context.Context
	cancel          context.CancelFunc
	services        *runtime.ServiceRegistry
	lock            sync.RWMutex
	stop            chan struct{} // Channel to wait for termination notifications.
	db              db.Database
	forkChoicer     forkchoice.ForkChoicer
	p2pConfig       *p2p.Config
	serviceFlagOpts *serviceFlagOpts
}

// New creates a new node instance, sets up configuration options, and registers
// every required service to the node.
func New(cliCtx *cli.Context, opts ...Option) (*BeaconNode, error) {
	if err := configureTracing(cliCtx); err != nil {
		return nil, err
	}
	if err := configureChainConfig(cliCtx); err != nil {
		return nil, err
	}
	if err := configureTrustedSetup(cliCtx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	beacon := &BeaconNode{
		cliCtx:          cliCtx,
		ctx:             ctx,
		cancel:          cancel,
		services:        runtime.NewServiceRegistry(),
		stop:            make(chan struct{}),
		serviceFlagOpts: &serviceFlagOpts{},
	}
	for _, opt := range opts {
		if err := opt(beacon); err != nil {
			cancel()
			return nil, err
		}
	}

	if err := beacon.startDB(cliCtx); err != nil {
		cancel()
		return nil, err
	}

	beacon.startForkChoice()

	log.Debugln("Registering Blockchain Service")
	if err := beacon.registerBlockchainService(); err != nil {
		return nil, beacon.abort(err)
	}

	log.Debugln("Registering P2P Service")
	if err := beacon.registerP2P(cliCtx); err != nil {
		return nil, beacon.abort(err)
	}

	log.Debugln("Registering Sync Service")
	if err := beacon.registerSyncService(); err != nil {
		return nil, beacon.abort(err)
	}

	if !cliCtx.Bool(cmd.DisableMonitoringFlag.Name) {
		log.Debugln("Registering Prometheus Service")
		if err := beacon.registerPrometheusService(cliCtx); err != nil {
			return nil, beacon.abort(err)
		}
	}

	return beacon, nil
}

// abort releases what New acquired before failing.
func (b *BeaconNode) abort(err error) error {
	if stopErr := b.services.StopAll(); stopErr != nil {
		log.WithError(stopErr).Error("Could not stop registered services")
	}
	if closeErr := b.db.Close(); closeErr != nil {
		log.WithError(closeErr).Error("Failed to close database")
	}
	b.cancel()
	return err
}

// Start the BeaconNode and kicks off every registered service.
func (b *BeaconNode) Start() {
	b.lock.Lock()

	log.WithFields(logrus.Fields{
		"fork":     b.p2pConfig.ForkVersion,
		"datadir":  b.db.DatabasePath(),
		"services": len(b.services.Statuses()),
	}).Info("Starting beacon node")

	b.services.StartAll()

	stop := b.stop
	b.lock.Unlock()

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		log.Info("Got interrupt, shutting down...")
		go b.Close()
		for i := 10; i > 0; i-- {
			<-sigc
			if i > 1 {
				log.WithField("times", i-1).Info("Already shutting down, interrupt more to panic")
			}
		}
		panic("Panic closing the beacon node")
	}()

	// Wait for stop channel to be closed.
	<-stop
}

// Close handles graceful shutdown of the system.
func (b *BeaconNode) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()

	log.Info("Stopping beacon node")
	if err := b.services.StopAll(); err != nil {
		log.WithError(err).Error("Failed to stop services")
	}
	if err := b.db.Close(); err != nil {
		log.Errorf("Failed to close database: %v", err)
	}
	b.cancel()
	close(b.stop)
}

func (b *BeaconNode) startForkChoice() {
	b.forkChoicer = doublylinkedtree.New()
}

func (b *BeaconNode) startDB(cliCtx *cli.Context) error {
	baseDir := cliCtx.String(cmd.DataDirFlag.Name)
	if baseDir == "" {
		return errors.New("could not determine your system's HOME path, please specify a --datadir")
	}
	dbPath := filepath.Join(baseDir, kv.BeaconNodeDbDirName)
	log.WithField("databasePath", dbPath).Info("Checking DB")

	d, err := db.NewDB(b.ctx, dbPath)
	if err != nil {
		return err
	}
	if cliCtx.Bool(cmd.ForceClearDB.Name) {
		log.Warning("Removing database")
		if err := d.Close(); err != nil {
			return errors.Wrap(err, "could not close db prior to clearing")
		}
		if err := d.ClearDB(); err != nil {
			return errors.Wrap(err, "could not clear database")
		}
		d, err = db.NewDB(b.ctx, dbPath)
		if err != nil {
			return errors.Wrap(err, "could not create new database")
		}
	}
	b.db = d
	return nil
}

func (b *BeaconNode) registerBlockchainService() error {
	opts := append([]blockchain.Option{
		blockchain.WithDatabase(b.db),
		blockchain.WithForkChoiceGateway(b.forkChoicer),
		blockchain.WithBlockImporter(blockchain.NewForkChoiceImporter(b.forkChoicer)),
	}, b.serviceFlagOpts.blockchainFlagOpts...)
	blockchainService, err := blockchain.NewService(b.ctx, opts...)
	if err != nil {
		return errors.Wrap(err, "could not register blockchain service")
	}
	return b.services.RegisterService(blockchainService)
}

func (b *BeaconNode) registerP2P(cliCtx *cli.Context) error {
	if b.p2pConfig == nil {
		cfg, err := p2pConfigFromFlags(cliCtx)
		if err != nil {
			return err
		}
		b.p2pConfig = cfg
	}
	svc, err := p2p.NewService(b.ctx, b.p2pConfig)
	if err != nil {
		return errors.Wrap(err, "could not register p2p service")
	}
	return b.services.RegisterService(svc)
}

func (b *BeaconNode) fetchP2P() (*p2p.Service, error) {
	var p *p2p.Service
	if err := b.services.FetchService(&p); err != nil {
		return nil, err
	}
	return p, nil
}

func (b *BeaconNode) registerSyncService() error {
	var chainService *blockchain.Service
	if err := b.services.FetchService(&chainService); err != nil {
		return err
	}
	p, err := b.fetchP2P()
	if err != nil {
		return err
	}
	opts := append([]regularsync.Option{
		regularsync.WithP2P(p),
		regularsync.WithBlockInputReceiver(chainService),
	}, b.serviceFlagOpts.syncFlagOpts...)
	rs, err := regularsync.NewService(b.ctx, opts...)
	if err != nil {
		return errors.Wrap(err, "could not register sync service")
	}
	return b.services.RegisterService(rs)
}

func (b *BeaconNode) registerPrometheusService(cliCtx *cli.Context) error {
	service := prometheus.NewService(
		fmt.Sprintf("%s:%d", cliCtx.String(cmd.MonitoringHostFlag.Name), cliCtx.Int(flags.MonitoringPortFlag.Name)),
		b.services,
	)
	return b.services.RegisterService(service)
}
