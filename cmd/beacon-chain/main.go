// Package main defines a beacon node that ingests blocks and blob sidecars from gossip,
// verifies their KZG commitments and imports them into fork choice.
package main

import (
	"os"
	runtimeDebug "runtime/debug"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain"
	"github.com/prysmaticlabs/blobnode/beacon-chain/node"
	"github.com/prysmaticlabs/blobnode/cmd"
	"github.com/prysmaticlabs/blobnode/cmd/beacon-chain/flags"
	"github.com/prysmaticlabs/blobnode/io/logs"
	"github.com/prysmaticlabs/blobnode/monitoring/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
)

var appFlags = []cli.Flag{
	flags.P2PHost,
	flags.P2PTCPPort,
	flags.StaticPeers,
	flags.TrustedSetupFile,
	flags.MonitoringPortFlag,
	flags.ReconcileIntervalFlag,
	flags.GenesisValidatorsRoot,
	flags.ForkFlag,
	cmd.DataDirFlag,
	cmd.VerbosityFlag,
	cmd.EnableTracingFlag,
	cmd.TracingEndpointFlag,
	cmd.TraceSampleFractionFlag,
	cmd.MonitoringHostFlag,
	cmd.DisableMonitoringFlag,
	cmd.ForceClearDB,
	cmd.ChainConfigFileFlag,
	cmd.ConfigNameFlag,
	cmd.LogFormat,
	cmd.LogFileName,
}

func main() {
	app := cli.App{}
	app.Name = "beacon-chain"
	app.Usage = "this is a block and blob ingestion node for a proof-of-stake beacon chain"
	app.Action = func(ctx *cli.Context) error {
		if err := startNode(ctx); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	}
	app.Flags = appFlags

	app.Before = func(ctx *cli.Context) error {
		format := ctx.String(cmd.LogFormat.Name)
		logFileName := ctx.String(cmd.LogFileName.Name)
		if err := logs.SetFormatter(format, logFileName != ""); err != nil {
			return err
		}
		if logFileName != "" {
			if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
				logrus.WithError(err).Error("Failed to configuring logging to disk.")
			}
		}
		if !ctx.Bool(cmd.DisableMonitoringFlag.Name) {
			logrus.AddHook(prometheus.NewLogrusCollector())
		}
		return nil
	}

	defer func() {
		if x := recover(); x != nil {
			logrus.Errorf("Runtime panic: %v\n%v", x, string(runtimeDebug.Stack()))
			panic(x)
		}
	}()

	if err := app.Run(os.Args); err != nil {
		logrus.Error(err.Error())
	}
}

func startNode(ctx *cli.Context) error {
	verbosity := ctx.String(cmd.VerbosityFlag.Name)
	level, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	opts := []node.Option{
		node.WithBlockchainFlagOptions(blockchainFlagOptions(ctx)),
	}
	beacon, err := node.New(ctx, opts...)
	if err != nil {
		return errors.Wrap(err, "unable to start beacon node")
	}
	beacon.Start()
	return nil
}

func blockchainFlagOptions(ctx *cli.Context) []blockchain.Option {
	var opts []blockchain.Option
	if ctx.IsSet(flags.ReconcileIntervalFlag.Name) {
		opts = append(opts, blockchain.WithReconcileInterval(ctx.Duration(flags.ReconcileIntervalFlag.Name)))
	}
	return opts
}
