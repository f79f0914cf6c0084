package node

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain/kzg"
	"github.com/prysmaticlabs/blobnode/cmd"
	"github.com/prysmaticlabs/blobnode/cmd/beacon-chain/flags"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/monitoring/tracing"
	"github.com/urfave/cli/v2"
)

func configureTracing(cliCtx *cli.Context) error {
	return tracing.Setup(
		"beacon-chain", // service name
		cliCtx.String(cmd.TracingEndpointFlag.Name),
		cliCtx.Float64(cmd.TraceSampleFractionFlag.Name),
		cliCtx.Bool(cmd.EnableTracingFlag.Name),
	)
}

// configureChainConfig applies the named config first so that a config file can override it.
func configureChainConfig(cliCtx *cli.Context) error {
	if cliCtx.IsSet(cmd.ConfigNameFlag.Name) {
		name := cliCtx.String(cmd.ConfigNameFlag.Name)
		c, ok := params.ConfigByName(name)
		if !ok {
			return errors.Errorf("unknown chain config %q", name)
		}
		params.OverrideBeaconConfig(c)
	}
	if cliCtx.IsSet(cmd.ChainConfigFileFlag.Name) {
		chainConfigFileName := cliCtx.String(cmd.ChainConfigFileFlag.Name)
		if err := params.LoadChainConfigFile(chainConfigFileName); err != nil {
			return errors.Wrapf(err, "could not load chain config file %s", chainConfigFileName)
		}
	}
	return nil
}

func configureTrustedSetup(cliCtx *cli.Context) error {
	if cliCtx.IsSet(flags.TrustedSetupFile.Name) {
		path := cliCtx.String(flags.TrustedSetupFile.Name)
		log.WithField("path", path).Info("Loading trusted setup from file")
		return kzg.StartFromFile(path)
	}
	return kzg.Start()
}
