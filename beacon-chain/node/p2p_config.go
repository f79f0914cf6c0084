package node

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/cmd/beacon-chain/flags"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	"github.com/prysmaticlabs/blobnode/runtime/version"
	"github.com/urfave/cli/v2"
)

const userAgent = "blobnode"

func p2pConfigFromFlags(cliCtx *cli.Context) (*p2p.Config, error) {
	forkVersion, err := forkVersionByName(cliCtx.String(flags.ForkFlag.Name))
	if err != nil {
		return nil, err
	}
	gvr, err := hexutil.Decode(cliCtx.String(flags.GenesisValidatorsRoot.Name))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode genesis validators root")
	}
	if len(gvr) != 32 {
		return nil, errors.Errorf("genesis validators root is %d bytes, want 32", len(gvr))
	}
	return &p2p.Config{
		HostAddress:           cliCtx.String(flags.P2PHost.Name),
		TCPPort:               cliCtx.Uint(flags.P2PTCPPort.Name),
		StaticPeers:           cliCtx.StringSlice(flags.StaticPeers.Name),
		ForkVersion:           forkVersion,
		GenesisValidatorsRoot: bytesutil.ToBytes32(gvr),
		UserAgent:             userAgent,
	}, nil
}

func forkVersionByName(name string) ([4]byte, error) {
	cfg := params.BeaconConfig()
	switch name {
	case version.String(version.Capella):
		return bytesutil.ToBytes4(cfg.CapellaForkVersion), nil
	case version.String(version.Deneb), "":
		return bytesutil.ToBytes4(cfg.DenebForkVersion), nil
	default:
		return [4]byte{}, errors.Errorf("unsupported fork %q", name)
	}
}
