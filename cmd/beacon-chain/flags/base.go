// Package flags defines beacon-node specific runtime flags for
// setting important values such as ports, peers, and the trusted setup.
package flags

import (
	"github.com/prysmaticlabs/blobnode/cmd/flags"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/runtime/version"
	"github.com/urfave/cli/v2"
)

var fork string

var (
	// P2PHost defines the address the libp2p host listens on.
	P2PHost = &cli.StringFlag{
		Name:  "p2p-host-ip",
		Usage: "The IP address the libp2p host listens on.",
		Value: "0.0.0.0",
	}
	// P2PTCPPort defines the port to be used by libp2p.
	P2PTCPPort = &cli.UintFlag{
		Name:  "p2p-tcp-port",
		Usage: "The port used by libp2p. Zero picks a free port.",
		Value: 13000,
	}
	// StaticPeers specifies a set of peers to connect to explicitly.
	StaticPeers = &cli.StringSliceFlag{
		Name:  "peer",
		Usage: "Connect with this peer, given as a full multiaddr. This flag may be used multiple times.",
	}
	// TrustedSetupFile points at a JSON trusted setup used instead of the embedded one.
	TrustedSetupFile = &cli.StringFlag{
		Name:  "trusted-setup-file",
		Usage: "Path to a JSON file holding the KZG trusted setup. The embedded setup is used when unset.",
	}
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listening and respond metrics for prometheus.",
		Value: 8080,
	}
	// ReconcileIntervalFlag sets how often eagerly written blocks with no fork choice verdict are swept.
	ReconcileIntervalFlag = &cli.DurationFlag{
		Name:  "reconcile-interval",
		Usage: "How often blocks written ahead of fork choice and never resolved are swept.",
		Value: params.BeaconConfig().ReconcileInterval,
	}
	// GenesisValidatorsRoot is mixed into the fork digest carried by every gossip topic.
	GenesisValidatorsRoot = &cli.StringFlag{
		Name:  "genesis-validators-root",
		Usage: "Hex encoded genesis validators root of the network.",
		Value: "0x0000000000000000000000000000000000000000000000000000000000000000",
	}
	// ForkFlag selects the fork whose gossip topics the node joins.
	ForkFlag = flags.EnumValue{
		Name:        "fork",
		Usage:       "Fork whose gossip topics the node joins. Supports: capella, deneb.",
		Value:       version.String(version.Deneb),
		Destination: &fork,
		Enum:        []string{version.String(version.Capella), version.String(version.Deneb)},
	}.GenericFlag()
)
