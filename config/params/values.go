package params

const (
	MainnetName = "mainnet"
	InteropName = "interop"
)

// ConfigByName returns a copy of a known named configuration.
func ConfigByName(name string) (*BeaconChainConfig, bool) {
	switch name {
	case MainnetName:
		return MainnetConfig().Copy(), true
	case InteropName:
		return InteropConfig(), true
	default:
		return nil, false
	}
}
