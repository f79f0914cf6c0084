package params

import "time"

// InteropConfig is a local-network configuration where every fork past genesis
// activates at epoch 1 and slots are short.
func InteropConfig() *BeaconChainConfig {
	cfg := MainnetConfig().Copy()
	cfg.ConfigName = InteropName
	cfg.SecondsPerSlot = 2
	cfg.SlotsPerEpoch = 8
	cfg.MinGenesisTime = 0
	cfg.GenesisDelay = 10

	cfg.GenesisForkVersion = []byte{0, 0, 0, 253}
	cfg.AltairForkVersion = []byte{1, 0, 0, 253}
	cfg.AltairForkEpoch = 1
	cfg.BellatrixForkVersion = []byte{2, 0, 0, 253}
	cfg.BellatrixForkEpoch = 1
	cfg.CapellaForkVersion = []byte{3, 0, 0, 253}
	cfg.CapellaForkEpoch = 1
	cfg.DenebForkVersion = []byte{4, 0, 0, 253}
	cfg.DenebForkEpoch = 1

	cfg.PendingBlockInputTTL = 10 * time.Second
	cfg.ReconcileInterval = 5 * time.Second
	cfg.InitializeForkSchedule()
	return cfg
}
