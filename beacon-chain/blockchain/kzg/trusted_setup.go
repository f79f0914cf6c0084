package kzg

import (
	"encoding/json"
	"os"
	"sync"

	GoKZG "github.com/crate-crypto/go-kzg-4844"
	"github.com/pkg/errors"
)

// ErrSetupNotLoaded is returned by every operation in this package until Start or StartFromFile succeeds.
var ErrSetupNotLoaded = errors.New("kzg trusted setup not loaded")

var (
	kzgContext *GoKZG.Context
	kzgLock    sync.RWMutex
)

// Start loads the trusted setup embedded in go-kzg-4844. Calls after the first success are no-ops.
func Start() error {
	return load(func() (*GoKZG.Context, error) {
		return GoKZG.NewContext4096Secure()
	})
}

// StartFromFile loads a trusted setup from a JSON file holding the g1 lagrange and g2 monomial points.
// Calls after the first success are no-ops. A failed load leaves the package unloaded and may be retried.
func StartFromFile(path string) error {
	return load(func() (*GoKZG.Context, error) {
		raw, err := os.ReadFile(path) // #nosec G304
		if err != nil {
			return nil, errors.Wrap(err, "could not read trusted setup file")
		}
		setup := &GoKZG.JSONTrustedSetup{}
		if err := json.Unmarshal(raw, setup); err != nil {
			return nil, errors.Wrap(err, "could not decode trusted setup")
		}
		return GoKZG.NewContext4096(setup)
	})
}

// Loaded reports whether a trusted setup is in place.
func Loaded() bool {
	kzgLock.RLock()
	defer kzgLock.RUnlock()
	return kzgContext != nil
}

func load(newCtx func() (*GoKZG.Context, error)) error {
	kzgLock.Lock()
	defer kzgLock.Unlock()
	if kzgContext != nil {
		return nil
	}
	ctx, err := newCtx()
	if err != nil {
		return errors.Wrap(err, "could not initialize kzg context")
	}
	kzgContext = ctx
	log.Debug("Loaded KZG trusted setup")
	return nil
}

func loadedContext() (*GoKZG.Context, error) {
	kzgLock.RLock()
	defer kzgLock.RUnlock()
	if kzgContext == nil {
		return nil, ErrSetupNotLoaded
	}
	return kzgContext, nil
}
