package blockchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/db"
	"github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
	"golang.org/x/sync/errgroup"
)

// Persister writes block inputs to the database before fork choice has ruled on them and
// removes the writes fork choice did not keep.
type Persister struct {
	beaconDB db.NoHeadAccessDatabase
	fc       forkchoice.Gateway

	inFlightLock sync.Mutex
	inFlight     map[[32]byte]struct{}
	// sweeping holds the roots ReconcileUnimported is resolving. Persist waits on sweepDone
	// until none of its roots are in it.
	sweeping  map[[32]byte]struct{}
	sweepDone *sync.Cond
}

// NewPersister builds a persister. WithDatabase and WithForkChoiceGateway are required.
func NewPersister(opts ...Option) (*Persister, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newPersister(cfg)
}

func newPersister(cfg *config) (*Persister, error) {
	if cfg.BeaconDB == nil {
		return nil, errNilDatabase
	}
	if cfg.ForkChoice == nil {
		return nil, errNilForkChoice
	}
	p := &Persister{
		beaconDB: cfg.BeaconDB,
		fc:       cfg.ForkChoice,
		inFlight: make(map[[32]byte]struct{}),
		sweeping: make(map[[32]byte]struct{}),
	}
	p.sweepDone = sync.NewCond(&p.inFlightLock)
	return p, nil
}

// Persist writes every input concurrently and returns once all writes have resolved.
// Inputs carrying serialized data are stored byte for byte, others are re-encoded.
// Post-blob inputs also store their blob sidecar record. The first failure is returned
// classified as ErrPersist. Fork choice is not consulted.
func (p *Persister) Persist(ctx context.Context, inputs []blocks.BlockInput) error {
	ctx, span := trace.StartSpan(ctx, "blockchain.Persist")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("inputs", int64(len(inputs))))

	records := make([]*ethpb.BlobSidecarRecord, len(inputs))
	for i, in := range inputs {
		switch in := in.(type) {
		case blocks.PreBlobBlockInput:
		case blocks.PostBlobBlockInput:
			rec, err := blobSidecarRecord(in)
			if err != nil {
				return classify(ErrPersist, err)
			}
			records[i] = rec
		default:
			return classify(ErrPersist, errors.Wrapf(blocks.ErrUnknownBlockInput, "%T", in))
		}
	}

	p.trackInFlight(inputs)

	var g errgroup.Group
	for i, in := range inputs {
		g.Go(func() error {
			return p.saveBlock(ctx, in)
		})
		if rec := records[i]; rec != nil {
			g.Go(func() error {
				if err := p.beaconDB.SaveBlobSidecarRecord(ctx, rec); err != nil {
					return errors.Wrapf(err, "could not save blob sidecars of block %#x", in.Root())
				}
				persistBlobRecords.Inc()
				return nil
			})
		}
	}
	return classify(ErrPersist, g.Wait())
}

func (p *Persister) saveBlock(ctx context.Context, in blocks.BlockInput) error {
	b := in.Block()
	root := in.Root()
	if data := in.SerializedData(); len(data) > 0 {
		if err := p.beaconDB.SaveBlockBytes(ctx, root, b.Block().Slot(), b.Version(), data); err != nil {
			return errors.Wrapf(err, "could not save block bytes %#x", root)
		}
		persistWithSerializedData.Inc()
		return nil
	}
	if err := p.beaconDB.SaveBlock(ctx, b); err != nil {
		return errors.Wrapf(err, "could not save block %#x", root)
	}
	persistNoSerializedData.Inc()
	return nil
}

func blobSidecarRecord(in blocks.PostBlobBlockInput) (*ethpb.BlobSidecarRecord, error) {
	sidecars, err := in.Blobs()
	if err != nil {
		return nil, err
	}
	root := in.Root()
	parent := in.Block().Block().ParentRoot()
	return &ethpb.BlobSidecarRecord{
		BlockRoot:       root[:],
		Slot:            in.Block().Block().Slot(),
		BlockParentRoot: parent[:],
		ProposerIndex:   in.Block().Block().ProposerIndex(),
		Sidecars:        sidecars,
	}, nil
}

// PruneUnimported removes the blocks and blob records of every input fork choice does not know.
// Block and blob deletions run as two independent batches: one failing does not undo the other.
// Markers are cleared for every root that was fully resolved. Calling it again is harmless.
func (p *Persister) PruneUnimported(ctx context.Context, inputs []blocks.BlockInput) error {
	ctx, span := trace.StartSpan(ctx, "blockchain.PruneUnimported")
	defer span.End()

	roots := make([][32]byte, len(inputs))
	for i, in := range inputs {
		roots[i] = in.Root()
	}
	defer p.untrackInFlight(roots)
	return p.reconcile(ctx, roots)
}

// ReconcileUnimported resolves every marker left by writes whose fate was never settled, for example
// because the node stopped between persisting and pruning. Roots still being imported are skipped,
// and a Persist of a root under sweep waits for the sweep to finish before writing.
func (p *Persister) ReconcileUnimported(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "blockchain.ReconcileUnimported")
	defer span.End()

	marked, err := p.beaconDB.UnreconciledRoots(ctx)
	if err != nil {
		return classify(ErrPrune, errors.Wrap(err, "could not read unreconciled roots"))
	}
	roots := make([][32]byte, 0, len(marked))
	p.inFlightLock.Lock()
	for r := range marked {
		if _, ok := p.inFlight[r]; ok {
			continue
		}
		if _, ok := p.sweeping[r]; ok {
			continue
		}
		p.sweeping[r] = struct{}{}
		roots = append(roots, r)
	}
	p.inFlightLock.Unlock()
	if len(roots) == 0 {
		return nil
	}
	defer p.releaseSwept(roots)
	log.WithField("roots", len(roots)).Debug("Reconciling eagerly written blocks")
	return p.reconcile(ctx, roots)
}

// MarkImported records that fork choice accepted the given roots.
func (p *Persister) MarkImported(ctx context.Context, roots [][32]byte) error {
	p.untrackInFlight(roots)
	if err := p.beaconDB.ClearUnreconciled(ctx, roots); err != nil {
		return errors.Wrap(err, "could not clear unreconciled markers")
	}
	reconciledRoots.WithLabelValues("imported").Add(float64(len(roots)))
	return nil
}

func (p *Persister) reconcile(ctx context.Context, roots [][32]byte) error {
	known := make([][32]byte, 0, len(roots))
	unknown := make([][32]byte, 0)
	for _, r := range roots {
		if p.fc.HasBlockHex(hexutil.Encode(r[:])) {
			known = append(known, r)
		} else {
			unknown = append(unknown, r)
		}
	}

	var blockErr, blobErr error
	if len(unknown) > 0 {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			blockErr = p.beaconDB.DeleteBlocks(ctx, unknown)
		}()
		go func() {
			defer wg.Done()
			blobErr = p.beaconDB.DeleteBlobSidecarRecords(ctx, unknown)
		}()
		wg.Wait()
	}

	resolved := known
	if blockErr == nil && blobErr == nil {
		resolved = append(resolved, unknown...)
		prunedBlocks.Add(float64(len(unknown)))
		prunedBlobRecords.Add(float64(len(unknown)))
		reconciledRoots.WithLabelValues("pruned").Add(float64(len(unknown)))
	}
	reconciledRoots.WithLabelValues("kept").Add(float64(len(known)))
	clearErr := p.beaconDB.ClearUnreconciled(ctx, resolved)

	if len(unknown) > 0 {
		log.WithFields(logrus.Fields{
			"pruned": len(unknown),
			"kept":   len(known),
		}).Debug("Pruned unimported blocks")
	}

	switch {
	case blockErr != nil && blobErr != nil:
		return classify(ErrPrune, errors.Wrapf(blockErr, "could not delete blocks or blob sidecar records (%v)", blobErr))
	case blockErr != nil:
		return classify(ErrPrune, errors.Wrap(blockErr, "could not delete blocks"))
	case blobErr != nil:
		return classify(ErrPrune, errors.Wrap(blobErr, "could not delete blob sidecar records"))
	case clearErr != nil:
		return classify(ErrPrune, errors.Wrap(clearErr, "could not clear unreconciled markers"))
	}
	return nil
}

func (p *Persister) trackInFlight(inputs []blocks.BlockInput) {
	p.inFlightLock.Lock()
	defer p.inFlightLock.Unlock()
	for p.underSweep(inputs) {
		p.sweepDone.Wait()
	}
	for _, in := range inputs {
		p.inFlight[in.Root()] = struct{}{}
	}
}

func (p *Persister) untrackInFlight(roots [][32]byte) {
	p.inFlightLock.Lock()
	defer p.inFlightLock.Unlock()
	for _, r := range roots {
		delete(p.inFlight, r)
	}
}

// underSweep must be called with inFlightLock held.
func (p *Persister) underSweep(inputs []blocks.BlockInput) bool {
	for _, in := range inputs {
		if _, ok := p.sweeping[in.Root()]; ok {
			return true
		}
	}
	return false
}

func (p *Persister) releaseSwept(roots [][32]byte) {
	p.inFlightLock.Lock()
	defer p.inFlightLock.Unlock()
	for _, r := range roots {
		delete(p.sweeping, r)
	}
	p.sweepDone.Broadcast()
}

func (p *Persister) inFlightCount() int {
	p.inFlightLock.Lock()
	defer p.inFlightLock.Unlock()
	return len(p.inFlight)
}

func rootString(r [32]byte) string {
	return fmt.Sprintf("%#x", r)
}
