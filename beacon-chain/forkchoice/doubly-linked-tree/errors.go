package doublylinkedtree

import "errors"

var ErrNilNode = errors.New("invalid nil or unknown node")
var errInvalidParentRoot = errors.New("parent root not in fork choice")
var errUnknownFinalizedRoot = errors.New("unknown finalized root")
var errSlotNotAfterParent = errors.New("block slot is not after its parent's")
