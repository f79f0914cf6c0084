// Package logging contains useful functionality for logging.
package logging

import (
	"fmt"

	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
)

// BlockFields extracts a standard set of fields from a BlockInput into a logrus.Fields struct
// which can be passed to log.WithFields.
func BlockFields(in blocks.BlockInput) logrus.Fields {
	blk := in.Block().Block()
	fields := logrus.Fields{
		"slot":          blk.Slot(),
		"proposerIndex": blk.ProposerIndex(),
		"blockRoot":     fmt.Sprintf("%#x", in.Root()),
		"parentRoot":    fmt.Sprintf("%#x", blk.ParentRoot()),
		"source":        in.Source().String(),
		"inputType":     in.Type().String(),
	}
	if sidecars, err := in.Blobs(); err == nil {
		fields["blobsLen"] = len(sidecars)
	}
	return fields
}

// BlobFields extracts a standard set of fields from a BlobSidecar into a logrus.Fields struct
// which can be passed to log.WithFields.
func BlobFields(sc *ethpb.BlobSidecar) logrus.Fields {
	return logrus.Fields{
		"slot":          sc.Slot,
		"proposerIndex": sc.ProposerIndex,
		"blockRoot":     fmt.Sprintf("%#x", sc.BlockRoot)[:8],
		"parentRoot":    fmt.Sprintf("%#x", sc.BlockParentRoot)[:8],
		"kzgCommitment": fmt.Sprintf("%#x", sc.KzgCommitment)[:8],
		"index":         sc.Index,
	}
}
