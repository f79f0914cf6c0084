package blocks

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	eth "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/version"
)

// Proto converts the signed beacon block to a protobuf object.
func (b *SignedBeaconBlock) Proto() (any, error) {
	if b == nil {
		return nil, ErrNilObject
	}
	blockMessage, err := b.block.Proto()
	if err != nil {
		return nil, err
	}
	switch b.version {
	case version.Capella:
		block, ok := blockMessage.(*eth.BeaconBlockCapella)
		if !ok {
			return nil, errors.Wrap(ErrUnsupportedVersion, "incorrect block type")
		}
		return &eth.SignedBeaconBlockCapella{
			Block:     block,
			Signature: b.signature[:],
		}, nil
	case version.Deneb:
		block, ok := blockMessage.(*eth.BeaconBlockDeneb)
		if !ok {
			return nil, errors.Wrap(ErrUnsupportedVersion, "incorrect block type")
		}
		return &eth.SignedBeaconBlockDeneb{
			Block:     block,
			Signature: b.signature[:],
		}, nil
	default:
		return nil, errNotSupported("Proto", b.version)
	}
}

// Proto converts the beacon block to a protobuf object.
func (b *BeaconBlock) Proto() (any, error) {
	if b == nil {
		return nil, ErrNilObject
	}
	bodyMessage, err := b.body.Proto()
	if err != nil {
		return nil, err
	}
	switch b.version {
	case version.Capella:
		body, ok := bodyMessage.(*eth.BeaconBlockBodyCapella)
		if !ok {
			return nil, errors.Wrap(ErrUnsupportedVersion, "incorrect body type")
		}
		return &eth.BeaconBlockCapella{
			Slot:          b.slot,
			ProposerIndex: b.proposerIndex,
			ParentRoot:    b.parentRoot[:],
			StateRoot:     b.stateRoot[:],
			Body:          body,
		}, nil
	case version.Deneb:
		body, ok := bodyMessage.(*eth.BeaconBlockBodyDeneb)
		if !ok {
			return nil, errors.Wrap(ErrUnsupportedVersion, "incorrect body type")
		}
		return &eth.BeaconBlockDeneb{
			Slot:          b.slot,
			ProposerIndex: b.proposerIndex,
			ParentRoot:    b.parentRoot[:],
			StateRoot:     b.stateRoot[:],
			Body:          body,
		}, nil
	default:
		return nil, errNotSupported("Proto", b.version)
	}
}

// Proto converts the beacon block body to a protobuf object.
func (b *BeaconBlockBody) Proto() (any, error) {
	if b == nil {
		return nil, ErrNilObject
	}
	switch b.version {
	case version.Capella:
		return &eth.BeaconBlockBodyCapella{
			RandaoReveal:          b.randaoReveal[:],
			Graffiti:              b.graffiti[:],
			VoluntaryExits:        b.voluntaryExits,
			SyncAggregate:         b.syncAggregate,
			ExecutionPayload:      b.executionPayload,
			BlsToExecutionChanges: b.blsToExecutionChanges,
		}, nil
	case version.Deneb:
		return &eth.BeaconBlockBodyDeneb{
			RandaoReveal:          b.randaoReveal[:],
			Graffiti:              b.graffiti[:],
			VoluntaryExits:        b.voluntaryExits,
			SyncAggregate:         b.syncAggregate,
			ExecutionPayload:      b.executionPayload,
			BlsToExecutionChanges: b.blsToExecutionChanges,
			BlobKzgCommitments:    b.blobKzgCommitments,
		}, nil
	default:
		return nil, errNotSupported("Proto", b.version)
	}
}

func initSignedBlockFromProtoCapella(pb *eth.SignedBeaconBlockCapella) (*SignedBeaconBlock, error) {
	if pb == nil {
		return nil, ErrNilObject
	}
	block, err := initBlockFromProtoCapella(pb.Block)
	if err != nil {
		return nil, err
	}
	b := &SignedBeaconBlock{
		version:   version.Capella,
		block:     block,
		signature: bytesutil.ToBytes96(pb.Signature),
	}
	return b, nil
}

func initSignedBlockFromProtoDeneb(pb *eth.SignedBeaconBlockDeneb) (*SignedBeaconBlock, error) {
	if pb == nil {
		return nil, ErrNilObject
	}
	block, err := initBlockFromProtoDeneb(pb.Block)
	if err != nil {
		return nil, err
	}
	b := &SignedBeaconBlock{
		version:   version.Deneb,
		block:     block,
		signature: bytesutil.ToBytes96(pb.Signature),
	}
	return b, nil
}

func initBlockFromProtoCapella(pb *eth.BeaconBlockCapella) (*BeaconBlock, error) {
	if pb == nil {
		return nil, ErrNilBeaconBlock
	}
	body, err := initBlockBodyFromProtoCapella(pb.Body)
	if err != nil {
		return nil, err
	}
	b := &BeaconBlock{
		version:       version.Capella,
		slot:          pb.Slot,
		proposerIndex: pb.ProposerIndex,
		parentRoot:    bytesutil.ToBytes32(pb.ParentRoot),
		stateRoot:     bytesutil.ToBytes32(pb.StateRoot),
		body:          body,
	}
	return b, nil
}

func initBlockFromProtoDeneb(pb *eth.BeaconBlockDeneb) (*BeaconBlock, error) {
	if pb == nil {
		return nil, ErrNilBeaconBlock
	}
	body, err := initBlockBodyFromProtoDeneb(pb.Body)
	if err != nil {
		return nil, err
	}
	b := &BeaconBlock{
		version:       version.Deneb,
		slot:          pb.Slot,
		proposerIndex: pb.ProposerIndex,
		parentRoot:    bytesutil.ToBytes32(pb.ParentRoot),
		stateRoot:     bytesutil.ToBytes32(pb.StateRoot),
		body:          body,
	}
	return b, nil
}

func initBlockBodyFromProtoCapella(pb *eth.BeaconBlockBodyCapella) (*BeaconBlockBody, error) {
	if pb == nil {
		return nil, ErrNilBeaconBlockBody
	}
	b := &BeaconBlockBody{
		version:               version.Capella,
		randaoReveal:          bytesutil.ToBytes96(pb.RandaoReveal),
		graffiti:              bytesutil.ToBytes32(pb.Graffiti),
		voluntaryExits:        pb.VoluntaryExits,
		syncAggregate:         pb.SyncAggregate,
		executionPayload:      pb.ExecutionPayload,
		blsToExecutionChanges: pb.BlsToExecutionChanges,
	}
	return b, nil
}

func initBlockBodyFromProtoDeneb(pb *eth.BeaconBlockBodyDeneb) (*BeaconBlockBody, error) {
	if pb == nil {
		return nil, ErrNilBeaconBlockBody
	}
	b := &BeaconBlockBody{
		version:               version.Deneb,
		randaoReveal:          bytesutil.ToBytes96(pb.RandaoReveal),
		graffiti:              bytesutil.ToBytes32(pb.Graffiti),
		voluntaryExits:        pb.VoluntaryExits,
		syncAggregate:         pb.SyncAggregate,
		executionPayload:      pb.ExecutionPayload,
		blsToExecutionChanges: pb.BlsToExecutionChanges,
		blobKzgCommitments:    pb.BlobKzgCommitments,
	}
	return b, nil
}
