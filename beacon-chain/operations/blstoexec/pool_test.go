package blstoexec

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_InsertKeepsOrderAndDedupes(t *testing.T) {
	p := NewPool()
	assert.True(t, p.InsertBLSToExecChange(util.NewSignedBLSToExecutionChange(5)))
	assert.True(t, p.InsertBLSToExecChange(util.NewSignedBLSToExecutionChange(2)))
	assert.False(t, p.InsertBLSToExecChange(util.NewSignedBLSToExecutionChange(5)))

	pending := p.PendingBLSToExecChanges(true)
	require.Len(t, pending, 2)
	assert.Equal(t, 2, int(pending[0].Message.ValidatorIndex))
	assert.Equal(t, 5, int(pending[1].Message.ValidatorIndex))
}

func TestPool_RejectsMalformed(t *testing.T) {
	p := NewPool()
	assert.False(t, p.InsertBLSToExecChange(nil))
	bad := util.NewSignedBLSToExecutionChange(1)
	bad.Signature = bad.Signature[:10]
	assert.False(t, p.InsertBLSToExecChange(bad))
	assert.Empty(t, p.PendingBLSToExecChanges(true))
}

func TestPool_PendingLimit(t *testing.T) {
	p := NewPool()
	for i := 0; i < 20; i++ {
		p.InsertBLSToExecChange(util.NewSignedBLSToExecutionChange(primitives.ValidatorIndex(i)))
	}
	assert.Len(t, p.PendingBLSToExecChanges(false), 16)
	assert.Len(t, p.PendingBLSToExecChanges(true), 20)
}

func TestPool_MarkIncluded(t *testing.T) {
	p := NewPool()
	c := util.NewSignedBLSToExecutionChange(3)
	p.InsertBLSToExecChange(c)
	p.MarkIncluded(c)
	p.MarkIncluded(nil)
	assert.Empty(t, p.PendingBLSToExecChanges(true))
}
