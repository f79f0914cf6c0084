package tracing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"
)

func TestAnnotateError(t *testing.T) {
	_, span := trace.StartSpan(context.Background(), "test", trace.WithSampler(trace.AlwaysSample()))
	AnnotateError(span, nil)
	AnnotateError(span, errors.New("boom"))
	span.End()
}

func TestSetup_Disabled(t *testing.T) {
	require.NoError(t, Setup("", "", 0, false))
}

func TestSetup_RequiresName(t *testing.T) {
	err := Setup("", "http://127.0.0.1:14268/api/traces", 1, true)
	assert.ErrorContains(t, err, "service name")
}
