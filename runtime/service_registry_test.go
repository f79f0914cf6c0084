package runtime

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	status  error
	stopErr error
	stopped bool
}

type secondMockService struct {
	status  error
	stopped bool
}

func (*mockService) Start() {}

func (m *mockService) Stop() error {
	m.stopped = true
	return m.stopErr
}

func (m *mockService) Status() error {
	return m.status
}

func (*secondMockService) Start() {}

func (s *secondMockService) Stop() error {
	s.stopped = true
	return nil
}

func (s *secondMockService) Status() error {
	return s.status
}

func TestRegisterService_Twice(t *testing.T) {
	registry := NewServiceRegistry()

	m := &mockService{}
	require.NoError(t, registry.RegisterService(m), "Failed to register first service")
	require.Equal(t, 1, len(registry.serviceTypes))
	assert.ErrorContains(t, registry.RegisterService(m), "service already exists")
}

func TestRegisterService_Different(t *testing.T) {
	registry := NewServiceRegistry()

	require.NoError(t, registry.RegisterService(&mockService{}))
	require.NoError(t, registry.RegisterService(&secondMockService{}))
	require.Equal(t, 2, len(registry.serviceTypes))
	require.Equal(t, 2, len(registry.services))
}

func TestFetchService_OK(t *testing.T) {
	registry := NewServiceRegistry()
	m := &mockService{}
	require.NoError(t, registry.RegisterService(m))

	var s *mockService
	require.NoError(t, registry.FetchService(&s))
	assert.Same(t, m, s)

	err := registry.FetchService(s)
	assert.ErrorContains(t, err, "input must be of pointer type, received value type instead")

	var unknown *secondMockService
	assert.ErrorContains(t, registry.FetchService(&unknown), "unknown service")
}

func TestServiceStatus_OK(t *testing.T) {
	registry := NewServiceRegistry()
	m := &mockService{}
	s := &secondMockService{}
	require.NoError(t, registry.RegisterService(m))
	require.NoError(t, registry.RegisterService(s))

	m.status = errors.New("something bad has happened")
	s.status = errors.New("woah, horsee")

	statuses := registry.Statuses()
	require.Len(t, statuses, 2)
	for kind, err := range statuses {
		switch kind.String() {
		case "*runtime.mockService":
			assert.Equal(t, m.status, err)
		case "*runtime.secondMockService":
			assert.Equal(t, s.status, err)
		default:
			t.Fatalf("unexpected service %v", kind)
		}
	}
}

func TestStopAll_StopsEveryService(t *testing.T) {
	registry := NewServiceRegistry()
	m := &mockService{stopErr: errors.New("stuck")}
	s := &secondMockService{}
	require.NoError(t, registry.RegisterService(m))
	require.NoError(t, registry.RegisterService(s))

	err := registry.StopAll()
	require.ErrorContains(t, err, "stuck")
	assert.True(t, m.stopped)
	assert.True(t, s.stopped)
}
