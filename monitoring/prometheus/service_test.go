package prometheus

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/runtime"
	logTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthyService struct{}

func (healthyService) Start()        {}
func (healthyService) Stop() error   { return nil }
func (healthyService) Status() error { return nil }

type failingService struct{}

func (*failingService) Start()        {}
func (*failingService) Stop() error   { return nil }
func (*failingService) Status() error { return errors.New("disk full") }

func TestLifecycle(t *testing.T) {
	hook := logTest.NewGlobal()
	s := NewService("127.0.0.1:0", runtime.NewServiceRegistry())
	s.Start()
	require.NoError(t, s.Status())
	require.NotNil(t, s.Addr())
	assert.Contains(t, hook.LastEntry().Message, "Starting service")

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", s.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "go_goroutines"))

	require.NoError(t, s.Stop())
	assert.Equal(t, "Stopping service", hook.LastEntry().Message)
}

func TestLifecycle_BadAddress(t *testing.T) {
	s := NewService("256.0.0.1:bad", nil)
	s.Start()
	assert.Error(t, s.Status())
}

func TestHealthz(t *testing.T) {
	registry := runtime.NewServiceRegistry()
	require.NoError(t, registry.RegisterService(healthyService{}))
	s := NewService("", registry)

	rr := httptest.NewRecorder()
	s.healthzHandler(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "prometheus.healthyService: OK")

	require.NoError(t, registry.RegisterService(&failingService{}))
	rr = httptest.NewRecorder()
	s.healthzHandler(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "ERROR disk full")
}

func TestHealthz_JSON(t *testing.T) {
	registry := runtime.NewServiceRegistry()
	require.NoError(t, registry.RegisterService(&failingService{}))
	s := NewService("", registry)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept", contentTypeJSON)
	rr := httptest.NewRecorder()
	s.healthzHandler(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, contentTypeJSON, rr.Header().Get("Content-Type"))

	var got struct {
		Data []serviceStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, "*prometheus.failingService", got.Data[0].Name)
	assert.False(t, got.Data[0].Status)
	assert.Equal(t, "disk full", got.Data[0].Err)
}
