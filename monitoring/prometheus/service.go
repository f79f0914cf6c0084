// Package prometheus serves the node's metrics and health endpoints.
package prometheus

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"runtime/pprof"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prysmaticlabs/blobnode/runtime"
)

const shutdownTimeout = 2 * time.Second

// Service provides Prometheus metrics via the /metrics route. This route will
// show all the metrics registered with the Prometheus DefaultRegisterer.
type Service struct {
	server      *http.Server
	svcRegistry *runtime.ServiceRegistry

	lock       sync.Mutex
	listenAddr net.Addr
	failStatus error
}

type serviceStatus struct {
	Name   string `json:"service"`
	Status bool   `json:"status"`
	Err    string `json:"error,omitempty"`
}

// NewService sets up a new instance for a given address host:port.
// An empty host will match with any IP so an address like ":2121" is perfectly acceptable.
func NewService(addr string, svcRegistry *runtime.ServiceRegistry) *Service {
	s := &Service{svcRegistry: svcRegistry}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", s.healthzHandler)
	mux.HandleFunc("/goroutinez", s.goroutinezHandler)

	s.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: time.Second}
	return s
}

func (s *Service) statuses() ([]serviceStatus, bool) {
	var out []serviceStatus
	healthy := true
	if s.svcRegistry == nil {
		return out, healthy
	}
	for k, v := range s.svcRegistry.Statuses() {
		st := serviceStatus{Name: k.String(), Status: v == nil}
		if v != nil {
			healthy = false
			st.Err = v.Error()
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, healthy
}

func (s *Service) healthzHandler(w http.ResponseWriter, r *http.Request) {
	statuses, healthy := s.statuses()
	response := generatedResponse{}
	if negotiateContentType(r) == contentTypeJSON {
		w.Header().Set("Content-Type", contentTypeJSON)
		response.Data = statuses
	} else {
		var buf bytes.Buffer
		for _, st := range statuses {
			status := "OK"
			if !st.Status {
				status = "ERROR " + st.Err
			}
			if _, err := buf.WriteString(fmt.Sprintf("%s: %s\n", st.Name, status)); err != nil {
				healthy = false
			}
		}
		response.Data = buf
	}

	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	if err := writeResponse(w, r, response); err != nil {
		log.WithError(err).Error("Could not write healthz body")
	}
}

func (s *Service) goroutinezHandler(w http.ResponseWriter, _ *http.Request) {
	stack := debug.Stack()
	if _, err := w.Write(stack); err != nil {
		log.WithError(err).Error("Could not write goroutinez stack")
	}
	if err := pprof.Lookup("goroutine").WriteTo(w, 2); err != nil {
		log.WithError(err).Error("Could not write goroutine profile")
	}
}

// Start the prometheus service.
func (s *Service) Start() {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		log.WithError(err).Errorf("Could not listen to host:port %s", s.server.Addr)
		s.setFailStatus(err)
		return
	}
	s.lock.Lock()
	s.listenAddr = ln.Addr()
	s.lock.Unlock()
	log.WithField("endpoint", ln.Addr().String()).Info("Starting service")
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server stopped")
			s.setFailStatus(err)
		}
	}()
}

// Stop the service gracefully.
func (s *Service) Stop() error {
	log.Info("Stopping service")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Status checks for any service failure conditions.
func (s *Service) Status() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.failStatus
}

// Addr is the address the server listens on once started.
func (s *Service) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.listenAddr
}

func (s *Service) setFailStatus(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.failStatus = err
}
