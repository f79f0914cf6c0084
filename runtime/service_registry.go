// Package runtime holds the service registry every node component is started from.
package runtime

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "registry")

// Service is a component with a lifecycle owned by the registry.
type Service interface {
	// Start spawns any goroutines required by the service. It must not block.
	Start()
	// Stop terminates all goroutines belonging to the service,
	// blocking until they are all terminated.
	Stop() error
	// Status returns error if the service is not considered healthy.
	Status() error
}

// ServiceRegistry keeps one instance per service type so that services depending on each
// other share the same references.
type ServiceRegistry struct {
	lock         sync.RWMutex
	services     map[reflect.Type]Service
	serviceTypes []reflect.Type // registration order
}

// NewServiceRegistry returns an empty registry.
func NewServiceRegistry() *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
	}
}

// StartAll starts each service in order of registration.
func (s *ServiceRegistry) StartAll() {
	s.lock.RLock()
	defer s.lock.RUnlock()
	log.Debugf("Starting %d services: %v", len(s.serviceTypes), s.serviceTypes)
	for _, kind := range s.serviceTypes {
		log.WithField("service", kind.String()).Debug("Starting service")
		go s.services[kind].Start()
	}
}

// StopAll stops every service in reverse order of registration and returns the
// first failure. Every service is stopped regardless.
func (s *ServiceRegistry) StopAll() error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	var firstErr error
	for i := len(s.serviceTypes) - 1; i >= 0; i-- {
		kind := s.serviceTypes[i]
		if err := s.services[kind].Stop(); err != nil {
			log.WithError(err).WithField("service", kind.String()).Error("Could not stop service")
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "could not stop %v", kind)
			}
		}
	}
	return firstErr
}

// Statuses returns the Status of every registered service keyed by its type.
func (s *ServiceRegistry) Statuses() map[reflect.Type]error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	m := make(map[reflect.Type]error, len(s.serviceTypes))
	for _, kind := range s.serviceTypes {
		m[kind] = s.services[kind].Status()
	}
	return m
}

// RegisterService adds service to the registry. Only one service per type is allowed.
func (s *ServiceRegistry) RegisterService(service Service) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		return errors.Errorf("service already exists: %v", kind)
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
	return nil
}

// FetchService takes in a struct pointer and sets the value of that pointer
// to a service currently stored in the service registry. This ensures the input argument is
// set to the right pointer that refers to the originally registered service.
func (s *ServiceRegistry) FetchService(service any) error {
	if reflect.TypeOf(service).Kind() != reflect.Ptr {
		return errors.Errorf("input must be of pointer type, received value type instead: %T", service)
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	element := reflect.ValueOf(service).Elem()
	if running, ok := s.services[element.Type()]; ok {
		element.Set(reflect.ValueOf(running))
		return nil
	}
	return errors.Errorf("unknown service: %T", service)
}
