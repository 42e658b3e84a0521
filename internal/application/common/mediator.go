package common

import (
	"context"
	"fmt"
	"reflect"
)

// Request is a session command or query, such as UpgradeLivesCommand or
// GetSessionQuery
type Request interface{}

// Response is the result of handling a request
type Response interface{}

// RequestHandler handles one request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// Mediator routes commands and queries to their handlers so the CLI
// never touches handlers directly
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
}

type mediator struct {
	handlers map[reflect.Type]RequestHandler
}

// NewMediator creates an empty mediator; handlers are registered at
// startup via RegisterHandler
func NewMediator() Mediator {
	return &mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

// Register binds a handler to a request type; each type gets exactly one
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}

	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}

	m.handlers[requestType] = handler
	return nil
}

// Send looks up the handler for the request's concrete type and invokes it
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]

	if !ok {
		return nil, fmt.Errorf("no handler registered for type %s", requestType)
	}

	return handler.Handle(ctx, request)
}

// RegisterHandler registers a handler keyed by the request type parameter,
// sparing callers the reflect.TypeOf boilerplate
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	requestType := reflect.TypeOf(zero)
	return m.Register(requestType, handler)
}
