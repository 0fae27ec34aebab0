package store

import (
	"context"
	"errors"
)

// Collection names used by the portal. The store itself is schemaless; these
// exist so feature repositories agree on spelling.
const (
	CollectionEmployees      = "employees"
	CollectionLeaveRequests  = "leaveRequests"
	CollectionProfileChanges = "profileChangeRequests"
	CollectionOnboarding     = "onboarding"
	CollectionPaystubs       = "paystubs"
)

var (
	// ErrNotFound is returned when the referenced record id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a Create collides with an existing id.
	ErrConflict = errors.New("record id already exists")
	// ErrUnavailable is returned when the backing store fails at the
	// transport level or does not respond within the operation bound.
	ErrUnavailable = errors.New("record store unavailable")
)

// Filter selects records whose top-level fields equal the given values.
type Filter map[string]string

// Client is a generic accessor over a collection-oriented record store.
// Records are JSON documents keyed by an opaque string id held in their
// "id" field. Patch is a shallow merge: top-level fields from partial
// overwrite the stored document, nested objects are replaced wholesale.
type Client interface {
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	List(ctx context.Context, collection string, filter Filter) ([]map[string]any, error)
	Create(ctx context.Context, collection, id string, doc map[string]any) error
	Patch(ctx context.Context, collection, id string, partial map[string]any) (map[string]any, error)
	Delete(ctx context.Context, collection, id string) error
}
