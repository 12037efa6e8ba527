package vpc

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// EnsureOperation encapsulates find-or-create logic for a resource that is
// identified by an id string.
//
// Usage example:
//
//	id, err := (&EnsureOperation[SecurityGroup]{
//	    Name:         name,
//	    ResourceType: "security group",
//	    Find:         func(ctx context.Context) ([]SecurityGroup, error) { ... },
//	    ID:           func(sg SecurityGroup) string { return sg.ID },
//	    Create:       func(ctx context.Context) (string, error) { ... },
//	}).Execute(ctx, logger)
type EnsureOperation[T any] struct {
	Name         string
	ResourceType string

	// Find lists existing resources matching the name. The first one wins.
	Find func(ctx context.Context) ([]T, error)

	// ID extracts the identifier of a found resource.
	ID func(resource T) string

	// Create creates the resource and returns its id once it is usable.
	Create func(ctx context.Context) (string, error)
}

// Execute returns the id of the first existing resource or creates a new one.
func (op *EnsureOperation[T]) Execute(ctx context.Context, logger logr.Logger) (string, error) {
	found, err := op.Find(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to find %s %s: %w", op.ResourceType, op.Name, err)
	}

	if len(found) > 0 {
		id := op.ID(found[0])
		logger.V(1).Info("reusing existing resource", "type", op.ResourceType, "name", op.Name, "id", id)
		return id, nil
	}

	logger.V(1).Info("creating resource", "type", op.ResourceType, "name", op.Name)
	id, err := op.Create(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create %s %s: %w", op.ResourceType, op.Name, err)
	}
	return id, nil
}
