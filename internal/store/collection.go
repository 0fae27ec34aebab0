package store

import "context"

// Collection is a typed view over one named collection of a Client.
type Collection[T any] struct {
	client Client
	name   string
}

func NewCollection[T any](client Client, name string) *Collection[T] {
	return &Collection[T]{client: client, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := c.client.Get(ctx, c.name, id)
	if err != nil {
		return nil, err
	}
	return Decode[T](doc)
}

func (c *Collection[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	docs, err := c.client.List(ctx, c.name, filter)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := Decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (c *Collection[T]) Create(ctx context.Context, id string, rec T) error {
	doc, err := Encode(rec)
	if err != nil {
		return err
	}
	return c.client.Create(ctx, c.name, id, doc)
}

func (c *Collection[T]) Patch(ctx context.Context, id string, partial map[string]any) (*T, error) {
	doc, err := c.client.Patch(ctx, c.name, id, partial)
	if err != nil {
		return nil, err
	}
	return Decode[T](doc)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, c.name, id)
}
