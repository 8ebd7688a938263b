package docstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"golang.org/x/xerrors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Document is a stored document with the store-assigned id merged back on.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Service wraps the generic document operations every view goes through.
type Service struct {
	Client *firestore.Client
}

// NewService creates a new document store gateway.
func NewService(client *firestore.Client) *Service {
	return &Service{
		Client: client,
	}
}

// ListCollection fetches every document in the named collection. No
// filtering or ordering happens here; callers sort after retrieval.
func (s *Service) ListCollection(ctx context.Context, name string) ([]Document, error) {
	iter := s.Client.Collection(name).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("list collection %s: %w", name, err)
		}
		docs = append(docs, Document{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return docs, nil
}

// GetDocument returns nil without an error when the id does not exist; a
// missing document is a valid outcome, not a failure.
func (s *Service) GetDocument(ctx context.Context, name, id string) (*Document, error) {
	doc, err := s.Client.Collection(name).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, xerrors.Errorf("get document %s/%s: %w", name, id, err)
	}
	return &Document{ID: doc.Ref.ID, Data: doc.Data()}, nil
}

// AddDocument writes a new document and returns the store-assigned id. The
// id is never part of the payload.
func (s *Service) AddDocument(ctx context.Context, name string, payload map[string]interface{}) (string, error) {
	ref, _, err := s.Client.Collection(name).Add(ctx, Sanitize(payload))
	if err != nil {
		return "", xerrors.Errorf("add document to %s: %w", name, err)
	}
	return ref.ID, nil
}

// SetDocument writes a document under a caller-chosen id. Admin records are
// keyed by the identity provider's uid rather than a store-assigned one.
func (s *Service) SetDocument(ctx context.Context, name, id string, payload map[string]interface{}) error {
	_, err := s.Client.Collection(name).Doc(id).Set(ctx, Sanitize(payload))
	if err != nil {
		return xerrors.Errorf("set document %s/%s: %w", name, id, err)
	}
	return nil
}

// UpdateDocument overwrites the given fields on an existing document. Nested
// values are sanitized key by key before the write.
func (s *Service) UpdateDocument(ctx context.Context, name, id string, payload map[string]interface{}) error {
	clean := Sanitize(payload)
	updates := make([]firestore.Update, 0, len(clean))
	for field, value := range clean {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}

	_, err := s.Client.Collection(name).Doc(id).Update(ctx, updates)
	if err != nil {
		return xerrors.Errorf("update document %s/%s: %w", name, id, err)
	}
	return nil
}

// DeleteDocument removes the document unconditionally; deleting a missing id
// is not an error at the store level.
func (s *Service) DeleteDocument(ctx context.Context, name, id string) error {
	_, err := s.Client.Collection(name).Doc(id).Delete(ctx)
	if err != nil {
		return xerrors.Errorf("delete document %s/%s: %w", name, id, err)
	}
	return nil
}
