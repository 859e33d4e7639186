package services

import (
	"context"

	"github.com/msb-finance/loancli/internal/client/api"
	"github.com/msb-finance/loancli/internal/client/models"
	"github.com/msb-finance/loancli/internal/common"
)

// DocumentService uploads supporting documents and lists the current
// user's documents. List only ever returns documents owned by the
// session's user; records for other owners are dropped client-side.
type DocumentService interface {
	Upload(ctx context.Context, files []api.Upload) (bool, error)
	List(ctx context.Context) ([]models.Document, error)
}

type documentService struct {
	client  api.Client
	store   SessionStore
	retries uint64
}

// NewDocumentService constructs a DocumentService. List retries
// transient transport failures up to retries times.
func NewDocumentService(client api.Client, store SessionStore, retries uint64) DocumentService {
	return &documentService{client: client, store: store, retries: retries}
}

// Upload sends the files to the documents endpoint. An empty file set
// is a no-op.
func (s *documentService) Upload(ctx context.Context, files []api.Upload) (bool, error) {
	if len(files) == 0 {
		return false, nil
	}
	return s.client.UploadDocuments(ctx, files)
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	user, err := s.store.User(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrAuthRequired
	}

	var docs []models.Document
	err = withRetry(ctx, s.retries, func(ctx context.Context) error {
		got, err := s.client.ListDocuments(ctx)
		if err != nil {
			return err
		}
		docs = got
		return nil
	})
	if err != nil {
		return nil, err
	}

	owned := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if d.OwnedBy(user.ID) {
			owned = append(owned, d)
		}
	}
	return owned, nil
}
