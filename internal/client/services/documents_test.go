package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msb-finance/loancli/internal/client/api"
	"github.com/msb-finance/loancli/internal/client/models"
	"github.com/msb-finance/loancli/internal/common"
)

func newDocsFixture(t *testing.T, client *fakeClient) (SessionStore, DocumentService) {
	t.Helper()
	store := NewSessionStore(setupDB(t))
	return store, NewDocumentService(client, store, 0)
}

func TestDocs_List_FiltersByOwner(t *testing.T) {
	now := time.Now().UTC()
	client := &fakeClient{listDocsResp: []models.Document{
		{Filename: "mine-1.pdf", UploadedAt: now, User: models.DocumentOwner{ID: "u1"}},
		{Filename: "theirs.pdf", UploadedAt: now, User: models.DocumentOwner{ID: "u2"}},
		{Filename: "mine-2.pdf", UploadedAt: now, User: models.DocumentOwner{ID: "u1"}},
	}}
	store, svc := newDocsFixture(t, client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{Token: "t1", User: testUser(), Role: models.RoleUser}))

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "mine-1.pdf", docs[0].Filename)
	assert.Equal(t, "mine-2.pdf", docs[1].Filename)
}

func TestDocs_List_NoSession(t *testing.T) {
	client := &fakeClient{}
	_, svc := newDocsFixture(t, client)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, common.ErrAuthRequired)
	assert.Zero(t, client.listDocsCalls)
}

func TestDocs_List_RetriesTransportFailures(t *testing.T) {
	client := &fakeClient{
		listDocsErrs: []error{&api.RequestError{Body: "refused"}},
		listDocsResp: []models.Document{{Filename: "a.pdf", User: models.DocumentOwner{ID: "u1"}}},
	}
	store := NewSessionStore(setupDB(t))
	svc := NewDocumentService(client, store, 2)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{Token: "t1", User: testUser(), Role: models.RoleUser}))

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, 2, client.listDocsCalls)
}

func TestDocs_Upload_EmptySetIsNoOp(t *testing.T) {
	client := &fakeClient{}
	_, svc := newDocsFixture(t, client)

	ok, err := svc.Upload(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, client.uploadFiles)
}

func TestDocs_Upload_PassesFilesThrough(t *testing.T) {
	client := &fakeClient{uploadResp: true}
	_, svc := newDocsFixture(t, client)

	files := []api.Upload{{Name: "id.png", Content: []byte("x")}}
	ok, err := svc.Upload(context.Background(), files)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, files, client.uploadFiles)
}
