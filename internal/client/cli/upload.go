package cli

import (
	"context"
	"path/filepath"

	"github.com/msb-finance/loancli/internal/client/api"
	"github.com/msb-finance/loancli/internal/common"
	"github.com/msb-finance/loancli/internal/filex"
)

// UploadDocuments collects file paths, uploads their contents, and on
// success reloads the document list. Submitting with no files selected
// is a silent no-op.
func (a *App) UploadDocuments(ctx context.Context) error {
	if !a.beginSubmit(formUpload) {
		return nil
	}
	state := formIdle
	defer func() { a.endSubmit(formUpload, state) }()

	a.view.SetMessage(msgDocError, "")
	a.view.SetMessage(msgDocSuccess, "")

	if !a.isLoggedIn() {
		a.view.SetMessage(msgDocError, "You must be logged in to upload files.")
		return common.ErrAuthRequired
	}

	paths, err := getLines(a.reader, "File paths, one per line (empty line to finish)", a.out)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return nil
	}

	files := make([]api.Upload, 0, len(paths))
	for _, p := range paths {
		content, err := filex.ReadLimited(p, filex.MaxUploadSize)
		if err != nil {
			a.view.SetMessage(msgDocError, err.Error())
			return err
		}
		files = append(files, api.Upload{Name: filepath.Base(p), Content: content})
	}

	if _, err := a.documents.Upload(ctx, files); err != nil {
		a.view.SetMessage(msgDocError, errorMessage(err, "Upload failed"))
		return err
	}

	state = formDone
	a.view.SetMessage(msgDocSuccess, "Files uploaded successfully")

	a.sleep(ctx, a.config.DocReloadDelay)
	if docs, err := a.documents.List(ctx); err != nil {
		a.log.Error(ctx, "error loading documents", "error", err)
	} else {
		a.renderDocuments(docs)
	}
	return nil
}
