package webapi

import (
	"context"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/model"
)

// DefaultFiletype lets Slack detect the file type.
const DefaultFiletype = "auto"

// UploadOptions describe a file upload. Filename is required; Filetype
// defaults to DefaultFiletype.
type UploadOptions struct {
	Filename       string
	Filetype       string
	Title          string
	InitialComment string
	Channels       []string
}

// UploadFile uploads data and shares it to the given channels. An empty
// Filename fails with client_network_error before anything is sent.
func (w *WebAPI) UploadFile(ctx context.Context, data []byte, opts UploadOptions) (*model.File, error) {
	filetype := opts.Filetype
	if filetype == "" {
		filetype = DefaultFiletype
	}
	env, err := w.client.Upload(ctx, data, httpclient.Params{
		paramToken:        httpclient.String(w.token),
		"filename":        httpclient.NonEmpty(opts.Filename),
		"filetype":        httpclient.String(filetype),
		"title":           httpclient.NonEmpty(opts.Title),
		"initial_comment": httpclient.NonEmpty(opts.InitialComment),
		"channels":        joined(opts.Channels),
	})
	if err != nil {
		return nil, err
	}
	return decodeFile(env)
}

// FileInfo returns a file with the requested page of its comments merged
// into File.Comments. Count defaults to 100.
func (w *WebAPI) FileInfo(ctx context.Context, file string, page PageOptions) (*model.File, error) {
	env, err := w.call(ctx, endpoint.FilesInfo, httpclient.Params{
		"file":  httpclient.String(file),
		"count": positive(page.Count, 100),
		"page":  positive(page.Page, 0),
	})
	if err != nil {
		return nil, err
	}
	f, err := decodeFile(env)
	if err != nil {
		return nil, err
	}
	if _, ok := env["comments"]; ok {
		comments, err := decode[[]model.Comment](env, "comments")
		if err != nil {
			return nil, err
		}
		f.MergeComments(comments)
	}
	return f, nil
}

// DeleteFile deletes a file.
func (w *WebAPI) DeleteFile(ctx context.Context, file string) error {
	return w.exec(ctx, endpoint.FilesDelete, httpclient.Params{"file": httpclient.String(file)})
}

// AddFileComment comments on a file.
func (w *WebAPI) AddFileComment(ctx context.Context, file, comment string) (*model.Comment, error) {
	return w.comment(ctx, endpoint.FilesCommentsAdd, httpclient.Params{
		"file":    httpclient.String(file),
		"comment": httpclient.String(comment),
	})
}

// EditFileComment replaces the text of a file comment.
func (w *WebAPI) EditFileComment(ctx context.Context, file, id, comment string) (*model.Comment, error) {
	return w.comment(ctx, endpoint.FilesCommentsEdit, httpclient.Params{
		"file":    httpclient.String(file),
		"id":      httpclient.String(id),
		"comment": httpclient.String(comment),
	})
}

// DeleteFileComment deletes a file comment.
func (w *WebAPI) DeleteFileComment(ctx context.Context, file, id string) error {
	return w.exec(ctx, endpoint.FilesCommentsDelete, httpclient.Params{
		"file": httpclient.String(file),
		"id":   httpclient.String(id),
	})
}

func (w *WebAPI) comment(ctx context.Context, ep endpoint.Endpoint, params httpclient.Params) (*model.Comment, error) {
	env, err := w.call(ctx, ep, params)
	if err != nil {
		return nil, err
	}
	c, err := decode[model.Comment](env, "comment")
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func decodeFile(env httpclient.Envelope) (*model.File, error) {
	f, err := decode[model.File](env, "file")
	if err != nil {
		return nil, err
	}
	return &f, nil
}
