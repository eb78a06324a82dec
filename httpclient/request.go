package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/kbukum/slackweb/endpoint"
	"github.com/kbukum/slackweb/errors"
)

const (
	contentTypeJSON = "application/json"

	paramFilename = "filename"
	paramFiletype = "filetype"
)

var pathSegment = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Request is a fully built HTTP request. It is consumed by exactly one send.
type Request struct {
	// Method is the HTTP verb.
	Method string
	// URL is the absolute request URL, query included.
	URL string
	// Body is the request payload. Nil for plain API calls.
	Body []byte
	// ContentType is the Content-Type header for Body, empty when Body is nil.
	ContentType string
}

// BuildRequest turns an endpoint and its parameters into a Request against
// baseURL. Failures are reported as client_network_error.
func BuildRequest(baseURL string, ep endpoint.Endpoint, params Params) (*Request, error) {
	u, err := resolveURL(baseURL, ep, params)
	if err != nil {
		return nil, err
	}
	return &Request{Method: ep.Method(), URL: u}, nil
}

// BuildUploadRequest builds the files.upload request carrying data as a
// multipart body. params must hold string "filename" and "filetype" entries.
func BuildUploadRequest(baseURL string, params Params, data []byte, boundary string) (*Request, error) {
	filename, ok := params.LookupString(paramFilename)
	if !ok {
		return nil, errors.ClientNetwork(fmt.Errorf("upload requires a string %q parameter", paramFilename))
	}
	filetype, ok := params.LookupString(paramFiletype)
	if !ok {
		return nil, errors.ClientNetwork(fmt.Errorf("upload requires a string %q parameter", paramFiletype))
	}

	u, err := resolveURL(baseURL, endpoint.FilesUpload, params)
	if err != nil {
		return nil, err
	}

	body, err := MultipartBody(data, filename, filetype, boundary)
	if err != nil {
		return nil, errors.ClientNetwork(fmt.Errorf("build multipart body: %w", err))
	}

	return &Request{
		Method:      endpoint.FilesUpload.Method(),
		URL:         u,
		Body:        body,
		ContentType: MultipartContentType(boundary),
	}, nil
}

// BuildJSONRequest builds a POST of body to rawURL. rawURL is percent-decoded
// once before parsing, so callers may pass the encoded form Slack hands out.
func BuildJSONRequest(rawURL string, body []byte) (*Request, error) {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		return nil, errors.ClientNetwork(fmt.Errorf("decode url: %w", err))
	}
	u, err := url.Parse(decoded)
	if err != nil {
		return nil, errors.ClientNetwork(fmt.Errorf("parse url: %w", err))
	}
	if !isHTTPScheme(u.Scheme) || u.Host == "" {
		return nil, errors.ClientNetwork(fmt.Errorf("url %q is not an absolute http(s) url", decoded))
	}
	return &Request{
		Method:      "POST",
		URL:         u.String(),
		Body:        body,
		ContentType: contentTypeJSON,
	}, nil
}

// resolveURL joins base and the endpoint path and attaches the encoded query.
func resolveURL(baseURL string, ep endpoint.Endpoint, params Params) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.ClientNetwork(fmt.Errorf("parse base url: %w", err))
	}
	if !isHTTPScheme(base.Scheme) || base.Host == "" {
		return "", errors.ClientNetwork(fmt.Errorf("base url %q is not an absolute http(s) url", baseURL))
	}
	if base.RawQuery != "" || base.Fragment != "" {
		return "", errors.ClientNetwork(fmt.Errorf("base url %q must not carry a query or fragment", baseURL))
	}

	path := ep.Path()
	if !pathSegment.MatchString(path) {
		return "", errors.ClientNetwork(fmt.Errorf("invalid endpoint path %q", path))
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteByte('/')
	b.WriteString(path)
	if q := EncodeQuery(params); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}

	full := b.String()
	if _, err := url.Parse(full); err != nil {
		return "", errors.ClientNetwork(fmt.Errorf("parse request url: %w", err))
	}
	return full, nil
}

func isHTTPScheme(s string) bool {
	return strings.EqualFold(s, "http") || strings.EqualFold(s, "https")
}

// bodyReader returns a reader over the request body, or nil.
func (r *Request) bodyReader() io.Reader {
	if r.Body == nil {
		return nil
	}
	return bytes.NewReader(r.Body)
}
