package httpclient

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"mime/multipart"
	"net/textproto"
)

const multipartFieldName = "file"

// MultipartBody renders a single-part form-data body holding data as the
// "file" field:
//
//	--B\r\n
//	Content-Disposition: form-data; name="file"; filename="<filename>"\r\n
//	Content-Type: <filetype>\r\n
//	\r\n
//	<data>\r\n
//	--B--\r\n
func MultipartBody(data []byte, filename, filetype, boundary string) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(boundary); err != nil {
		return nil, err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+multipartFieldName+`"; filename="`+escapeQuotes(filename)+`"`)
	header.Set("Content-Type", filetype)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MultipartContentType is the Content-Type header value for a body built
// with boundary.
func MultipartContentType(boundary string) string {
	return "multipart/form-data; boundary=" + boundary
}

// RandomBoundary returns a fresh boundary token.
func RandomBoundary() string {
	return fmt.Sprintf("slackweb.boundary.%d%d", rand.Uint32(), rand.Uint32())
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
