package bamboohr

import (
	"bytes"
	"net/http"
	"net/url"
)

// Mode selects the content conventions of a call.
type Mode int

const (
	JSONMode Mode = iota
	XMLMode
	// BinaryMode sends no default headers and leaves the response untouched.
	BinaryMode
)

const (
	headerAccept      = "Accept"
	headerEncoding    = "Encoding"
	headerContentType = "Content-Type"
	headerLocation    = "Location"

	contentTypeJSON = "application/json"
	contentTypeXML  = "text/xml"

	formatParam = "format"
	formatJSON  = "JSON"
)

// Request is an outbound call that is not yet bound to a host or credentials.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	Mode   Mode

	// Preprocess rewrites the raw response body before it is decoded.
	Preprocess func([]byte) []byte
}

func newRequest(path string, method string, mode Mode) *Request {
	r := &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
		Mode:   mode,
	}

	switch mode {
	case JSONMode:
		r.Header.Set(headerAccept, contentTypeJSON)
		r.Header.Set(headerEncoding, "utf-8")
		r.Header.Set(headerContentType, contentTypeJSON)
		r.Query.Set(formatParam, formatJSON)
		r.Preprocess = normalizeBody
	case XMLMode:
		r.Header.Set(headerContentType, contentTypeXML)
		r.Preprocess = normalizeBody
	}

	return r
}

func (r *Request) withQuery(key string, value string) *Request {
	r.Query.Set(key, value)
	return r
}

func (r *Request) withBody(contentType string, body []byte) *Request {
	r.Header.Set(headerContentType, contentType)
	r.Body = body
	return r
}

var (
	zeroDate = []byte(`":"` + zeroDateText + `"`)
	nullDate = []byte(`":null`)
)

// normalizeBody works around the remote encoder: zero dates ("0000-00-00")
// are not valid dates, and some records carry characters that are not legal
// in either JSON or XML documents.
func normalizeBody(body []byte) []byte {
	return stripControlChars(bytes.ReplaceAll(body, zeroDate, nullDate))
}

func stripControlChars(body []byte) []byte {
	return bytes.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r >= 0x20 && r <= 0xD7FF:
			return r
		case r >= 0xE000 && r <= 0xFFFD:
			return r
		case r >= 0x10000 && r <= 0x10FFFF:
			return r
		}
		return -1
	}, body)
}
