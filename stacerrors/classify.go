package stacerrors

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"io/fs"
	"net/url"
	"syscall"
)

// Kind is the stable error category attached to a validation message.
// The values mirror the report vocabulary consumers already depend on.
type Kind string

const (
	KindValueError        Kind = "ValueError"
	KindURLError          Kind = "URLError"
	KindJSONDecodeError   Kind = "JSONDecodeError"
	KindTypeError         Kind = "TypeError"
	KindFileNotFoundError Kind = "FileNotFoundError"
	KindConnectionError   Kind = "ConnectionError"
	KindSSLError          Kind = "SSLError"
	KindOSError           Kind = "OSError"
	KindValidationError   Kind = "ValidationError"
	KindKeyError          Kind = "KeyError"
	KindHTTPError         Kind = "HTTPError"
	// KindException is the catch-all for anything not matched above.
	// It must remain the last match in Classify.
	KindException Kind = "Exception"
)

// Classify maps an error chain to its report kind and message. Specific
// kinds are checked before general ones and the whole chain is inspected,
// so wrapping order does not matter to callers.
func Classify(err error) (Kind, string) {
	var conf *ConformanceError
	if errors.As(err, &conf) {
		return KindValidationError, conf.Error()
	}
	if errors.Is(err, ErrUnknownDocumentType) {
		return KindValueError, err.Error()
	}
	var syntaxErr *json.SyntaxError
	var decodeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &decodeErr) {
		return KindJSONDecodeError, err.Error()
	}
	var mismatch *TypeMismatchError
	if errors.As(err, &mismatch) {
		return KindTypeError, err.Error()
	}
	if errors.Is(err, fs.ErrNotExist) {
		return KindFileNotFoundError, err.Error()
	}
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return KindKeyError, missing.Error()
	}
	var status *HTTPStatusError
	if errors.As(err, &status) {
		return KindHTTPError, err.Error()
	}
	if isTLSError(err) {
		return KindSSLError, err.Error()
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return KindConnectionError, err.Error()
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return KindURLError, err.Error()
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return KindOSError, err.Error()
	}
	return KindException, err.Error()
}

// isTLSError reports whether the chain contains a TLS or certificate
// verification failure. Checked before the connection and URL kinds so
// handshake failures wrapped in *url.Error classify as SSLError.
func isTLSError(err error) bool {
	var (
		record    tls.RecordHeaderError
		verify    *tls.CertificateVerificationError
		unknownCA x509.UnknownAuthorityError
		hostname  x509.HostnameError
		invalid   x509.CertificateInvalidError
	)
	return errors.As(err, &record) ||
		errors.As(err, &verify) ||
		errors.As(err, &unknownCA) ||
		errors.As(err, &hostname) ||
		errors.As(err, &invalid)
}
