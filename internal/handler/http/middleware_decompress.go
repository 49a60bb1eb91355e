// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-unique-keeper/internal/app"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently inflates gzip-encoded request bodies.
// Response compression is left to chi's middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipReaderPool.Get().(*gzip.Reader)
		if err := gz.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gz)
			http.Error(w, app.MsgInvalidGZip, http.StatusBadRequest)
			return
		}

		r.Body = &pooledGZipBody{Reader: gz, src: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type pooledGZipBody struct {
	*gzip.Reader
	src    io.ReadCloser
	closed bool
}

func (b *pooledGZipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	if srcErr := b.src.Close(); err == nil {
		err = srcErr
	}
	return err
}
