// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
	"github.com/MKhiriev/go-unique-keeper/internal/utils"
	"github.com/MKhiriev/go-unique-keeper/models"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// A scheme-less address such as "localhost:8080" is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request prepares a request bound to ctx that forwards the trace ID found
// in ctx, if any.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// Exists implements [ServerAdapter] through POST /api/unique/exists.
// Context errors are returned unwrapped so callers can tell an abort from a
// failed check.
func (h *httpServerAdapter) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	log := logger.FromContext(ctx)

	var response models.ExistenceResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ExistenceRequest{Table: table, Column: column, Value: value}).
		SetResult(&response).
		Post("/api/unique/exists")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		log.Err(err).Str("func", "*httpServerAdapter.Exists").Msg("exists request failed")
		return false, fmt.Errorf("exists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return response.Exists, nil
}

// Version implements [ServerAdapter] through GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
