// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the uniqueness service address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the service address and timeout.
	Adapter ClientAdapter
	// Check is the check to perform.
	Check Check
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Server-only settings are not validated.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Check: cfg.Check,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
