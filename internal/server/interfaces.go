// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the service process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or the
	// listener fails.
	RunServer()

	// Shutdown drains in-flight requests and stops the server.
	Shutdown()
}
