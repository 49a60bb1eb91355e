// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command check asks a running uniqueness service whether a value is still
// free in a table column.
//
//	check -a localhost:8080 -table users -column login -value john
//
// It prints the verdict to stdout and exits with 0 when the value is unique,
// 1 when it is taken and 2 when the check could not be performed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-unique-keeper/internal/adapter"
	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
	"github.com/MKhiriev/go-unique-keeper/internal/utils"
	"github.com/MKhiriev/go-unique-keeper/internal/validators"
	"github.com/MKhiriev/go-unique-keeper/models"
)

const (
	exitUnique = 0
	exitTaken  = 1
	exitFailed = 2
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stderr)

	log := logger.NewConsoleLogger("go-unique-check", os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		os.Exit(exitFailed)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server adapter")
		os.Exit(exitFailed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	traceID := utils.NewTraceID()
	ctx = log.WithTraceID(traceID).WithContext(utils.ContextWithTraceID(ctx, traceID))

	code := run(ctx, cfg.Check, serverAdapter, os.Stdout)
	stop()
	os.Exit(code)
}

// run checks one value through a UniqueColumnValidator whose existence
// checks are answered by the remote service. The service version is fetched
// first so an unreachable service fails before any check.
func run(ctx context.Context, check config.Check, service adapter.ServerAdapter, stdout io.Writer) int {
	log := logger.FromContext(ctx)

	if service == nil {
		log.Error().Str("func", "run").Msg("no server adapter")
		return exitFailed
	}

	version, err := service.Version(ctx)
	if err != nil {
		log.Err(err).Str("func", "run").Msg("uniqueness service is unavailable")
		return exitFailed
	}
	log.Info().Str("service_version", version).Msg("connected to uniqueness service")

	rule, err := validators.NewUniqueColumnValidator(service)
	if err != nil {
		log.Err(err).Str("func", "run").Msg("error creating uniqueness rule")
		return exitFailed
	}

	args := models.NewValidationArguments(models.Constraint{Table: check.Table, Column: check.Column})

	unique, err := rule.Validate(ctx, check.Value, args)
	if err != nil {
		log.Err(err).Str("func", "run").Msg("uniqueness check failed")
		return exitFailed
	}

	if unique {
		fmt.Fprintln(stdout, "unique")
		return exitUnique
	}

	message, err := rule.DefaultMessage(args)
	if err != nil {
		log.Err(err).Str("func", "run").Msg("error rendering message")
		return exitFailed
	}
	fmt.Fprintln(stdout, message)

	return exitTaken
}
