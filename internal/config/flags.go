// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (postgres, sqlite, memory)
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-query-timeout existence check timeout (e.g., "2s")
//	-adapter-address uniqueness service address for the client
//	-adapter-timeout client request timeout
//	-table, -column, -value one-shot check for the client
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var requestTimeout, queryTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var table, column, value string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver: postgres, sqlite or memory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&queryTimeout, "query-timeout", 0, "Existence check timeout (e.g., 2s)")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Uniqueness service address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.StringVar(&table, "table", "", "Table to check")
	fs.StringVar(&column, "column", "", "Column to check")
	fs.StringVar(&value, "value", "", "Value to check")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			QueryTimeout: queryTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Check: Check{
			Table:  table,
			Column: column,
			Value:  value,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "unique-keeper"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
