// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a cloud sync API address in format [host]:[port]
//	-d local database path (SQLite DSN)
//	-t cloud auth token
//	-c/-config json file path with configs
//	-request-timeout cloud request timeout (e.g., "30s", "1m")
//	-sync-interval periodic full sync interval (e.g., "5m")
//	-debounce-window quiet period before a debounced push (e.g., "5s")
func ParseFlags() *StructuredConfig {
	var cloudAddress NetAddress
	var databaseDSN string
	var authToken string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var debounceWindow time.Duration

	flag.Var(&cloudAddress, "a", "Cloud sync API address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&authToken, "t", "", "Cloud auth token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Cloud request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic full sync interval (e.g., 5m)")
	flag.DurationVar(&debounceWindow, "debounce-window", 0, "Debounce quiet period (e.g., 5s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AuthToken: authToken,
		},
		Adapter: Adapter{
			CloudAddress:   cloudAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			DebounceWindow: debounceWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither host nor port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
