// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-request-timeout server request timeout (e.g., "30s")
//	-redis-address redis address for the forgot-password limiter
//	-server-url backend base URL used by the client
//	-client-timeout client request timeout (e.g., "15s")
//	-keystore client keystore driver: file, sqlite or memory
//	-keystore-path client keystore location
//	-revalidate confirm the stored session with the backend on start
//	-google-client-id / -apple-client-id OAuth audiences
//	-health-interval health probe interval
//	-log-level / -log-file logging
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		redisAddress   string
		serverURL      string
		clientTimeout  time.Duration
		keystore       string
		keystorePath   string
		revalidate     bool
		googleClientID string
		appleClientID  string
		healthInterval time.Duration
		logLevel       string
		logFile        string
	)

	fs := flag.NewFlagSet("aimemo", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&serverURL, "server-url", "", "Backend base URL")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.StringVar(&keystore, "keystore", "", "Keystore driver: file, sqlite or memory")
	fs.StringVar(&keystorePath, "keystore-path", "", "Keystore location")
	fs.BoolVar(&revalidate, "revalidate", false, "Confirm the stored session with the backend on start")
	fs.StringVar(&googleClientID, "google-client-id", "", "Google OAuth client ID")
	fs.StringVar(&appleClientID, "apple-client-id", "", "Apple OAuth client ID")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Health probe interval (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Redis:    Redis{Address: redisAddress},
			Keystore: Keystore{Driver: keystore, Path: keystorePath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: clientTimeout,
		},
		OAuth: OAuth{
			GoogleClientID: googleClientID,
			AppleClientID:  appleClientID,
		},
		Session:      Session{Revalidate: revalidate},
		Workers:      Workers{HealthInterval: healthInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string if neither Host nor Port are set.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
