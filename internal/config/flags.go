// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key vault token signing key
//	-token-issuer vault token issuer name
//	-vault-token-ttl vault token lifetime (e.g., "5m")
//	-hash-key audit pseudonymisation key
//	-server-id OPAQUE server identity
//	-tag-quota maximum secret tags per user
//	-session-ttl protocol session lifetime (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval expired session sweep interval
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-secret-vault", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var vaultTokenTTL time.Duration
	var hashKey string
	var serverID string
	var tagQuota int
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Vault token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Vault token issuer")
	fs.DurationVar(&vaultTokenTTL, "vault-token-ttl", 0, "Vault token lifetime (e.g., 5m)")
	fs.StringVar(&hashKey, "hash-key", "", "Audit pseudonymisation key")
	fs.StringVar(&serverID, "server-id", "", "OPAQUE server identity")
	fs.IntVar(&tagQuota, "tag-quota", 0, "Maximum secret tags per user")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Protocol session lifetime (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired session sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			VaultTokenTTL: vaultTokenTTL,
			HashKey:       hashKey,
			ServerID:      serverID,
			TagQuota:      tagQuota,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Session: Session{TTL: sessionTTL},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
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
