// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logger.NewClientLogger("secret-vault-client")
	cfg, err := getClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.Config{
		HTTPAddress:    cfg.ServerAddress,
		ServerID:       cfg.ServerID,
		RequestTimeout: cfg.RequestTimeout,
		Retries:        cfg.Retries,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}
	serverAdapter.SetUserID(cfg.UserID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cli := &commands{
		adapter: serverAdapter,
		tags:    adapter.NewSecretTagClient(serverAdapter, cfg.ServerID),
		in:      os.Stdin,
		out:     os.Stdout,
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		cli.readPassword = func() ([]byte, error) {
			fmt.Fprint(os.Stderr, "phrase: ")
			defer fmt.Fprintln(os.Stderr)
			return term.ReadPassword(int(os.Stdin.Fd()))
		}
	}

	if err = cli.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `secret-vault-client %s (%s, %s)

usage: secret-vault-client <command> [flags]

commands:
  register -name NAME [-color #RRGGBB]   create a secret tag, phrase read from stdin
  unlock   -tag TAG_ID [-key]            prove the phrase, print the vault grant or data key
  list                                   list secret tags
  get      -tag TAG_ID                   show one secret tag
  update   -tag TAG_ID [-name] [-color]  rename or recolor a secret tag
  delete   -tag TAG_ID                   delete a secret tag
  version                                print server build info

environment: SECRET_VAULT_SERVER_ADDRESS, SECRET_VAULT_SERVER_ID,
SECRET_VAULT_USER_ID, SECRET_VAULT_REQUEST_TIMEOUT, SECRET_VAULT_RETRIES
`, orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
