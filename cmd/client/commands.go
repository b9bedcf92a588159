// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/olekukonko/tablewriter"
)

var errUnknownCommand = errors.New("unknown command")

type commands struct {
	adapter adapter.ServerAdapter
	tags    *adapter.SecretTagClient
	in      io.Reader
	out     io.Writer

	// readPassword reads the phrase without echo when stdin is a terminal.
	readPassword func() ([]byte, error)
}

func (c *commands) run(ctx context.Context, name string, args []string) error {
	switch name {
	case "register":
		return c.register(ctx, args)
	case "unlock":
		return c.unlock(ctx, args)
	case "list":
		tags, err := c.adapter.ListSecretTags(ctx)
		if err != nil {
			return err
		}
		c.printTable(tags)
		return nil
	case "get":
		tagID, err := parseTagFlag(name, args)
		if err != nil {
			return err
		}
		tag, err := c.adapter.GetSecretTag(ctx, tagID)
		if err != nil {
			return err
		}
		return c.print(tag)
	case "update":
		return c.update(ctx, args)
	case "delete":
		tagID, err := parseTagFlag(name, args)
		if err != nil {
			return err
		}
		return c.adapter.DeleteSecretTag(ctx, tagID)
	case "version":
		version, err := c.adapter.Version(ctx)
		if err != nil {
			return err
		}
		return c.print(version)
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, name)
	}
}

func (c *commands) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "secret tag name")
	color := fs.String("color", "", "display color #RRGGBB")
	if err := fs.Parse(args); err != nil {
		return err
	}

	phrase, err := c.readPhrase()
	if err != nil {
		return err
	}
	defer crypto.Zero(phrase)

	tag, err := c.tags.Register(ctx, *name, *color, phrase)
	if err != nil {
		return err
	}
	return c.print(tag)
}

func (c *commands) unlock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("unlock", flag.ContinueOnError)
	rawTag := fs.String("tag", "", "secret tag id (32 hex characters)")
	withKey := fs.Bool("key", false, "exchange the grant for the vault data key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tagID, err := models.ParseTagID(*rawTag)
	if err != nil {
		return err
	}

	phrase, err := c.readPhrase()
	if err != nil {
		return err
	}
	defer crypto.Zero(phrase)

	if !*withKey {
		grant, err := c.tags.Unlock(ctx, tagID, phrase)
		if err != nil {
			return err
		}
		return c.print(grant)
	}

	key, err := c.tags.UnlockDataKey(ctx, tagID, phrase)
	if err != nil {
		return err
	}
	defer crypto.Zero(key.DataKey)

	_, err = fmt.Fprintln(c.out, base64.StdEncoding.EncodeToString(key.DataKey))
	return err
}

func (c *commands) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	rawTag := fs.String("tag", "", "secret tag id (32 hex characters)")
	name := fs.String("name", "", "new name")
	color := fs.String("color", "", "new display color #RRGGBB")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tagID, err := models.ParseTagID(*rawTag)
	if err != nil {
		return err
	}

	var update models.SecretTagUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.TagName = name
		case "color":
			update.Color = color
		}
	})

	tag, err := c.adapter.UpdateSecretTag(ctx, tagID, update)
	if err != nil {
		return err
	}
	return c.print(tag)
}

// readPhrase reads one line from the input. The trailing newline is not part
// of the phrase.
func (c *commands) readPhrase() ([]byte, error) {
	if c.readPassword != nil {
		phrase, err := c.readPassword()
		if err != nil {
			return nil, fmt.Errorf("error reading phrase: %w", err)
		}
		if len(phrase) == 0 {
			return nil, errors.New("empty phrase")
		}
		return phrase, nil
	}

	line, err := bufio.NewReader(c.in).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error reading phrase: %w", err)
	}
	phrase := bytes.TrimRight(line, "\r\n")
	if len(phrase) == 0 {
		return nil, errors.New("empty phrase")
	}
	return phrase, nil
}

func (c *commands) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *commands) printTable(tags []models.SecretTagSummary) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Tag ID", "Name", "Color", "Created"})
	for _, tag := range tags {
		table.Append([]string{tag.TagID.String(), tag.TagName, tag.Color, tag.CreatedAt.Format("2006-01-02 15:04")})
	}
	table.Render()
}

func parseTagFlag(name string, args []string) (models.TagID, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	rawTag := fs.String("tag", "", "secret tag id (32 hex characters)")
	if err := fs.Parse(args); err != nil {
		return models.TagID{}, err
	}
	return models.ParseTagID(*rawTag)
}
