// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"fmt"

	"github.com/bytemare/opaque"
)

// Client is the user side of one OPAQUE flow. A Client holds blinding state
// between its start and finish calls and must not be reused across flows.
type Client struct {
	serverID []byte
	client   *opaque.Client

	registering bool
	loggingIn   bool
}

// NewClient returns a client for a server that identifies itself as serverID.
func NewClient(serverID string) (*Client, error) {
	client, err := Configuration().Client()
	if err != nil {
		return nil, fmt.Errorf("error creating opaque client: %w", err)
	}

	return &Client{serverID: []byte(serverID), client: client}, nil
}

// RegistrationStart blinds the phrase and returns the registration request.
func (c *Client) RegistrationStart(phrase []byte) ([]byte, error) {
	if c.registering || c.loggingIn {
		return nil, ErrClientState
	}
	c.registering = true

	return c.client.RegistrationInit(phrase).Serialize(), nil
}

// RegistrationFinish consumes the server response and returns the record to
// upload together with the client export key.
func (c *Client) RegistrationFinish(response, userIdentifier []byte) (record, exportKey []byte, err error) {
	if !c.registering {
		return nil, nil, ErrClientState
	}
	c.registering = false

	resp, err := c.client.Deserialize.RegistrationResponse(response)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	upload, exportKey := c.client.RegistrationFinalize(resp, opaque.ClientRegistrationFinalizeOptions{
		ClientIdentity: userIdentifier,
		ServerIdentity: c.serverID,
	})

	return upload.Serialize(), exportKey, nil
}

// LoginStart returns the KE1 message for phrase.
func (c *Client) LoginStart(phrase []byte) ([]byte, error) {
	if c.registering || c.loggingIn {
		return nil, ErrClientState
	}
	c.loggingIn = true

	return c.client.LoginInit(phrase).Serialize(), nil
}

// LoginFinish verifies the server's KE2 and returns KE3, the export key and
// the session key. A wrong phrase surfaces here as ErrAuthentication.
func (c *Client) LoginFinish(response, userIdentifier []byte) (finalization, exportKey, sessionKey []byte, err error) {
	if !c.loggingIn {
		return nil, nil, nil, ErrClientState
	}
	c.loggingIn = false

	ke2, err := c.client.Deserialize.KE2(response)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	ke3, exportKey, err := c.client.LoginFinish(ke2, opaque.ClientLoginFinishOptions{
		ClientIdentity: userIdentifier,
		ServerIdentity: c.serverID,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return ke3.Serialize(), exportKey, c.client.SessionKey(), nil
}
