// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"github.com/bytemare/opaque"
	"github.com/bytemare/opaque/message"
	"golang.org/x/crypto/hkdf"
)

const (
	exportKeySize    = 32
	credentialIDSize = 16

	exportKeyInfo   = "secret-tag-export:v1"
	dummyMaskInfo   = "secret-tag-dummy-mask:v1"
	dummyCredInfo   = "secret-tag-dummy-cred:v1"
	dummyEnvelopeIn = "secret-tag-dummy-envelope:v1"
)

type opaqueEngine struct {
	serverID []byte

	// templates caches one genuine record per server public key. Dummy
	// records reuse its client public key and sizes.
	templates sync.Map
}

// NewOpaqueEngine returns an Engine that identifies itself as serverID.
func NewOpaqueEngine(serverID string) Engine {
	return &opaqueEngine{serverID: []byte(serverID)}
}

func (e *opaqueEngine) CreateRegistrationResponse(setup *ServerSetup, userIdentifier, credentialID, request []byte) ([]byte, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	server, err := Configuration().Server()
	if err != nil {
		return nil, fmt.Errorf("error creating opaque server: %w", err)
	}

	req, err := server.Deserialize.RegistrationRequest(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	pks, err := server.Deserialize.DecodeAkePublicKey(setup.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}

	return server.RegistrationResponse(req, pks, credentialID, setup.OPRFSeed).Serialize(), nil
}

func (e *opaqueEngine) StartLogin(setup *ServerSetup, userIdentifier, credentialID, record, loginRequest []byte) ([]byte, []byte, error) {
	if err := setup.Validate(); err != nil {
		return nil, nil, err
	}

	server, err := Configuration().Server()
	if err != nil {
		return nil, nil, fmt.Errorf("error creating opaque server: %w", err)
	}

	if err = server.SetKeyMaterial(e.serverID, setup.PrivateKey, setup.PublicKey, setup.OPRFSeed); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}

	rec, err := server.Deserialize.RegistrationRecord(record)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	ke1, err := server.Deserialize.KE1(loginRequest)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	ke2, err := server.LoginInit(ke1, &opaque.ClientRecord{
		CredentialIdentifier: credentialID,
		ClientIdentity:       userIdentifier,
		RegistrationRecord:   rec,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	return ke2.Serialize(), server.SerializeState(), nil
}

func (e *opaqueEngine) FinishLogin(setup *ServerSetup, finalization, state []byte) ([]byte, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	server, err := Configuration().Server()
	if err != nil {
		return nil, fmt.Errorf("error creating opaque server: %w", err)
	}

	if err = server.SetAKEState(state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	ke3, err := server.Deserialize.KE3(finalization)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	if err = server.LoginFinish(ke3); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return server.SessionKey(), nil
}

func (e *opaqueEngine) RecordPublicKey(record []byte) ([]byte, error) {
	server, err := Configuration().Server()
	if err != nil {
		return nil, fmt.Errorf("error creating opaque server: %w", err)
	}

	rec, err := server.Deserialize.RegistrationRecord(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return rec.PublicKey.Encode(), nil
}

func (e *opaqueEngine) DeriveExportKey(setup *ServerSetup, userIdentifier, record []byte) ([]byte, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	if len(record) == 0 {
		return nil, ErrInvalidRecord
	}

	info := make([]byte, 0, len(exportKeyInfo)+len(userIdentifier)+1)
	info = append(info, exportKeyInfo...)
	info = append(info, 0)
	info = append(info, userIdentifier...)

	return expand(setup.OPRFSeed, record, info, exportKeySize)
}

func (e *opaqueEngine) DummyRecord(setup *ServerSetup, userIdentifier, tagID []byte) ([]byte, []byte, error) {
	if err := setup.Validate(); err != nil {
		return nil, nil, err
	}

	tmpl, err := e.template(setup)
	if err != nil {
		return nil, nil, err
	}

	salt := append(append([]byte(nil), userIdentifier...), tagID...)

	credentialID, err := expand(setup.OPRFSeed, salt, []byte(dummyCredInfo), credentialIDSize)
	if err != nil {
		return nil, nil, err
	}
	maskingKey, err := expand(setup.OPRFSeed, salt, []byte(dummyMaskInfo), len(tmpl.MaskingKey))
	if err != nil {
		return nil, nil, err
	}
	envelope, err := expand(setup.OPRFSeed, salt, []byte(dummyEnvelopeIn), len(tmpl.Envelope))
	if err != nil {
		return nil, nil, err
	}

	rec := &message.RegistrationRecord{
		PublicKey:  tmpl.PublicKey,
		MaskingKey: maskingKey,
		Envelope:   envelope,
	}

	return credentialID, rec.Serialize(), nil
}

// template runs one throwaway registration per server key pair.
func (e *opaqueEngine) template(setup *ServerSetup) (*message.RegistrationRecord, error) {
	key := string(setup.PublicKey)
	if tmpl, ok := e.templates.Load(key); ok {
		return tmpl.(*message.RegistrationRecord), nil
	}

	phrase := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, phrase); err != nil {
		return nil, fmt.Errorf("error reading random phrase: %w", err)
	}
	credentialID := make([]byte, credentialIDSize)
	if _, err := io.ReadFull(rand.Reader, credentialID); err != nil {
		return nil, fmt.Errorf("error reading random credential id: %w", err)
	}

	client, err := NewClient(string(e.serverID))
	if err != nil {
		return nil, err
	}
	request, err := client.RegistrationStart(phrase)
	if err != nil {
		return nil, err
	}
	response, err := e.CreateRegistrationResponse(setup, nil, credentialID, request)
	if err != nil {
		return nil, err
	}
	record, _, err := client.RegistrationFinish(response, []byte("dummy"))
	if err != nil {
		return nil, err
	}

	server, err := Configuration().Server()
	if err != nil {
		return nil, fmt.Errorf("error creating opaque server: %w", err)
	}
	rec, err := server.Deserialize.RegistrationRecord(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	actual, _ := e.templates.LoadOrStore(key, rec)
	return actual.(*message.RegistrationRecord), nil
}

func expand(secret, salt, info []byte, size int) ([]byte, error) {
	out := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("error expanding key material: %w", err)
	}
	return out, nil
}
