// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pake wraps the OPAQUE asymmetric PAKE behind a narrow, byte-level
// contract. Callers only ever see serialized protocol messages, serialized
// registration records and serialized server state; nothing in this package
// keeps protocol state between calls.
package pake

//go:generate mockgen -source=interfaces.go -destination=../mock/pake_engine_mock.go -package=mock

// Engine is the server half of the OPAQUE protocol.
type Engine interface {
	// CreateRegistrationResponse evaluates the client's blinded registration
	// request under the OPRF key bound to credentialID.
	CreateRegistrationResponse(setup *ServerSetup, userIdentifier, credentialID, request []byte) ([]byte, error)

	// StartLogin answers a KE1 message with KE2 and returns the serialized
	// AKE state that FinishLogin needs.
	StartLogin(setup *ServerSetup, userIdentifier, credentialID, record, loginRequest []byte) (response, state []byte, err error)

	// FinishLogin verifies the client's KE3 against state and returns the
	// shared session key. Any verification failure yields ErrAuthentication.
	FinishLogin(setup *ServerSetup, finalization, state []byte) ([]byte, error)

	// RecordPublicKey validates a serialized registration record and returns
	// the client public key it carries.
	RecordPublicKey(record []byte) ([]byte, error)

	// DeriveExportKey returns the 32-byte server-side export key bound to
	// the setup, the user and the record.
	DeriveExportKey(setup *ServerSetup, userIdentifier, record []byte) ([]byte, error)

	// DummyRecord builds a well-formed record and credential identifier for
	// a tag that does not exist, so that StartLogin answers unknown tags with
	// a response of the same shape as for known ones.
	DummyRecord(setup *ServerSetup, userIdentifier, tagID []byte) (credentialID, record []byte, err error)
}
