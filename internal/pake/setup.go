// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pake

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/bytemare/opaque"
)

// Context is mixed into every OPAQUE transcript. Clients must use the same
// value, which Configuration takes care of.
const Context = "go-secret-vault/opaque:v1"

// Configuration returns the OPAQUE configuration shared by server and clients.
func Configuration() *opaque.Configuration {
	conf := opaque.DefaultConfiguration()
	conf.Context = []byte(Context)
	return conf
}

// ServerSetup is the long-lived server key material: the OPRF seed and the
// AKE key pair. It is generated once per deployment.
type ServerSetup struct {
	OPRFSeed   []byte
	PrivateKey []byte
	PublicKey  []byte
}

// GenerateServerSetup creates fresh server key material.
func GenerateServerSetup() *ServerSetup {
	conf := Configuration()
	sk, pk := conf.KeyGen()

	return &ServerSetup{
		OPRFSeed:   conf.GenerateOPRFSeed(),
		PrivateKey: sk,
		PublicKey:  pk,
	}
}

// Validate checks that every part of the setup is present.
func (s *ServerSetup) Validate() error {
	if s == nil || len(s.OPRFSeed) == 0 || len(s.PrivateKey) == 0 || len(s.PublicKey) == 0 {
		return ErrInvalidSetup
	}
	return nil
}

// Encode serializes the setup as base64 over length-prefixed fields.
func (s *ServerSetup) Encode() string {
	buf := make([]byte, 0, 6+len(s.OPRFSeed)+len(s.PrivateKey)+len(s.PublicKey))
	for _, field := range [][]byte{s.OPRFSeed, s.PrivateKey, s.PublicKey} {
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(field)))
		buf = append(buf, field...)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeServerSetup parses the output of Encode.
func DecodeServerSetup(encoded string) (*ServerSetup, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}

	fields := make([][]byte, 0, 3)
	for i := 0; i < 3; i++ {
		if len(raw) < 2 {
			return nil, ErrInvalidSetup
		}
		n := int(binary.BigEndian.Uint16(raw))
		raw = raw[2:]
		if len(raw) < n {
			return nil, ErrInvalidSetup
		}
		fields = append(fields, append([]byte(nil), raw[:n]...))
		raw = raw[n:]
	}
	if len(raw) != 0 {
		return nil, ErrInvalidSetup
	}

	setup := &ServerSetup{OPRFSeed: fields[0], PrivateKey: fields[1], PublicKey: fields[2]}
	if err = setup.Validate(); err != nil {
		return nil, err
	}

	return setup, nil
}
