// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID              = "user_id"
	FieldTagName             = "tag_name"
	FieldColor               = "color"
	FieldTagID               = "tag_id"
	FieldSessionID           = "session_id"
	FieldRegistrationRequest = "registration_request"
	FieldRegistrationRecord  = "registration_record"
	FieldLoginRequest        = "login_request"
	FieldLoginFinalization   = "login_finalization"
	FieldVaultID             = "vault_id"
	FieldVaultToken          = "vault_token"
	FieldUpdateFields        = "update_fields"
)

// maxProtocolMessageSize caps any OPAQUE message accepted from a client.
// Real messages are a few hundred bytes.
const maxProtocolMessageSize = 4096

// SecretTagValidator validates every request that reaches the PAKE gateway
// and the secret tag registry. It never mutates its input; normalization is
// done by NormalizeTagName and NormalizeColor.
type SecretTagValidator struct {
}

// NewSecretTagValidator constructs a new SecretTagValidator
// and returns it as the Validator interface.
func NewSecretTagValidator() Validator {
	return &SecretTagValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
func (v *SecretTagValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterStartRequest:
		return v.validateRegisterStart(value, fields...)
	case *models.RegisterStartRequest:
		return v.validateRegisterStart(*value, fields...)

	case models.RegisterFinishRequest:
		return v.validateRegisterFinish(value, fields...)
	case *models.RegisterFinishRequest:
		return v.validateRegisterFinish(*value, fields...)

	case models.LoginStartRequest:
		return v.validateLoginStart(value, fields...)
	case *models.LoginStartRequest:
		return v.validateLoginStart(*value, fields...)

	case models.LoginFinishRequest:
		return v.validateLoginFinish(value, fields...)
	case *models.LoginFinishRequest:
		return v.validateLoginFinish(*value, fields...)

	case models.SecretTagUpdate:
		return v.validateUpdate(value, fields...)
	case *models.SecretTagUpdate:
		return v.validateUpdate(*value, fields...)

	case models.UnwrapKeyRequest:
		return v.validateUnwrap(value, fields...)
	case *models.UnwrapKeyRequest:
		return v.validateUnwrap(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SecretTagValidator) validateRegisterStart(req models.RegisterStartRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTagName, FieldColor, FieldRegistrationRequest}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTagName:
			if _, err := NormalizeTagName(req.TagName); err != nil {
				return err
			}
		case FieldColor:
			if _, err := NormalizeColor(req.Color, DefaultTagColor); err != nil {
				return err
			}
		case FieldRegistrationRequest:
			if err := checkMessage(req.RegistrationRequest, ErrEmptyRegistrationRequest); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecretTagValidator) validateRegisterFinish(req models.RegisterFinishRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSessionID, FieldRegistrationRecord}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldSessionID:
			if req.SessionID == "" {
				return ErrEmptySessionID
			}
		case FieldRegistrationRecord:
			if err := checkMessage(req.RegistrationRecord, ErrEmptyRegistrationRecord); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecretTagValidator) validateLoginStart(req models.LoginStartRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTagID, FieldLoginRequest}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTagID:
			if req.TagID.IsZero() {
				return ErrInvalidTagID
			}
		case FieldLoginRequest:
			if err := checkMessage(req.LoginRequest, ErrEmptyLoginRequest); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecretTagValidator) validateLoginFinish(req models.LoginFinishRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSessionID, FieldLoginFinalization}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldSessionID:
			if req.SessionID == "" {
				return ErrEmptySessionID
			}
		case FieldLoginFinalization:
			if err := checkMessage(req.LoginFinalization, ErrEmptyLoginFinalization); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecretTagValidator) validateUpdate(upd models.SecretTagUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateFields, FieldTagName, FieldColor}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdateFields:
			if upd.TagName == nil && upd.Color == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTagName:
			if upd.TagName == nil {
				continue
			}
			if _, err := NormalizeTagName(*upd.TagName); err != nil {
				return err
			}
		case FieldColor:
			if upd.Color == nil {
				continue
			}
			// an explicit empty color would silently reset to the default
			if *upd.Color == "" {
				return ErrInvalidColor
			}
			if _, err := NormalizeColor(*upd.Color, DefaultTagColor); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecretTagValidator) validateUnwrap(req models.UnwrapKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTagID, FieldVaultID, FieldVaultToken}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTagID:
			if req.TagID.IsZero() {
				return ErrInvalidTagID
			}
		case FieldVaultID:
			if req.VaultID == "" {
				return ErrInvalidVaultID
			}
		case FieldVaultToken:
			if req.VaultAccessToken == "" {
				return ErrEmptyVaultToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkMessage(msg []byte, emptyErr error) error {
	if len(msg) == 0 {
		return emptyErr
	}
	if len(msg) > maxProtocolMessageSize {
		return ErrMessageTooLarge
	}
	return nil
}
