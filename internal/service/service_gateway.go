// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/pake"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/internal/validators"
	"github.com/MKhiriev/go-secret-vault/models"
)

// registrationSessionData is what RegisterStart leaves for RegisterFinish.
type registrationSessionData struct {
	TagName   string `json:"tag_name"`
	Color     string `json:"color"`
	TagHandle []byte `json:"tag_handle"`
}

// loginSessionData is what LoginStart leaves for LoginFinish. Dummy marks a
// login started against a tag that does not exist.
type loginSessionData struct {
	EngineState []byte `json:"engine_state"`
	Dummy       bool   `json:"dummy,omitempty"`
}

// GatewayDependencies groups the collaborators of the PAKE gateway.
type GatewayDependencies struct {
	Sessions store.SessionRepository
	Tags     store.SecretTagRepository
	Registry SecretTagService
	Engine   pake.Engine
	Deriver  crypto.VaultKeyDeriver
	Tokens   TokenIssuer
	Security SecurityHooks
	Setup    *pake.ServerSetup
}

type pakeGateway struct {
	sessions store.SessionRepository
	tags     store.SecretTagRepository
	registry SecretTagService
	engine   pake.Engine
	deriver  crypto.VaultKeyDeriver
	tokens   TokenIssuer
	security SecurityHooks
	setup    *pake.ServerSetup

	hasher   *utils.Hasher
	vaultIDs *utils.UUIDGenerator

	sessionTTL   time.Duration
	tokenTTL     time.Duration
	quota        int
	defaultColor string

	logger *logger.Logger
}

// NewPakeGateway constructs the [PakeGateway] that runs the two-round
// registration and login flows.
//
// Parameters:
//   - deps: repositories, the OPAQUE engine, the key deriver, the token
//     issuer and the security hooks the flows are built from.
//   - cfg: full configuration. The gateway reads the session and token
//     lifetimes, the tag quota, the default color and the audit hash key.
//   - logger: structured logger used for diagnostic output.
//
// The returned gateway does no input validation of its own; callers wrap it
// with [NewPakeGatewayValidationService].
func NewPakeGateway(deps GatewayDependencies, cfg config.StructuredConfig, logger *logger.Logger) PakeGateway {
	return &pakeGateway{
		sessions:     deps.Sessions,
		tags:         deps.Tags,
		registry:     deps.Registry,
		engine:       deps.Engine,
		deriver:      deps.Deriver,
		tokens:       deps.Tokens,
		security:     deps.Security,
		setup:        deps.Setup,
		hasher:       utils.NewHasher(cfg.App.HashKey),
		vaultIDs:     utils.NewUUIDGenerator(),
		sessionTTL:   cfg.Session.TTL,
		tokenTTL:     cfg.App.VaultTokenTTL,
		quota:        cfg.App.TagQuota,
		defaultColor: cfg.App.DefaultColor,
		logger:       logger,
	}
}

// RegisterStart answers the client's blinded registration request and parks
// the tag metadata in a registration session. Nothing is written to the
// registry yet.
func (g *pakeGateway) RegisterStart(ctx context.Context, req models.RegisterStartRequest) (models.RegisterStartResponse, error) {
	log := logger.FromContext(ctx)

	name, err := validators.NormalizeTagName(req.TagName)
	if err != nil {
		return models.RegisterStartResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	color, err := validators.NormalizeColor(req.Color, g.defaultColor)
	if err != nil {
		return models.RegisterStartResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err = g.registry.EnforceQuota(ctx, req.UserID); err != nil {
		return models.RegisterStartResponse{}, err
	}

	handle, err := g.deriver.NewTagHandle()
	if err != nil {
		log.Err(err).Str("func", "pakeGateway.RegisterStart").Msg("failed to create tag handle")
		return models.RegisterStartResponse{}, fmt.Errorf("error creating tag handle: %w", err)
	}

	response, err := g.engine.CreateRegistrationResponse(g.setup, []byte(userIdentifier(req.UserID)), handle, req.RegistrationRequest)
	if err != nil {
		err = engineError(err)
		log.Debug().Err(err).Str("func", "pakeGateway.RegisterStart").Msg("registration request rejected by engine")
		g.auditRegistration(ctx, req.UserID, false, "invalid_request")
		return models.RegisterStartResponse{}, publicError(err)
	}

	data, err := json.Marshal(registrationSessionData{TagName: name, Color: color, TagHandle: handle})
	if err != nil {
		return models.RegisterStartResponse{}, fmt.Errorf("error encoding session data: %w", err)
	}

	session, err := g.sessions.CreateSession(ctx, models.OpaqueSession{
		UserID:      req.UserID,
		State:       models.SessionRegistrationStarted,
		SessionData: data,
	}, g.sessionTTL)
	if err != nil {
		return models.RegisterStartResponse{}, storageError(err)
	}

	return models.RegisterStartResponse{
		SessionID:            session.SessionID,
		RegistrationResponse: response,
		TagHandle:            handle,
		ExpiresAt:            session.ExpiresAt,
	}, nil
}

// RegisterFinish consumes the registration session and persists the tag
// together with its first wrapped vault key.
func (g *pakeGateway) RegisterFinish(ctx context.Context, req models.RegisterFinishRequest) (models.SecretTagSummary, error) {
	log := logger.FromContext(ctx)

	session, err := g.claim(ctx, req.SessionID, req.UserID, models.SessionRegistrationStarted)
	if err != nil {
		return models.SecretTagSummary{}, err
	}

	var data registrationSessionData
	if err = json.Unmarshal(session.SessionData, &data); err != nil {
		log.Err(err).Str("func", "pakeGateway.RegisterFinish").Msg("corrupt registration session data")
		return models.SecretTagSummary{}, fmt.Errorf("%w: corrupt session data: %w", ErrStorage, err)
	}

	verifier, err := g.engine.RecordPublicKey(req.RegistrationRecord)
	if err != nil {
		err = engineError(err)
		log.Debug().Err(err).Str("func", "pakeGateway.RegisterFinish").Msg("registration record rejected")
		g.auditRegistration(ctx, req.UserID, false, "invalid_record")
		return models.SecretTagSummary{}, publicError(err)
	}

	tagID, err := models.TagIDFromBytes(g.deriver.TagID(req.RegistrationRecord))
	if err != nil {
		return models.SecretTagSummary{}, fmt.Errorf("error deriving tag id: %w", err)
	}

	vaultID := g.vaultIDs.Generate()
	wrapped, err := g.wrapNewVaultKey(req.UserID, req.RegistrationRecord, vaultID)
	if err != nil {
		log.Err(err).Str("func", "pakeGateway.RegisterFinish").Msg("failed to wrap vault key")
		return models.SecretTagSummary{}, err
	}

	tag := models.SecretTag{
		TagID:          tagID,
		UserID:         req.UserID,
		TagName:        data.TagName,
		Color:          data.Color,
		Salt:           data.TagHandle,
		VerifierKV:     verifier,
		OpaqueEnvelope: req.RegistrationRecord,
	}
	key := models.WrappedKey{
		VaultID:    vaultID,
		TagID:      tagID,
		WrappedKey: wrapped,
		KeyPurpose: models.KeyPurposeVaultData,
		KeyVersion: models.InitialKeyVersion,
	}

	created, err := g.tags.CreateSecretTag(ctx, tag, []models.WrappedKey{key}, g.quota)
	if err != nil {
		err = storageError(err)
		g.auditRegistration(ctx, req.UserID, false, reason(err))
		return models.SecretTagSummary{}, err
	}

	g.auditRegistration(ctx, req.UserID, true, "")

	summary := created.Summary()
	summary.WrappedKeyCount = 1
	return summary, nil
}

// wrapNewVaultKey derives the key pair of a fresh vault from the
// server-side export key and returns the wrapped data key. Every
// intermediate secret is wiped before returning.
func (g *pakeGateway) wrapNewVaultKey(userID int64, record []byte, vaultID string) ([]byte, error) {
	exportKey, err := g.engine.DeriveExportKey(g.setup, []byte(userIdentifier(userID)), record)
	if err != nil {
		return nil, fmt.Errorf("error deriving export key: %w", err)
	}
	defer g.deriver.Zero(exportKey)

	dataKey, kek, err := g.deriver.DeriveVaultKeys(exportKey, vaultID)
	if err != nil {
		return nil, fmt.Errorf("error deriving vault keys: %w", err)
	}
	defer g.deriver.Zero(dataKey, kek)

	return g.deriver.Wrap(kek, dataKey)
}

// LoginStart answers KE1 with KE2. An unknown tag is answered from a dummy
// record so the response cannot be told apart from a real one.
func (g *pakeGateway) LoginStart(ctx context.Context, req models.LoginStartRequest) (models.LoginStartResponse, error) {
	log := logger.FromContext(ctx)

	// KE2 lets the client check a guess offline of this server, so every
	// start counts as an attempt.
	limited, err := g.admitAttempt(ctx, req.ClientIP, req.TagID)
	if err != nil {
		return models.LoginStartResponse{}, err
	}
	if limited {
		g.security.AuditLog(ctx, models.AuditEvent{
			EventType:  models.AuditLoginRateLimited,
			Category:   models.AuditCategoryAuthentication,
			Severity:   models.AuditSeverityWarning,
			UserIDHash: g.hasher.HashString(userIdentifier(req.UserID)),
			IPHash:     g.hasher.HashString(req.ClientIP),
			Data:       map[string]string{"tag_id": req.TagID.String()},
		})
		return models.LoginStartResponse{}, ErrRateLimited
	}

	user := []byte(userIdentifier(req.UserID))

	var (
		credentialID []byte
		record       []byte
		dummy        bool
	)
	tag, err := g.tags.GetSecretTag(ctx, req.UserID, req.TagID)
	switch {
	case err == nil:
		credentialID, record = tag.Salt, tag.OpaqueEnvelope
	case errors.Is(err, store.ErrSecretTagNotFound):
		dummy = true
		credentialID, record, err = g.engine.DummyRecord(g.setup, user, req.TagID.Bytes())
		if err != nil {
			log.Err(err).Str("func", "pakeGateway.LoginStart").Msg("failed to build dummy record")
			return models.LoginStartResponse{}, fmt.Errorf("error building dummy record: %w", err)
		}
	default:
		return models.LoginStartResponse{}, storageError(err)
	}

	response, state, err := g.engine.StartLogin(g.setup, user, credentialID, record, req.LoginRequest)
	if err != nil {
		err = engineError(err)
		log.Debug().Err(err).Str("func", "pakeGateway.LoginStart").Msg("login request rejected by engine")
		g.loginFailed(ctx, req.UserID, req.ClientIP, req.TagID, "invalid_request")
		return models.LoginStartResponse{}, publicError(err)
	}

	data, err := json.Marshal(loginSessionData{EngineState: state, Dummy: dummy})
	g.deriver.Zero(state)
	if err != nil {
		return models.LoginStartResponse{}, fmt.Errorf("error encoding session data: %w", err)
	}

	tagID := req.TagID
	session, err := g.sessions.CreateSession(ctx, models.OpaqueSession{
		UserID:      req.UserID,
		TagID:       &tagID,
		State:       models.SessionLoginStarted,
		SessionData: data,
	}, g.sessionTTL)
	if err != nil {
		return models.LoginStartResponse{}, storageError(err)
	}

	return models.LoginStartResponse{
		SessionID:     session.SessionID,
		LoginResponse: response,
		ExpiresAt:     session.ExpiresAt,
	}, nil
}

// LoginFinish verifies KE3, checks every wrapped key of the tag and issues a
// vault-access token. Failures are audited. Success clears the tag bucket and
// gives the attempt back to the global bucket.
func (g *pakeGateway) LoginFinish(ctx context.Context, req models.LoginFinishRequest) (models.LoginFinishResponse, error) {
	log := logger.FromContext(ctx)

	session, err := g.claim(ctx, req.SessionID, req.UserID, models.SessionLoginStarted)
	if err != nil {
		return models.LoginFinishResponse{}, err
	}
	if session.TagID == nil {
		return models.LoginFinishResponse{}, ErrSessionNotFound
	}
	tagID := *session.TagID

	var data loginSessionData
	if err = json.Unmarshal(session.SessionData, &data); err != nil {
		log.Err(err).Str("func", "pakeGateway.LoginFinish").Msg("corrupt login session data")
		return models.LoginFinishResponse{}, fmt.Errorf("%w: corrupt session data: %w", ErrStorage, err)
	}
	defer g.deriver.Zero(data.EngineState)

	response, failure, err := g.finishLogin(ctx, req, tagID, data)
	if err != nil {
		if errors.Is(err, ErrProtocol) || errors.Is(err, ErrAuthenticationFailed) {
			log.Debug().Err(err).Str("func", "pakeGateway.LoginFinish").Str("reason", failure).Msg("login rejected")
			g.loginFailed(ctx, req.UserID, req.ClientIP, tagID, failure)
		}
		return models.LoginFinishResponse{}, publicError(err)
	}

	g.settleAttempt(ctx, req.ClientIP, tagID)

	g.security.AuditLog(ctx, models.AuditEvent{
		EventType:  models.AuditLoginSucceeded,
		Category:   models.AuditCategoryAuthentication,
		Severity:   models.AuditSeverityInfo,
		UserIDHash: g.hasher.HashString(userIdentifier(req.UserID)),
		IPHash:     g.hasher.HashString(req.ClientIP),
		Success:    true,
		Data:       map[string]string{"tag_id": tagID.String(), "vault_id": response.VaultID},
	})

	return response, nil
}

// finishLogin returns the failure reason for the audit trail alongside
// ErrAuthenticationFailed or an ErrProtocol engine error.
func (g *pakeGateway) finishLogin(ctx context.Context, req models.LoginFinishRequest, tagID models.TagID, data loginSessionData) (models.LoginFinishResponse, string, error) {
	sessionKey, err := g.engine.FinishLogin(g.setup, req.LoginFinalization, data.EngineState)
	if err != nil {
		return models.LoginFinishResponse{}, "verification_failed", engineError(err)
	}
	g.deriver.Zero(sessionKey)

	if data.Dummy {
		return models.LoginFinishResponse{}, "unknown_tag", ErrAuthenticationFailed
	}

	tag, err := g.tags.GetSecretTag(ctx, req.UserID, tagID)
	if err != nil {
		if errors.Is(err, store.ErrSecretTagNotFound) {
			return models.LoginFinishResponse{}, "tag_deleted", ErrAuthenticationFailed
		}
		return models.LoginFinishResponse{}, "", storageError(err)
	}

	keys, err := g.tags.ListWrappedKeys(ctx, tagID)
	if err != nil {
		return models.LoginFinishResponse{}, "", storageError(err)
	}

	vaultID, err := g.verifyWrappedKeys(req.UserID, tag.OpaqueEnvelope, keys)
	if err != nil {
		if errors.Is(err, crypto.ErrUnwrapFailed) {
			return models.LoginFinishResponse{}, "unwrap_failed", ErrAuthenticationFailed
		}
		return models.LoginFinishResponse{}, "", err
	}

	token, expiresAt, err := g.tokens.Issue(ctx, req.UserID, tagID, vaultID, g.tokenTTL)
	if err != nil {
		return models.LoginFinishResponse{}, "", err
	}

	return models.LoginFinishResponse{
		VaultAccessToken: token.String(),
		VaultID:          vaultID,
		WrappedKeys:      keys,
		ExpiresAt:        expiresAt,
	}, "", nil
}

// verifyWrappedKeys re-derives the keys of every vault bound to the tag and
// requires each wrapped key to unwrap to the derived data key. It returns
// the vault id of the first vault_data key.
func (g *pakeGateway) verifyWrappedKeys(userID int64, record []byte, keys []models.WrappedKey) (string, error) {
	exportKey, err := g.engine.DeriveExportKey(g.setup, []byte(userIdentifier(userID)), record)
	if err != nil {
		return "", fmt.Errorf("error deriving export key: %w", err)
	}
	defer g.deriver.Zero(exportKey)

	var vaultID string
	for _, key := range keys {
		if err = g.checkWrappedKey(exportKey, key); err != nil {
			return "", err
		}
		if vaultID == "" && key.KeyPurpose == models.KeyPurposeVaultData {
			vaultID = key.VaultID
		}
	}

	if vaultID == "" {
		return "", fmt.Errorf("%w: %w", ErrStorage, store.ErrNoWrappedKeys)
	}
	return vaultID, nil
}

func (g *pakeGateway) checkWrappedKey(exportKey []byte, key models.WrappedKey) error {
	dataKey, kek, err := g.deriver.DeriveVaultKeys(exportKey, key.VaultID)
	if err != nil {
		return fmt.Errorf("error deriving vault keys: %w", err)
	}
	defer g.deriver.Zero(dataKey, kek)

	unwrapped, err := g.deriver.Unwrap(kek, key.WrappedKey)
	if err != nil {
		return fmt.Errorf("%w: %w", crypto.ErrUnwrapFailed, err)
	}
	defer g.deriver.Zero(unwrapped)

	if subtle.ConstantTimeCompare(unwrapped, dataKey) != 1 {
		return crypto.ErrUnwrapFailed
	}
	return nil
}

// UnwrapVaultKey hands the data key of a vault to the holder of a
// vault-access token minted for exactly that user, tag and vault.
func (g *pakeGateway) UnwrapVaultKey(ctx context.Context, req models.UnwrapKeyRequest) (models.UnwrapKeyResponse, error) {
	log := logger.FromContext(ctx)

	token, err := g.tokens.Parse(ctx, req.VaultAccessToken)
	if err != nil {
		return models.UnwrapKeyResponse{}, ErrInvalidVaultToken
	}
	if token.UserID != req.UserID ||
		subtle.ConstantTimeCompare(token.TagID[:], req.TagID[:]) != 1 ||
		token.VaultID != req.VaultID {
		log.Info().Str("func", "pakeGateway.UnwrapVaultKey").Msg("vault token does not match request")
		return models.UnwrapKeyResponse{}, ErrInvalidVaultToken
	}

	tag, err := g.tags.GetSecretTag(ctx, req.UserID, req.TagID)
	if err != nil {
		return models.UnwrapKeyResponse{}, storageError(err)
	}

	keys, err := g.tags.ListWrappedKeys(ctx, req.TagID)
	if err != nil {
		return models.UnwrapKeyResponse{}, storageError(err)
	}

	var wrapped *models.WrappedKey
	for i := range keys {
		if keys[i].VaultID == req.VaultID && keys[i].KeyPurpose == models.KeyPurposeVaultData {
			wrapped = &keys[i]
			break
		}
	}
	if wrapped == nil {
		return models.UnwrapKeyResponse{}, ErrInvalidVaultToken
	}

	dataKey, err := g.unwrapVaultKey(req.UserID, tag.OpaqueEnvelope, *wrapped)
	if err != nil {
		log.Err(err).Str("func", "pakeGateway.UnwrapVaultKey").Msg("failed to unwrap vault key")
		g.security.AuditLog(ctx, models.AuditEvent{
			EventType:  models.AuditVaultKeyUnwrapError,
			Category:   models.AuditCategoryKeyManagement,
			Severity:   models.AuditSeverityCritical,
			UserIDHash: g.hasher.HashString(userIdentifier(req.UserID)),
			IPHash:     g.hasher.HashString(utils.GetClientIPFromContext(ctx)),
			Data:       map[string]string{"tag_id": req.TagID.String(), "vault_id": req.VaultID},
		})
		return models.UnwrapKeyResponse{}, err
	}

	g.security.AuditLog(ctx, models.AuditEvent{
		EventType:  models.AuditVaultKeyUnwrapped,
		Category:   models.AuditCategoryKeyManagement,
		Severity:   models.AuditSeverityInfo,
		UserIDHash: g.hasher.HashString(userIdentifier(req.UserID)),
		IPHash:     g.hasher.HashString(utils.GetClientIPFromContext(ctx)),
		Success:    true,
		Data:       map[string]string{"tag_id": req.TagID.String(), "vault_id": req.VaultID},
	})

	return models.UnwrapKeyResponse{VaultID: req.VaultID, DataKey: dataKey}, nil
}

func (g *pakeGateway) unwrapVaultKey(userID int64, record []byte, key models.WrappedKey) ([]byte, error) {
	exportKey, err := g.engine.DeriveExportKey(g.setup, []byte(userIdentifier(userID)), record)
	if err != nil {
		return nil, fmt.Errorf("error deriving export key: %w", err)
	}
	defer g.deriver.Zero(exportKey)

	derived, kek, err := g.deriver.DeriveVaultKeys(exportKey, key.VaultID)
	if err != nil {
		return nil, fmt.Errorf("error deriving vault keys: %w", err)
	}
	defer g.deriver.Zero(derived, kek)

	dataKey, err := g.deriver.Unwrap(kek, key.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("error unwrapping vault key: %w", err)
	}
	if subtle.ConstantTimeCompare(dataKey, derived) != 1 {
		g.deriver.Zero(dataKey)
		return nil, fmt.Errorf("error unwrapping vault key: %w", crypto.ErrUnwrapFailed)
	}

	return dataKey, nil
}

// claim consumes a session and checks that it belongs to userID and was
// created by the expected step. A foreign session looks like a missing one.
func (g *pakeGateway) claim(ctx context.Context, sessionID string, userID int64, state models.SessionState) (models.OpaqueSession, error) {
	session, err := g.sessions.ClaimSession(ctx, sessionID)
	if err != nil {
		return models.OpaqueSession{}, storageError(err)
	}

	if session.UserID != userID || session.State != state {
		logger.FromContext(ctx).Info().
			Str("func", "pakeGateway.claim").
			Str("state", string(session.State)).
			Msg("session rejected for caller or step")
		return models.OpaqueSession{}, ErrSessionNotFound
	}

	return session, nil
}

// admitAttempt counts one login attempt against the tag bucket and then the
// global bucket, and reports whether either is now over its limit. The value
// returned by the increment decides, so concurrent starts cannot all pass a
// stale read. It fails closed: an attempt that cannot be counted is not
// started.
func (g *pakeGateway) admitAttempt(ctx context.Context, ip string, tagID models.TagID) (bool, error) {
	for _, bucket := range []string{tagID.String(), GlobalBucket} {
		limited, err := g.security.RecordFailure(ctx, ip, bucket)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "pakeGateway.admitAttempt").Msg("failed to record login attempt")
			return false, err
		}
		if limited {
			return true, nil
		}
	}
	return false, nil
}

// settleAttempt runs after a verified login. The tag bucket is cleared and
// the global bucket gets this attempt back, so honest unlocks never add up
// to a lockout of the address.
func (g *pakeGateway) settleAttempt(ctx context.Context, ip string, tagID models.TagID) {
	log := logger.FromContext(ctx)

	if err := g.security.ResetFailures(ctx, ip, tagID.String()); err != nil {
		log.Warn().Err(err).Str("func", "pakeGateway.settleAttempt").Msg("failed to reset rate limit counter")
	}
	if err := g.security.RefundAttempt(ctx, ip, GlobalBucket); err != nil {
		log.Warn().Err(err).Str("func", "pakeGateway.settleAttempt").Msg("failed to refund global attempt")
	}
}

// loginFailed audits a failed login. The attempt was already counted by
// LoginStart.
func (g *pakeGateway) loginFailed(ctx context.Context, userID int64, ip string, tagID models.TagID, failure string) {
	g.security.AuditLog(ctx, models.AuditEvent{
		EventType:  models.AuditLoginFailed,
		Category:   models.AuditCategoryAuthentication,
		Severity:   models.AuditSeverityWarning,
		UserIDHash: g.hasher.HashString(userIdentifier(userID)),
		IPHash:     g.hasher.HashString(ip),
		Data:       map[string]string{"tag_id": tagID.String(), "reason": failure},
	})
}

func (g *pakeGateway) auditRegistration(ctx context.Context, userID int64, success bool, failure string) {
	event := models.AuditEvent{
		EventType:  models.AuditTagRegistered,
		Category:   models.AuditCategoryRegistry,
		Severity:   models.AuditSeverityInfo,
		UserIDHash: g.hasher.HashString(userIdentifier(userID)),
		IPHash:     g.hasher.HashString(utils.GetClientIPFromContext(ctx)),
		Success:    success,
	}
	if !success {
		event.EventType = models.AuditTagRegisterFailed
		event.Severity = models.AuditSeverityWarning
		event.Data = map[string]string{"reason": failure}
	}
	g.security.AuditLog(ctx, event)
}

// engineError marks a failure reported by the PAKE engine.
func engineError(err error) error {
	return fmt.Errorf("%w: %w", ErrProtocol, err)
}

// publicError hides engine failures behind ErrAuthenticationFailed.
func publicError(err error) error {
	if errors.Is(err, ErrProtocol) {
		return ErrAuthenticationFailed
	}
	return err
}

// reason turns a service error into a short audit label.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateTag):
		return "duplicate_tag"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota_exceeded"
	default:
		return "storage_error"
	}
}

// userIdentifier is the OPAQUE client identity of a user.
func userIdentifier(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func traceID(ctx context.Context) string {
	return utils.GetTraceIDFromContext(ctx)
}
