package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/videoflix-server/internal/apierrors"
	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
	"github.com/dtroode/videoflix-server/internal/token"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// Auth drives the account lifecycle: registration, activation, password
// reset and login.
type Auth struct {
	accounts         model.AccountStore
	activationTokens model.ActivationTokenStore
	codec            model.ActivationCodec
	hasher           PasswordHasher
	notifier         model.Notifier
	tokenService     *TokenService
	activationWindow time.Duration
	logger           *logger.Logger
	now              func() time.Time
}

func NewAuth(
	accounts model.AccountStore,
	activationTokens model.ActivationTokenStore,
	codec model.ActivationCodec,
	hasher PasswordHasher,
	notifier model.Notifier,
	tokenService *TokenService,
	activationWindow time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts:         accounts,
		activationTokens: activationTokens,
		codec:            codec,
		hasher:           hasher,
		notifier:         notifier,
		tokenService:     tokenService,
		activationWindow: activationWindow,
		logger:           logger,
		now:              time.Now,
	}
}

// Register creates an inactive account and sends the activation email. The
// store creates the account together with its activation token.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.RegisterResult, error) {
	email := strings.TrimSpace(params.Email)
	a.logger.Debug("Auth service: starting registration",
		"email", email)

	if params.Password != params.ConfirmPassword {
		return model.RegisterResult{}, apierrors.NewErrPasswordMismatch()
	}

	_, err := a.accounts.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: account already exists",
			"email", email)
		return model.RegisterResult{}, apierrors.NewErrEmailIsTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.RegisterResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.RegisterResult{}, hashError("password", err)
	}

	account, err := a.accounts.Create(ctx, model.Account{
		Email:        email,
		Username:     email,
		PasswordHash: hash,
		IsActive:     false,
	})
	if errors.Is(err, model.ErrDuplicateEmail) {
		return model.RegisterResult{}, apierrors.NewErrEmailIsTaken(email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create account",
			"email", email,
			"error", err.Error())
		return model.RegisterResult{}, fmt.Errorf("failed to create account: %w", err)
	}

	linkToken := a.codec.MakeToken(account)
	a.notify(ctx, model.NotificationActivation, account, linkToken)

	a.logger.Info("Auth service: account registered",
		"account_id", account.ID,
		"email", email)

	return model.RegisterResult{Account: account, Token: linkToken}, nil
}

// Activate consumes an activation link and marks the account active.
func (a *Auth) Activate(ctx context.Context, uid, linkToken string) error {
	account, err := a.checkActivationLink(ctx, uid, linkToken)
	if err != nil {
		return err
	}

	if err := a.consumeActivationToken(ctx, account.ID); err != nil {
		return err
	}
	if err := a.accounts.SetActive(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}

	a.logger.Info("Auth service: account activated",
		"account_id", account.ID)

	return nil
}

// RequestPasswordReset sends a reset link to the account registered with email.
func (a *Auth) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	account, err := a.accounts.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUnknownEmail()
	}
	if err != nil {
		return fmt.Errorf("failed to get account by email: %w", err)
	}

	activationToken, err := a.activationTokens.GetOrCreate(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to get activation token: %w", err)
	}

	// A stale token would make the new link fail on arrival.
	if activationToken.Expired(a.now(), a.activationWindow) {
		if _, err := a.activationTokens.Delete(ctx, account.ID); err != nil {
			return fmt.Errorf("failed to delete expired activation token: %w", err)
		}
		activationToken, err = a.activationTokens.GetOrCreate(ctx, account.ID)
		if err != nil {
			return fmt.Errorf("failed to recreate activation token: %w", err)
		}
	}
	account.ActivationToken = &activationToken

	a.notify(ctx, model.NotificationPasswordReset, account, a.codec.MakeToken(account))

	a.logger.Info("Auth service: password reset requested",
		"account_id", account.ID)

	return nil
}

// ConfirmPasswordReset consumes a reset link and sets the new password.
func (a *Auth) ConfirmPasswordReset(ctx context.Context, params model.ResetParams) error {
	if params.NewPassword != params.ConfirmPassword {
		return apierrors.NewErrPasswordMismatch()
	}

	account, err := a.checkActivationLink(ctx, params.UID, params.Token)
	if err != nil {
		return err
	}

	hash, err := a.hasher.Hash(params.NewPassword)
	if err != nil {
		return hashError("new_password", err)
	}

	if err := a.consumeActivationToken(ctx, account.ID); err != nil {
		return err
	}
	if err := a.accounts.SetPassword(ctx, account.ID, hash); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	a.logger.Info("Auth service: password reset completed",
		"account_id", account.ID)

	return nil
}

// Login verifies credentials of an active account and issues a token pair.
func (a *Auth) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	email = strings.TrimSpace(email)
	a.logger.Debug("Auth service: starting login",
		"email", email)

	account, err := a.accounts.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.LoginResult{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	ok, err := a.hasher.Compare(account.PasswordHash, password)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to compare password: %w", err)
	}
	if !ok {
		return model.LoginResult{}, apierrors.NewErrInvalidCredentials()
	}

	if !account.IsActive {
		a.logger.Info("Auth service: login of inactive account",
			"account_id", account.ID)
		return model.LoginResult{}, apierrors.NewErrInactiveAccount()
	}

	tokens, err := a.tokenService.Issue(ctx, account.ID)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: login succeeded",
		"account_id", account.ID)

	return model.LoginResult{Account: account, Tokens: tokens}, nil
}

// checkActivationLink resolves the account behind uid and verifies that it
// holds an unexpired activation token matching linkToken. Every failure is
// reported as an invalid link. An expired token is deleted.
func (a *Auth) checkActivationLink(ctx context.Context, uid, linkToken string) (model.Account, error) {
	accountID, err := token.DecodeUID(uid)
	if err != nil {
		a.logger.Debug("Auth service: malformed uid",
			"uid", uid,
			"error", err.Error())
		return model.Account{}, apierrors.NewErrInvalidLink()
	}

	account, err := a.accounts.GetByID(ctx, accountID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, apierrors.NewErrInvalidLink()
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	if account.ActivationToken == nil {
		return model.Account{}, apierrors.NewErrInvalidLink()
	}

	if account.ActivationToken.Expired(a.now(), a.activationWindow) {
		if _, err := a.activationTokens.Delete(ctx, account.ID); err != nil {
			a.logger.Error("Auth service: failed to delete expired activation token",
				"account_id", account.ID,
				"error", err.Error())
		}
		a.logger.Info("Auth service: activation token expired",
			"account_id", account.ID)
		return model.Account{}, apierrors.NewErrInvalidLink()
	}

	if !a.codec.CheckToken(account, linkToken) {
		return model.Account{}, apierrors.NewErrInvalidLink()
	}

	return account, nil
}

// consumeActivationToken deletes the outstanding token. Only the caller that
// actually removed it may proceed, so a link is honoured once.
func (a *Auth) consumeActivationToken(ctx context.Context, accountID int64) error {
	deleted, err := a.activationTokens.Delete(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete activation token: %w", err)
	}
	if !deleted {
		a.logger.Info("Auth service: activation token already consumed",
			"account_id", accountID)
		return apierrors.NewErrInvalidLink()
	}
	return nil
}

func hashError(field string, err error) error {
	if errors.Is(err, model.ErrPasswordTooLong) {
		return apierrors.NewErrValidation(map[string]string{
			field: "must be no more than 72 bytes long",
		})
	}
	return fmt.Errorf("failed to hash password: %w", err)
}

// notify enqueues an email. Failures are logged and never reach the caller.
func (a *Auth) notify(ctx context.Context, kind model.NotificationKind, account model.Account, linkToken string) {
	err := a.notifier.Enqueue(ctx, model.Notification{
		Kind:      kind,
		AccountID: account.ID,
		Email:     account.Email,
		Params: map[string]string{
			"uid":   token.EncodeUID(account.ID),
			"token": linkToken,
		},
	})
	if err != nil {
		a.logger.Error("Auth service: failed to enqueue notification",
			"account_id", account.ID,
			"kind", string(kind),
			"error", err.Error())
	}
}
