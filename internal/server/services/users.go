// Package services contains the application services of the claim ledger
// server: user/auth management, the claim ledger itself, and attachment
// presigning.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	"github.com/camertanev/FraudDetect-Z/internal/dbx"
	"github.com/camertanev/FraudDetect-Z/internal/server/auth"
	"github.com/camertanev/FraudDetect-Z/internal/server/config"
	"github.com/camertanev/FraudDetect-Z/internal/server/models"
	"github.com/camertanev/FraudDetect-Z/internal/server/repositories/repomanager"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Address      string
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// makeAddress mints the on-ledger identity assigned to a user at
// registration.
func makeAddress() string {
	return "0x" + hex.EncodeToString(common.GenerateRandByteArray(20))
}

func (s *UserService) Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error) {

	user := &models.User{
		UserName: username,
		Address:  makeAddress(),
		Salt:     salt,
		Verifier: verifier,
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

func (s *UserService) getRandomSalt() []byte {
	return common.GenerateRandByteArray(32)
}

// GetSalt returns the stored salt for a user. Unknown usernames get a
// random salt so the endpoint does not reveal which accounts exist.
func (s *UserService) GetSalt(ctx context.Context, userName string) ([]byte, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return s.getRandomSalt(), nil
		}
		return nil, common.ErrInternal
	}

	return user.Salt, nil
}

func (s *UserService) generateAccessToken(userID, address string) (string, error) {
	token, err := auth.GenerateToken(userID, address, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) generateRefreshToken() (string, error) {
	token, err := common.MakeRandHexString(32)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) checkVerifier(verifier []byte, verifierCandidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, verifierCandidate) == 1
}

func (s *UserService) Login(ctx context.Context, userName string, verifierCandidate []byte) (*TokenPair, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if !s.checkVerifier(user.Verifier, verifierCandidate) {
		return nil, common.ErrUnauthorized
	}

	return s.generateTokenPair(ctx, user.ID, user.Address)
}

func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {

	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %v", err)
	}

	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var tokenPair *TokenPair

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %v", err)
		}

		user, err := s.repomanager.Users(tx).GetUserByID(ctx, token.UserID)
		if err != nil {
			return fmt.Errorf("error resolving user: %v", err)
		}

		tokenPair, err = s.generateTokenPairTx(ctx, tx, token.UserID, user.Address)
		if err != nil {
			return fmt.Errorf("error generating token pair: %v", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return tokenPair, nil
}

func (s *UserService) generateTokenPair(ctx context.Context, userID, address string) (*TokenPair, error) {
	return s.generateTokenPairTx(ctx, s.db, userID, address)
}

func (s *UserService) generateTokenPairTx(ctx context.Context, db dbx.DBTX, userID, address string) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(userID, address)
	if err != nil {
		return nil, common.ErrInternal
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrInternal
	}

	refreshTokenRepo := s.repomanager.RefreshTokens(db)
	if err := refreshTokenRepo.Create(ctx, userID, refreshToken, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken, Address: address}, nil
}
