package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/pkg/config"
)

// googleAuthService implements GoogleAuthSvcFacade on top of Google's
// OAuth2 endpoints and ID token validation.
type googleAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleAuthService creates a new instance of googleAuthService.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ValidateIDToken verifies the token against Google's public keys and
// the configured client ID, then extracts the identity claims.
func (s *googleAuthService) ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	payload, err := idtoken.Validate(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid Google ID token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("email claim missing from Google ID token")
	}
	verified, _ := payload.Claims["email_verified"].(bool)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		VerifiedEmail: verified,
		Name:          name,
		Picture:       picture,
	}, nil
}

// ExchangeCode trades an authorization code for the ID token embedded in
// Google's token response.
func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", errors.New("id_token missing from Google token response")
	}
	return rawIDToken, nil
}

func (s *googleAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}
