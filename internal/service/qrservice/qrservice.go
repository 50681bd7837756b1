package qrservice

import (
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	TypeMember = "member"
	TypeGym    = "gym"

	issuer    = "gymcoin"
	imageSize = 256
)

var ErrMalformedPayload = errors.New("malformed QR payload")

// Identity is the decoded content of a scanned code.
type Identity struct {
	Type string
	ID   int
}

// Code carries the signed token and its rendering as a PNG data URI.
type Code struct {
	Token string
	Image string
}

type claims struct {
	Type string `json:"typ"`
	jwt.StandardClaims
}

// Service issues short-lived signed QR payloads. Signing keeps a
// photographed code from being replayed indefinitely or forged for another
// actor.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) IssueMember(memberID int) (*Code, error) {
	return s.issue(TypeMember, memberID)
}

func (s *Service) IssueGym(gymID int) (*Code, error) {
	return s.issue(TypeGym, gymID)
}

func (s *Service) issue(typ string, id int) (*Code, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Type: typ,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(id),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
			Issuer:    issuer,
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		zap.L().Error("can't sign QR payload", zap.Error(err))
		return nil, err
	}

	png, err := qrcode.Encode(signed, qrcode.Medium, imageSize)
	if err != nil {
		zap.L().Error("can't render QR image", zap.Error(err))
		return nil, err
	}

	return &Code{
		Token: signed,
		Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

// Verify decodes a scanned string back into an actor identity. Every parse,
// signature, expiry or shape problem comes back as ErrMalformedPayload.
func (s *Service) Verify(raw string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(raw, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformedPayload
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrMalformedPayload
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.Issuer != issuer {
		return nil, ErrMalformedPayload
	}
	if c.Type != TypeMember && c.Type != TypeGym {
		return nil, ErrMalformedPayload
	}

	id, err := strconv.Atoi(c.Subject)
	if err != nil || id <= 0 {
		return nil, ErrMalformedPayload
	}

	return &Identity{Type: c.Type, ID: id}, nil
}
