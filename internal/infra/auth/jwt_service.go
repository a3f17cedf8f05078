package auth

import (
	"strings"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var signingMethod = jwt.SigningMethodHS256

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // HMAC key shared by Issue and Validate.
	ttl    time.Duration    // Lifetime applied by callers that use TTL().
	issuer string           // Optional "iss" claim; enforced on Validate when set.
	now    func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return newJWTService(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer, time.Now), nil
}

func newJWTService(secret string, ttl time.Duration, issuer string, now func() time.Time) *jwtService {
	if ttl <= 0 {
		ttl = service.DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    now,
	}
}

// Issue signs a token for the subject. A non-positive ttl yields a token that is already expired.
func (s *jwtService) Issue(subjectID uuid.UUID, subjectEmail string, ttl time.Duration) (*entity.IssuedToken, error) {
	// Claims carry whole seconds; keep the returned times identical to what a validator will read.
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl).Truncate(time.Second)

	claims := &service.Claims{
		UserID: subjectID.String(),
		Email:  subjectEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithCause(errors.Wrap(err, "sign token"))
	}

	return &entity.IssuedToken{
		Token:        signed,
		SubjectID:    subjectID,
		SubjectEmail: subjectEmail,
		IssuedAt:     issuedAt,
		ExpiresAt:    expiresAt,
	}, nil
}

// Validate checks the MAC over the raw header and payload before anything is decoded,
// so any altered byte of an issued token is reported as ErrTokenInvalidSignature.
func (s *jwtService) Validate(tokenString string) (*entity.AuthContext, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, domainerrors.ErrTokenMalformed.WithCause(errors.New("empty token"))
	}

	parser := s.parser()
	if err := s.verifySignature(parser, tokenString); err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenMalformed.WithCause(errors.New("token not valid"))
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WithCause(errors.Wrap(err, "parse subject"))
	}
	if claims.UserID != "" && claims.UserID != claims.Subject {
		return nil, domainerrors.ErrTokenMalformed.WithCause(errors.New("userId claim does not match subject"))
	}

	return &entity.AuthContext{
		SubjectID:    subjectID,
		SubjectEmail: claims.Email,
	}, nil
}

func (s *jwtService) parser() *jwt.Parser {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	return jwt.NewParser(opts...)
}

// verifySignature recomputes the HS256 MAC over "header.payload". Strict decoding rejects
// a signature whose unused trailing bits were changed.
func (s *jwtService) verifySignature(parser *jwt.Parser, tokenString string) error {
	segments := strings.Split(tokenString, ".")
	if len(segments) != 3 {
		return domainerrors.ErrTokenMalformed.WithCause(errors.Errorf("token has %d segments", len(segments)))
	}

	sig, err := parser.DecodeSegment(segments[2])
	if err != nil {
		return domainerrors.ErrTokenInvalidSignature.WithCause(errors.Wrap(err, "decode signature"))
	}

	signingString := segments[0] + "." + segments[1]
	if err := signingMethod.Verify(signingString, sig, s.secret); err != nil {
		return domainerrors.ErrTokenInvalidSignature.WithCause(err)
	}

	return nil
}

// TTL returns the configured lifetime for issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

// classifyTokenError maps jwt parse failures onto the domain token errors. The MAC has
// already been checked, so a signature error here means an algorithm other than HS256.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainerrors.ErrTokenMalformed.WithCause(err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domainerrors.ErrTokenInvalidSignature.WithCause(err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WithCause(err)
	default:
		// Missing exp, wrong issuer, nbf in the future.
		return domainerrors.ErrTokenMalformed.WithCause(err)
	}
}
