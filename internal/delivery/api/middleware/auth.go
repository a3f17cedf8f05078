package middleware

import (
	"strings"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "bearer"

// AuthMiddleware binds the identity carried by a bearer token to the request.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects the request with ErrUnauthorized unless it carries a valid
// "Authorization: Bearer <token>" header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawToken, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		authCtx, err := m.authUC.Authorize(c.Request().Context(), rawToken)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetAuthContext(c, authCtx)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

// GetAuthContext returns the identity bound by Authenticate.
func GetAuthContext(c echo.Context) (*entity.AuthContext, bool) {
	return deliverycontext.GetAuthContext(c)
}

// GetUserID returns the authenticated subject id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	authCtx, ok := deliverycontext.GetAuthContext(c)
	if !ok {
		return uuid.Nil, false
	}

	return authCtx.SubjectID, true
}
