package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

type AuthHandler struct {
	issuer ports.TokenIssuer
	users  ports.UserRepository
}

func NewAuthHandler(issuer ports.TokenIssuer, users ports.UserRepository) *AuthHandler {
	return &AuthHandler{issuer: issuer, users: users}
}

// tokenRequest is the OAuth2 password grant form. client_id, client_secret
// and scope are accepted and ignored.
type tokenRequest struct {
	GrantType    string `form:"grant_type" validate:"omitempty,eq=password"`
	Username     string `form:"username"   validate:"required"`
	Password     string `form:"password"   validate:"required"`
	Scope        string `form:"scope"`
	ClientID     string `form:"client_id"`
	ClientSecret string `form:"client_secret"`
}

type registerRequest struct {
	Username string `json:"username"  validate:"required"`
	Password string `json:"password"  validate:"required,min=4"`
	FullName string `json:"full_name"`
	Email    string `json:"email"     validate:"omitempty,email"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin viewer"`
}

// Token exchanges credentials for a bearer token.
//
// @Summary      Password grant
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  domain.Token
// @Failure      400       {object}  map[string]string
// @Failure      422       {object}  map[string]any
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tok, err := h.issuer.Issue(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tok)
}

// Register creates an operator account. Admin only.
//
// @Summary      Register an operator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Operator details"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.issuer.Register(c.Request().Context(), req.Username, req.Password, req.FullName, req.Email, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Me returns the signed-in operator.
//
// @Summary      Current operator
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me/personal-details [get]
func (h *AuthHandler) Me(c echo.Context) error {
	username, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	user, err := h.users.FindByUsername(c.Request().Context(), username)
	if err != nil {
		// A valid token for a deleted account.
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}
