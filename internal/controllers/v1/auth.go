package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/service"
)

// AuthResponse is returned on successful registrations and logins.
type AuthResponse struct {
	Message string `json:"message" example:"Login successful"`
	User    User   `json:"user"`
	auth.TokenPair
}

// RefreshResponse contains a new access token.
type RefreshResponse struct {
	Message     string `json:"message" example:"Token refreshed successfully"`
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// UserResponse contains a user.
type UserResponse struct {
	User User `json:"user"`
}

// Register creates a new user and logs them in
//
//	@Summary		Register
//	@Description	Creates a new user and returns a token pair for them
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	AuthResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		409		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			user	body		RegisterPayload	true	"User"
//	@Router			/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := httputil.BindData(c, &payload); err != nil {
		abort(c, err)
		return
	}

	user, err := service.Register(models.DB, service.Registration{
		Email:     payload.Email,
		Username:  payload.Username,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	})
	if err != nil {
		abort(c, err)
		return
	}

	tokens, err := co.Tokens.IssuePair(user.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message:   "User registered successfully",
		User:      newUser(user),
		TokenPair: tokens,
	})
}

// Login authenticates a user
//
//	@Summary		Login
//	@Description	Authenticates a user with email and password and returns a token pair
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	AuthResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		401			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			credentials	body		LoginPayload	true	"Credentials"
//	@Router			/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var payload LoginPayload
	if err := httputil.BindData(c, &payload); err != nil {
		abort(c, err)
		return
	}

	user, err := service.Authenticate(models.DB, payload.Email, payload.Password)
	if err != nil {
		abort(c, err)
		return
	}

	tokens, err := co.Tokens.IssuePair(user.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message:   "Login successful",
		User:      newUser(user),
		TokenPair: tokens,
	})
}

// Refresh issues a new access token
//
//	@Summary		Refresh access token
//	@Description	Issues a new access token. Needs a refresh token as bearer token.
//	@Tags			Authentication
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	RefreshResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/auth/refresh [post]
func (co Controller) Refresh(c *gin.Context) {
	user, err := service.ActiveUser(models.DB, auth.UserID(c))
	if errors.Is(err, service.ErrUserNotFound) {
		abort(c, auth.ErrTokenInvalid)
		return
	}
	if err != nil {
		abort(c, err)
		return
	}

	token, err := co.Tokens.Issue(user.ID, auth.KindAccess)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{
		Message:     "Token refreshed successfully",
		AccessToken: token,
	})
}

// Me returns the authenticated user
//
//	@Summary		Current user
//	@Description	Returns the user the access token was issued for
//	@Tags			Authentication
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/auth/me [get]
func (co Controller) Me(c *gin.Context) {
	user, err := service.ActiveUser(models.DB, auth.UserID(c))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: newUser(user)})
}

// Logout acknowledges a logout
//
// Tokens are stateless, clients log out by discarding them.
//
//	@Summary		Logout
//	@Description	Acknowledges the logout. Clients must discard their tokens.
//	@Tags			Authentication
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Message
//	@Failure		401	{object}	httperror.Error
//	@Router			/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, Message{Message: "Logout successful. Please remove token from client."})
}
