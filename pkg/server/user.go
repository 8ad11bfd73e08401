package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Pinarr/pkg/auth"
	"droscher.com/Pinarr/pkg/model"
	api "droscher.com/Pinarr/pkg/server/rest/api/v1"
)

const tokenType = "bearer"

type UserServer struct {
	manager *auth.Manager
	logger  *zap.Logger
}

func NewUserServer(manager *auth.Manager, logger *zap.Logger) *UserServer {
	return &UserServer{manager: manager, logger: logger}
}

// Register mounts login, logout and check on the public group and the
// account routes on the authenticated one.
func (u *UserServer) Register(public *gin.RouterGroup, protected *gin.RouterGroup) {
	public.POST("/auth/login", u.Login)
	public.POST("/auth/logout", u.Logout)
	public.GET("/auth/check", u.Check)

	protected.GET("/auth/me", u.Me)
	protected.POST("/auth/change-password", u.ChangePassword)
	protected.POST("/auth/update-profile", u.UpdateProfile)
}

func (u *UserServer) Login(c *gin.Context) {
	var credentials api.LoginRequest
	if err := bindJSON(c, &credentials); err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	user, err := u.manager.VerifyCredentials(c.Request.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			c.Header("WWW-Authenticate", "Bearer")
		}

		abortWithError(c, u.logger, err)

		return
	}

	token, ok := u.startSession(c, user)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, TokenType: tokenType, Username: user.Username})
}

func (u *UserServer) Logout(c *gin.Context) {
	u.manager.ClearSessionCookie(c.Writer)

	c.JSON(http.StatusOK, message("Logged out"))
}

// Check never fails: any problem with the session reads as not authenticated.
func (u *UserServer) Check(c *gin.Context) {
	user, err := u.manager.CurrentIdentity(c.Request.Context(), c.Request)
	if err != nil {
		if !errors.Is(err, auth.ErrUnauthenticated) {
			u.logger.Error("error checking session", zap.Error(err))
		}

		c.JSON(http.StatusOK, api.AuthCheck{Authenticated: false})

		return
	}

	c.JSON(http.StatusOK, api.AuthCheck{Authenticated: true, Username: user.Username})
}

func (u *UserServer) Me(c *gin.Context) {
	user, ok := u.currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, api.Identity{UserID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin})
}

// ChangePassword revokes every session of the user, the current one included.
func (u *UserServer) ChangePassword(c *gin.Context) {
	user, ok := u.currentUser(c)
	if !ok {
		return
	}

	var request api.ChangePasswordRequest
	if err := bindJSON(c, &request); err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	if _, err := u.manager.ChangePassword(c.Request.Context(), user, request.OldPassword, request.NewPassword); err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	u.manager.ClearSessionCookie(c.Writer)

	c.JSON(http.StatusOK, message("Password updated"))
}

func (u *UserServer) UpdateProfile(c *gin.Context) {
	user, ok := u.currentUser(c)
	if !ok {
		return
	}

	var request api.UpdateProfileRequest
	if err := bindJSON(c, &request); err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	renamed, err := u.manager.Rename(c.Request.Context(), user, request.NewUsername)
	if err != nil {
		abortWithError(c, u.logger, err)

		return
	}

	if _, ok = u.startSession(c, renamed); !ok {
		return
	}

	c.JSON(http.StatusOK, api.Message{Message: "Username updated", Username: renamed.Username})
}

func (u *UserServer) startSession(c *gin.Context, user *model.User) (string, bool) {
	token, err := u.manager.IssueSessionToken(user)
	if err != nil {
		abortWithError(c, u.logger, err)

		return "", false
	}

	u.manager.SetSessionCookie(c.Writer, token)

	return token, true
}

func (u *UserServer) currentUser(c *gin.Context) (*model.User, bool) {
	user, ok := auth.UserFromContext(c.Request.Context())
	if !ok {
		abortWithError(c, u.logger, auth.ErrUnauthenticated)
	}

	return user, ok
}
