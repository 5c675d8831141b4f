package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/portify/portify-api/internal/application/usecase/auth"
	"github.com/portify/portify-api/pkg/apperror"
)

type AuthHandler struct {
	signUpUseCase *authUC.SignUpUseCase
	loginUseCase  *authUC.LoginUseCase
	logoutUseCase *authUC.LogoutUseCase
}

func NewAuthHandler(signUp *authUC.SignUpUseCase, login *authUC.LoginUseCase, logout *authUC.LogoutUseCase) *AuthHandler {
	return &AuthHandler{
		signUpUseCase: signUp,
		loginUseCase:  login,
		logoutUseCase: logout,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for signup", err))
		return
	}

	input := authUC.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Username: req.Username,
	}
	output, err := h.signUpUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"error":        nil,
		"success":      true,
		"access_token": output.AccessToken,
		"username":     output.Username,
	})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for signin", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":        nil,
		"success":      true,
		"access_token": output.AccessToken,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token, ok := c.Get(GinContextKeyToken)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("token not found in context"))
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), token.(string)); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil, "success": true})
}
