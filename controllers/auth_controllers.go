package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sourdough-shop/auth"
	"github.com/yeremiapane/sourdough-shop/utils"
)

var ErrInvalidPassword = errors.New("Invalid password")

type AuthController struct {
	Verifier auth.Verifier
}

func NewAuthController(verifier auth.Verifier) *AuthController {
	return &AuthController{Verifier: verifier}
}

// Login -> check the shared admin password, return a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !ac.Verifier.Verify(input.Password) {
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidPassword)
		return
	}

	token, err := utils.GenerateToken()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Admin login from %s", c.ClientIP())

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}
