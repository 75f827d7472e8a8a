package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Avadhut20/roxiler/pkg/resp"
	"github.com/Avadhut20/roxiler/services"
	"github.com/Avadhut20/roxiler/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
}

// POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.auth.Register(req.Name, req.Email, req.Password, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, user)
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/me (Protected)
func (ac *AuthController) Me(c *gin.Context) {
	uid, ok := utils.CurrentUserID(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	user, err := ac.auth.GetProfile(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, user)
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// PUT /api/user/password (Protected)
// Always operates on the caller's own account.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	uid, ok := utils.CurrentUserID(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.auth.ChangePassword(uid, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}
