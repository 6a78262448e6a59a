// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/configs"
	"madrasahku_backend/internals/features/authz"
	authModel "madrasahku_backend/internals/features/users/auth/model"
	authService "madrasahku_backend/internals/features/users/auth/service"
	userModel "madrasahku_backend/internals/features/users/user/model"
	helpers "madrasahku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type registerRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// =========================
// Register
// =========================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	hashed, err := authService.HashPassword(body.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(body.UserName),
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: body.Password, // divalidasi dulu dalam bentuk plain
	}
	if err := user.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	user.Password = hashed

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

// =========================
// Login
// =========================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).
		First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !authService.CheckPassword(user.Password, body.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return ctrl.issueTokens(c, &user)
}

// =========================
// Login via Google
// =========================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body googleLoginRequest
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Printf("[ERROR] verifikasi google id_token: %v", err)
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Google token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Google token tidak valid")
	}

	var user userModel.UserModel
	err = ctrl.DB.Where("google_id = ? OR email = ?", claimSet.Sub, claimSet.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// auto-provision akun baru dari akun Google
		sub := claimSet.Sub
		user = userModel.UserModel{
			UserName: claimSet.Name,
			Email:    strings.ToLower(claimSet.Email),
			Password: "-google-login-",
			GoogleID: &sub,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	} else if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return ctrl.issueTokens(c, &user)
}

// =========================
// Refresh token
// =========================
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refresh := strings.TrimSpace(c.Cookies("refresh_token"))
	if refresh == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}
	userID, err := authService.ParseRefreshToken(refresh)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return ctrl.issueTokens(c, &user)
}

// =========================
// Logout (blacklist access token)
// =========================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := helpers.GetRawAccessToken(c)
	if tokenString != "" {
		entry := authModel.TokenBlacklist{
			Token:     tokenString,
			ExpiredAt: time.Now().Add(authService.AccessTokenTTL),
		}
		if err := ctrl.DB.Create(&entry).Error; err != nil {
			log.Printf("[ERROR] simpan blacklist: %v", err)
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

// =========================
// Me — konteks tenant + capability untuk gating UI
// =========================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := helpers.GetUserUUID(c)

	tc, err := authz.ResolveTenantContext(c.UserContext(), ctrl.DB, userID)
	if errors.Is(err, authz.ErrUnprovisioned) {
		// belum punya madrasah → frontend arahkan ke setup
		return helpers.JsonOK(c, "Akun belum terhubung ke madrasah", fiber.Map{
			"provisioned": false,
		})
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve akses")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"provisioned":  true,
		"user_id":      tc.UserID,
		"madrasah_id":  tc.MadrasahID,
		"role":         tc.Role,
		"capabilities": authz.CapabilitiesFor(tc.Role),
	})
}

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user *userModel.UserModel) error {
	access, err := authService.CreateAccessToken(user.ID, user.UserName)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := authService.CreateRefreshToken(user.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Expires:  time.Now().Add(authService.RefreshTokenTTL),
	})

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}
