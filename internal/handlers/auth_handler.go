package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/middleware"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
	"github.com/tiagorodrigues47/barbearia-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Phone            string `json:"phone"`
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
}

// Login aceita cliente (email) ou barbeiro (username)
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// --------- Handlers ---------

// Register cria um cliente; o cadastro só é liberado com um código
// de confirmação emitido pelo barbeiro.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !h.consumeConfirmationCode(req.ConfirmationCode) {
		httperr.BadRequest(c, "invalid_confirmation_code", "Código de confirmação inválido ou já usado.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Client{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Este email já está cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário.")
		return
	}

	client := models.Client{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	token, err := h.generateToken(client.ID, middleware.UserTypeClient)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         client.ID,
			"email":      client.Email,
			"first_name": client.FirstName,
			"last_name":  client.LastName,
			"user_type":  middleware.UserTypeClient,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// login do barbeiro (username)
	if req.Username != "" {
		var barber models.Barber
		if err := h.db.Where("username = ?", req.Username).First(&barber).Error; err != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}

		token, err := h.generateToken(strconv.FormatUint(uint64(barber.ID), 10), middleware.UserTypeBarber)
		if err != nil {
			httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":        barber.ID,
				"username":  barber.Username,
				"name":      barber.Name,
				"user_type": middleware.UserTypeBarber,
			},
			"token": token,
		})
		return
	}

	// login do cliente (email)
	if req.Email == "" {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var client models.Client
	if err := h.db.Where("email = ?", email).First(&client).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.generateToken(client.ID, middleware.UserTypeClient)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         client.ID,
			"email":      client.Email,
			"first_name": client.FirstName,
			"last_name":  client.LastName,
			"user_type":  middleware.UserTypeClient,
		},
		"token": token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	switch c.GetString(middleware.ContextUserType) {
	case middleware.UserTypeBarber:
		barberID := c.MustGet(middleware.ContextBarberID).(uint)

		var barber models.Barber
		if err := h.db.First(&barber, barberID).Error; err != nil {
			httperr.Unauthorized(c, "not_authenticated", "Não autenticado.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":        barber.ID,
			"username":  barber.Username,
			"name":      barber.Name,
			"user_type": middleware.UserTypeBarber,
		})

	case middleware.UserTypeClient:
		clientID := c.GetString(middleware.ContextClientID)

		var client models.Client
		if err := h.db.Where("id = ?", clientID).First(&client).Error; err != nil {
			httperr.Unauthorized(c, "not_authenticated", "Não autenticado.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":         client.ID,
			"email":      client.Email,
			"first_name": client.FirstName,
			"last_name":  client.LastName,
			"user_type":  middleware.UserTypeClient,
		})

	default:
		httperr.Unauthorized(c, "not_authenticated", "Não autenticado.")
	}
}

// --------- Confirmation codes ---------

// GenerateCode emite um código de cadastro (só barbeiro)
func (h *AuthHandler) GenerateCode(c *gin.Context) {
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	cc := models.ConfirmationCode{Code: code}
	if err := h.db.Create(&cc).Error; err != nil {
		httperr.Internal(c, "failed_to_generate_code", "Erro ao gerar código de confirmação.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": cc.Code})
}

func (h *AuthHandler) ListUnusedCodes(c *gin.Context) {
	var codes []models.ConfirmationCode
	if err := h.db.
		Where("used = ?", false).
		Order("created_at DESC").
		Find(&codes).Error; err != nil {
		httperr.Internal(c, "failed_to_list_codes", "Erro ao buscar códigos.")
		return
	}

	c.JSON(http.StatusOK, codes)
}

// VerifyCode checa validade sem consumir (pré-validação do formulário)
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Código é obrigatório.")
		return
	}

	var cc models.ConfirmationCode
	err := h.db.
		Where("code = ? AND used = ?", req.Code, false).
		First(&cc).Error
	if err != nil {
		httperr.BadRequest(c, "invalid_confirmation_code", "Código inválido ou já usado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// consumeConfirmationCode marca o código como usado; retorna false
// se inexistente ou já consumido (update condicional, sem corrida)
func (h *AuthHandler) consumeConfirmationCode(code string) bool {
	res := h.db.
		Model(&models.ConfirmationCode{}).
		Where("code = ? AND used = ?", code, false).
		Update("used", true)
	return res.Error == nil && res.RowsAffected > 0
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(subject, userType string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"typ": userType,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
