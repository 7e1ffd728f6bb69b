package handlers

import (
	"database/sql"
	"net/http"
	"time"

	intconfig "bolao-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the session user payload returned by login/register.
type AuthUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by email or username and issues an HS256 token.
//
// POST /api/auth/login
func Login(env intconfig.Env) gin.HandlerFunc {
	secret := []byte(env.JWTSecret)
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		var (
			user         AuthUser
			passwordHash string
		)

		err := intconfig.DB.QueryRow(`
			SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''), COALESCE(password_hash,''), COALESCE(role,'user'), COALESCE(status,'active')
			FROM users_profiles
			WHERE email = ? OR username = ?
		`, req.Email, req.Email).Scan(
			&user.ID,
			&user.Name,
			&user.Username,
			&user.Email,
			&passwordHash,
			&user.Role,
			&user.Status,
		)

		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail/usuário ou senha incorretos"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao consultar usuário: " + err.Error()})
			}
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail/usuário ou senha incorretos"})
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"role":    user.Role,
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})

		tokenString, err := token.SignedString(secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": tokenString,
			"user":  user,
		})
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a regular (non-admin) profile.
//
// POST /api/auth/register
func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if !BindJSONOrError(c, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "e-mail e senha são obrigatórios"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar hash de senha"})
			return
		}

		res, err := intconfig.DB.Exec(`
			INSERT INTO users_profiles (name, username, email, password_hash, role, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, 'user', 'active', NOW(), NOW())
		`, req.Name, req.Username, req.Email, string(hash))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao criar usuário: " + err.Error()})
			return
		}

		id, _ := res.LastInsertId()
		c.JSON(http.StatusCreated, gin.H{
			"user": AuthUser{
				ID:       id,
				Name:     req.Name,
				Username: req.Username,
				Email:    req.Email,
				Role:     "user",
				Status:   "active",
			},
		})
	}
}
