package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

// AdminPasswordHeader заголовок с паролем администратора
const AdminPasswordHeader = "X-Admin-Password"

const (
	msgAdminRequired      = "требуется пароль администратора"
	msgAdminInvalid       = "неверный пароль администратора"
	msgAdminNotConfigured = "пароль администратора не настроен"
)

// AdminAuth проверяет пароль администратора по bcrypt-хешу из конфигурации
type AdminAuth struct {
	hash   []byte
	logger Logger
}

// NewAdminAuth создает проверку пароля, пустой хеш означает, что доступ закрыт
func NewAdminAuth(passwordHash string, logger Logger) *AdminAuth {
	return &AdminAuth{
		hash:   []byte(passwordHash),
		logger: logger,
	}
}

// HashPassword возвращает bcrypt-хеш пароля для конфигурации
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Configured сообщает, задан ли хеш пароля
func (a *AdminAuth) Configured() bool {
	return len(a.hash) > 0
}

// Verify сравнивает пароль с хешем
func (a *AdminAuth) Verify(password string) bool {
	if !a.Configured() || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil
}

// Middleware пропускает запрос только с верным паролем в заголовке X-Admin-Password
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Configured() {
			a.logger.Error("%s %s - Admin password hash is not configured", r.Method, r.URL.Path)
			handlers.RespondServiceUnavailable(w, msgAdminNotConfigured)
			return
		}

		password := r.Header.Get(AdminPasswordHeader)
		if password == "" {
			a.logger.Warn("%s %s - Missing admin password", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgAdminRequired)
			return
		}

		if !a.Verify(password) {
			a.logger.Warn("%s %s - Invalid admin password", r.Method, r.URL.Path)
			handlers.RespondForbidden(w, msgAdminInvalid)
			return
		}

		next.ServeHTTP(w, r)
	})
}
