package verify_password

// PasswordVerifier проверяет пароль администратора
type PasswordVerifier interface {
	Configured() bool
	Verify(password string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
