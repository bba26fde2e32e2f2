package availability

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (формат даты или времени, размер компании, вместимость стола, start >= end)
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrConfigurationIncomplete возвращается, когда в конфигурации нет расписания на день недели
	ErrConfigurationIncomplete = errors.New("availability: configuration incomplete")

	// ErrConflictDetected возвращается, когда назначенные столы заняты или недоступны
	ErrConflictDetected = errors.New("availability: conflict detected")
)

// ConflictError перечисляет столы, которые нельзя назначить бронированию
// errors.Is(err, ErrConflictDetected) == true
type ConflictError struct {
	TableIDs []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: tables [%s]", ErrConflictDetected, strings.Join(e.TableIDs, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflictDetected
}

// ConflictingTables извлекает список конфликтующих столов из цепочки ошибок
func ConflictingTables(err error) ([]string, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.TableIDs, true
	}
	return nil, false
}
