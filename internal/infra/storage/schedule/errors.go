package schedule

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonScheduleService/pkg/txmanager"
)

var (
	// ErrEntryNotFound возвращается, когда запись расписания не найдена
	ErrEntryNotFound = errors.New("schedule.repository: schedule entry not found")

	// ErrClosedDateExists возвращается, когда дата уже отмечена как закрытая (нарушение уникального индекса)
	ErrClosedDateExists = errors.New("schedule.repository: closed date already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

// pqUniqueViolation код ошибки PostgreSQL unique_violation
const pqUniqueViolation = "23505"

// isUniqueViolation проверяет, что ошибка - нарушение уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}

// queryError оборачивает ошибку выполнения запроса в kind
// Отмена из-за конкурентной транзакции дополнительно помечается txmanager.ErrSerialization
func queryError(kind error, step string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w: %s: %v", kind, txmanager.ErrSerialization, step, err)
	}
	return fmt.Errorf("%w: %s: %v", kind, step, err)
}
