package appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduleService/pkg/txmanager"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// queryError оборачивает ошибку выполнения запроса в kind
// Отмена из-за конкурентной транзакции дополнительно помечается txmanager.ErrSerialization
func queryError(kind error, step string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w: %s: %v", kind, txmanager.ErrSerialization, step, err)
	}
	return fmt.Errorf("%w: %s: %v", kind, step, err)
}
