package interpret_click

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

// View экран календаря, с которого пришёл клик
type View string

const (
	ViewDashboard View = "dashboard" // панель записей
	ViewSchedule  View = "schedule"  // редактор закрытых дней
	ViewCustom    View = "custom"    // флаги берутся из запроса
)

// Метки исхода для метрики кликов
const (
	outcomeActionable = "actionable"
	outcomeBlocked    = "blocked"
)

// Request модель запроса на интерпретацию клика
type Request struct {
	Date         time.Time                // Нажатая дата
	VisibleMonth time.Month               // Отображаемый месяц
	VisibleYear  int                      // Отображаемый год
	View         View                     // Экран календаря
	Options      *scheduling.ClickOptions // Флаги для ViewCustom
}

// Response результат интерпретации клика
type Response struct {
	Actionable      bool
	Result          *scheduling.ClickResult
	SuggestedAction *scheduling.Decision // только для ViewSchedule
}
