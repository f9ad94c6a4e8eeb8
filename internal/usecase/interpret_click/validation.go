package interpret_click

import (
	"fmt"

	"github.com/m04kA/SMC-SalonScheduleService/internal/scheduling"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.VisibleMonth < 1 || req.VisibleMonth > 12 {
		return fmt.Errorf("%w: month must be in 1..12", ErrInvalidInput)
	}

	if req.VisibleYear < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	return nil
}

// resolveOptions выбирает набор флагов для экрана
func resolveOptions(req *Request) (scheduling.ClickOptions, error) {
	switch req.View {
	case ViewDashboard:
		return scheduling.DashboardClickOptions, nil
	case ViewSchedule, "":
		return scheduling.ScheduleClickOptions, nil
	case ViewCustom:
		if req.Options == nil {
			return scheduling.ClickOptions{}, fmt.Errorf("%w: custom view requires options", ErrInvalidInput)
		}
		return *req.Options, nil
	default:
		return scheduling.ClickOptions{}, fmt.Errorf("%w: %q", ErrUnknownView, req.View)
	}
}
