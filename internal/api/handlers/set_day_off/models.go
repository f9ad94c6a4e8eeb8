package set_day_off

import (
	"github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule/models"
)

// SetDayOffRequest HTTP request model
// Пустой список снимает все выходные
type SetDayOffRequest struct {
	Days []string `json:"days" validate:"max=14,dive,required,max=32"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetDayOffRequest) ToServiceRequest() *models.SetDayOffRequest {
	days := r.Days
	if days == nil {
		days = []string{}
	}
	return &models.SetDayOffRequest{Days: days}
}
