package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// QueryDate читает необязательный параметр в формате YYYY-MM-DD
// Отсутствующий параметр возвращает nil без ошибки
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// QueryBool читает необязательный логический параметр, def - значение по умолчанию
func QueryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}

// QueryInt читает обязательный целый параметр
func QueryInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
}
