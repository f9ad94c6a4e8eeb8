package get_calendar_events

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		return ErrInvalidTimeRange
	}
	return nil
}
