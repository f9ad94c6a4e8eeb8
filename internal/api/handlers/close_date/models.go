package close_date

// CloseDateRequest HTTP request model
type CloseDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
