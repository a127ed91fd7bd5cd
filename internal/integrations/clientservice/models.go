package clientservice

// Client модель клиента из ClientService
type ClientProfile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

// FullName возвращает полное имя клиента для денормализации в записи
func (c *ClientProfile) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ErrorResponse модель ошибки от ClientService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
