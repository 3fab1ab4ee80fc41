package identityservice

// User модель пользователя из IdentityService
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Title   *string `json:"title,omitempty"`
	IsAdmin bool    `json:"is_admin"`
}

// Contact возвращает контактную строку пользователя
// Приоритет: email, затем телефон, затем должность, затем имя
func (u *User) Contact() string {
	if u.Email != nil && *u.Email != "" {
		return *u.Email
	}
	if u.Phone != nil && *u.Phone != "" {
		return *u.Phone
	}
	if u.Title != nil && *u.Title != "" {
		return *u.Title
	}
	return u.Name
}

// responsibilityResponse ответ проверки ответственности за объект
type responsibilityResponse struct {
	Responsible bool `json:"responsible"`
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
