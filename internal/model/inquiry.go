package model

// Inquiry заявка с контактной формы сайта.
// Отдельная сущность со своим хранилищем, не связана с бронированиями.
type Inquiry struct {
	ID        string `json:"id"`                  // "CT-XXXXXX"
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"eventDate,omitempty"` // Желаемая дата события, опционально
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // Миллисекунды с эпохи
}

// MaskedPhone телефон с маскировкой всех цифр кроме последних четырёх
func (i *Inquiry) MaskedPhone() string {
	runes := []rune(i.Phone)
	if len(runes) <= 4 {
		return i.Phone
	}
	masked := make([]rune, len(runes))
	for idx := range runes {
		if idx < len(runes)-4 {
			masked[idx] = '*'
		} else {
			masked[idx] = runes[idx]
		}
	}
	return string(masked)
}
