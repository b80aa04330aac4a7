package model

// Todo - задача в том виде, в котором ее отдает API.
// Временные метки приходят строками и не разбираются на клиенте.
type Todo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TodoUpsert - тело запроса на создание и обновление (без id и меток времени).
type TodoUpsert struct {
	Name        string `json:"name"`
	IsCompleted bool   `json:"is_completed"`
}

// ListEnvelope оборачивает ответ GET /todos.
type ListEnvelope struct {
	Success bool   `json:"success"`
	Data    []Todo `json:"data"`
	Total   int    `json:"total"`
}

// ItemEnvelope оборачивает ответы с одной задачей (get, create, update, delete).
type ItemEnvelope struct {
	Success bool   `json:"success"`
	Data    Todo   `json:"data"`
	Message string `json:"message,omitempty"`
}
