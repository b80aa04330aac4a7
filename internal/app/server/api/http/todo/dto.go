package todo

import "todosync/internal/model"

type listOutput struct {
	Body model.ListEnvelope
}

// itemOutput - ответ с одной задачей. Status задает код ответа:
// отказ (404, 422) все равно отдается конвертом с success=false.
type itemOutput struct {
	Status int
	Body   model.ItemEnvelope
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"ID задачи"`
}

type createInput struct {
	Body request
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID задачи"`
	Body request
}

type request struct {
	Name        string `json:"name" example:"Buy milk" doc:"Название задачи"`
	IsCompleted bool   `json:"is_completed" required:"false" doc:"Выполнена ли задача"`
}
