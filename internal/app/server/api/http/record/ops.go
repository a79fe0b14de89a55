package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const basePath = "/api/v1/records"

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list",
		Method:      http.MethodGet,
		Path:        basePath,
		Summary:     "Список записей",
		Description: "Все строки таблицы по возрастанию id, без пагинации.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "records-create",
		Method:        http.MethodPost,
		Path:          basePath,
		Summary:       "Создать запись",
		Description:   "id задаёт клиент. Повторный id возвращает 409.",
		Tags:          []string{"records"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusConflict},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-find",
		Method:      http.MethodGet,
		Path:        basePath + "/{id}",
		Summary:     "Получить запись",
		Tags:        []string{"records"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-update",
		Method:      http.MethodPut,
		Path:        basePath + "/{id}",
		Summary:     "Обновить запись",
		Description: "Перезаписывает все атрибуты и возвращает сохранённую строку.",
		Tags:        []string{"records"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "records-delete",
		Method:        http.MethodDelete,
		Path:          basePath + "/{id}",
		Summary:       "Удалить запись",
		Tags:          []string{"records"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound},
		Middlewares:   h.middleware,
	}
}
