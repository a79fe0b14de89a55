package record

import (
	"sensorlist/internal/domain/record"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Status  string          `json:"status" example:"success"`
	Results int             `json:"results" example:"1" doc:"Количество записей"`
	Notes   []record.Record `json:"notes"`
}

type dataOutput struct {
	Body dataResponse
}

type dataResponse struct {
	Status string         `json:"status" example:"success"`
	Data   *record.Record `json:"data"`
}

type findInput struct {
	ID int `path:"id" minimum:"-2147483648" maximum:"2147483647" example:"1" doc:"ID записи"`
}

// Тело разбирается схемой записи, набор полей задаётся конфигурацией.
type createInput struct {
	RawBody []byte
}

type updateInput struct {
	ID      int    `path:"id" minimum:"-2147483648" maximum:"2147483647" example:"1" doc:"ID записи"`
	RawBody []byte
}

type deleteInput struct {
	ID int `path:"id" minimum:"-2147483648" maximum:"2147483647" example:"1" doc:"ID записи"`
}
