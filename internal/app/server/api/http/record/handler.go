package record

import (
	"context"
	"errors"
	"fmt"

	"sensorlist/internal/app/server/api/http/envelope"
	"sensorlist/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    record.Servicer
	schema     record.Schema
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, schema record.Schema, log *slog.Logger, mws huma.Middlewares) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		service:    service,
		schema:     schema,
		log:        log.With(slog.String("component", "record_handler")),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	res, err := h.service.List(ctx)
	if err != nil {
		return nil, h.mapError(0, err)
	}

	return &listOutput{
		Body: listResponse{
			Status:  envelope.StatusSuccess,
			Results: res.Total,
			Notes:   res.Records,
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*dataOutput, error) {
	rec, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(input.ID, err)
	}

	return success(rec), nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*dataOutput, error) {
	rec, err := h.schema.DecodeCreate(input.RawBody)
	if err != nil {
		return nil, h.mapError(0, err)
	}

	created, err := h.service.Create(ctx, rec)
	if err != nil {
		return nil, h.mapError(rec.ID, err)
	}

	return success(created), nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*dataOutput, error) {
	attrs, err := h.schema.DecodeUpdate(input.ID, input.RawBody)
	if err != nil {
		return nil, h.mapError(input.ID, err)
	}

	updated, err := h.service.Update(ctx, input.ID, attrs)
	if err != nil {
		return nil, h.mapError(input.ID, err)
	}

	return success(updated), nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.mapError(input.ID, err)
	}
	return &struct{}{}, nil
}

// mapError переводит доменные ошибки в статус и сообщение ответа.
func (h *Handler) mapError(id int, err error) error {
	switch {
	case errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound(fmt.Sprintf("Note with ID: %d not found", id))
	case errors.Is(err, record.ErrConflict):
		return huma.Error409Conflict("Duplicate ID error")
	case errors.Is(err, record.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	}

	h.log.Error("request failed", slog.Int("record_id", id), slog.String("error", err.Error()))
	return huma.Error500InternalServerError(err.Error())
}

func success(rec *record.Record) *dataOutput {
	return &dataOutput{
		Body: dataResponse{
			Status: envelope.StatusSuccess,
			Data:   rec,
		},
	}
}
