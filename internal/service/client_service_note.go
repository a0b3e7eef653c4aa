package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

type clientNoteService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter, logger: logger}
}

func (n *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := n.adapter.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", mapAdapterError(err))
	}

	return notes, nil
}

func (n *clientNoteService) Get(ctx context.Context, noteID int64) (models.Note, error) {
	note, err := n.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note: %w", mapAdapterError(err))
	}

	return note, nil
}

func (n *clientNoteService) Create(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	if req.Title == "" || req.Content == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := n.adapter.CreateNote(ctx, req)
	if err != nil {
		return models.Note{}, fmt.Errorf("error creating note: %w", mapAdapterError(err))
	}

	return note, nil
}

func (n *clientNoteService) Update(ctx context.Context, noteID int64, req models.NoteRequest) (models.Note, error) {
	if req.Title == "" || req.Content == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := n.adapter.UpdateNote(ctx, noteID, req)
	if err != nil {
		return models.Note{}, fmt.Errorf("error updating note: %w", mapAdapterError(err))
	}

	return note, nil
}

func (n *clientNoteService) Delete(ctx context.Context, noteID int64) error {
	if err := n.adapter.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("error deleting note: %w", mapAdapterError(err))
	}

	return nil
}
