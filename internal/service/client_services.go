package service

import (
	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
}

func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(sessions, serverAdapter, logger),
		NoteService: NewClientNoteService(serverAdapter, logger),
	}
}
