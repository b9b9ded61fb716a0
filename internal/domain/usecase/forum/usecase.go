package forum

import (
	"errors"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model"
)

// ErrThreadNotFound is returned when no discussion matches the given ID.
var ErrThreadNotFound = errors.New("discussion thread not found")

// UseCase serves the community discussion board. The board is an in-memory
// mock seeded with sample discussions; nothing is persisted across restarts.
type UseCase interface {
	ListThreads(page int, size int) *model.Page[entity.Thread]
	GetThread(id string) (*entity.Thread, error)
	CreateThread(title, author, content, tags string) (*entity.Thread, error)
	AddReply(threadID, author, content string) (*entity.Reply, error)
}
