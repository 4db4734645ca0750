package entity

import (
	"time"
)

// CommentItemType selects which collection a comment lives in and which
// parent collection its itemId references.
type CommentItemType string

const (
	CommentOnProduct CommentItemType = "producto"
	CommentOnService CommentItemType = "servicio"
	CommentOnListing CommentItemType = "empleo"
)

// ParseCommentItemType validates a raw item type value.
func ParseCommentItemType(s string) (CommentItemType, bool) {
	t := CommentItemType(s)
	switch t {
	case CommentOnProduct, CommentOnService, CommentOnListing:
		return t, true
	}
	return "", false
}

// Comment references a parent item by id; the item owner is denormalized so
// "received" queries need no parent fetch.
type Comment struct {
	ID       string          `json:"id" firestore:"id"`
	ItemID   string          `json:"itemId" firestore:"itemId"`
	ItemType CommentItemType `json:"itemType" firestore:"itemType"`

	AuthorID       string `json:"userId" firestore:"userId"`
	AuthorName     string `json:"nombreUsuario,omitempty" firestore:"nombreUsuario,omitempty"`
	AuthorPhotoURL string `json:"fotoUsuario,omitempty" firestore:"fotoUsuario,omitempty"`
	TargetUserID   string `json:"propietarioId" firestore:"propietarioId"`

	Content   string    `json:"contenido" firestore:"contenido"`
	Rating    int       `json:"puntuacion,omitempty" firestore:"puntuacion,omitempty"`
	CreatedAt time.Time `json:"fechaCreacion" firestore:"fechaCreacion"`
}
