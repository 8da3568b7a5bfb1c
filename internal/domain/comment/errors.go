package comment

import "errors"

var (
	// ErrCommentNotFound indicates the comment doesn't exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrEmptyContent indicates a comment with no text.
	ErrEmptyContent = errors.New("comment content cannot be empty")
	// ErrEmojiRequired indicates a reaction toggle with no emoji.
	ErrEmojiRequired = errors.New("reaction emoji required")
)
