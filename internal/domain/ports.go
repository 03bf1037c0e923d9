package domain

import "context"

// KVStore is a durable string key-value store. Implementations can be
// file-backed (bolt), in-memory, or anything else that survives restarts.
type KVStore interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ImagePicker lets the user choose a photo. ok is false when the user
// cancels; the reference is otherwise opaque to the recipe book.
type ImagePicker interface {
	Pick(ctx context.Context) (ref string, ok bool, err error)
}

// Confirmer asks the user a yes/no question and blocks until answered.
// An error (for example a cancelled context) counts as a "no".
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string, view View) (*Intent, error)
}

// Notifier delivers messages to the user. NotifyUrgent is used for
// failures the user must see (the alert dialog).
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
