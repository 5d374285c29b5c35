package notify

//go:generate mockgen -destination=../mocks/mock_sender.go -package=mocks github.com/ErDev77/pc-configurator-sub001/internal/notify Sender,DirectSender

import "context"

// Sender delivers a message to a preconfigured destination (the shop's
// notification inbox or operations chat). Implementations never retry;
// a failed delivery is the caller's to log and ignore.
type Sender interface {
	Send(ctx context.Context, subject, message string) error
}

// DirectSender additionally delivers to an explicit recipient, used for
// per-admin mail such as verification codes.
type DirectSender interface {
	Sender
	SendTo(ctx context.Context, recipient, subject, message string) error
}
