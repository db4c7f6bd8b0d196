package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SaveCommand is a command to persist a batch of scraped product records.
// Records are kept as raw JSON, the consumer normalizes them.
type SaveCommand struct {
	Source  string            `json:"source"`
	Records []json.RawMessage `json:"records"`
}

// SaveCommander sends save commands.
type SaveCommander struct {
	sender Sender
}

// NewSaveCommander returns new SaveCommander using provided sender for sending messages.
func NewSaveCommander(sender Sender) SaveCommander {
	return SaveCommander{
		sender: sender,
	}
}

// SendSaveCommand sends save command with provided source and records.
func (c SaveCommander) SendSaveCommand(ctx context.Context, source string, records []json.RawMessage) error {
	cmd := SaveCommand{
		Source:  source,
		Records: records,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal save command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
