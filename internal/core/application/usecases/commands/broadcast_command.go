package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// MaxBroadcastLength matches the longest text message chat clients accept.
const MaxBroadcastLength = 4096

var ErrBroadcastCommandIsNotConstructed = errors.New(
	"BroadcastCommand must be created via NewBroadcastCommand constructor",
)

// BroadcastCommand is a free-text announcement from a dispatcher to every
// active account of the chosen audience.
type BroadcastCommand struct { //nolint:recvcheck //using for validation
	audience Party
	text     string
	actorID  int64

	guard guard.ConstructorGuard
}

func NewBroadcastCommand(audience Party, text string, actorID int64) (BroadcastCommand, error) {
	cmd := BroadcastCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAudience(audience),
		cmd.setText(text),
		cmd.setActorID(actorID),
	); err != nil {
		return BroadcastCommand{}, err
	}

	return cmd, nil
}

func (c BroadcastCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastCommandIsNotConstructed)
}

func (c BroadcastCommand) Audience() Party { return c.audience }
func (c BroadcastCommand) Text() string { return c.text }
func (c BroadcastCommand) ActorID() int64 { return c.actorID }

func (c *BroadcastCommand) setAudience(audience Party) error {
	p, err := ParseParty(string(audience))
	if err != nil {
		return err
	}
	c.audience = p
	return nil
}

func (c *BroadcastCommand) setText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	if n := utf8.RuneCountInString(text); n > MaxBroadcastLength {
		return errs.NewValueIsOutOfRangeError("text length", n, 1, MaxBroadcastLength)
	}
	c.text = text
	return nil
}

func (c *BroadcastCommand) setActorID(id int64) error {
	if err := requirePositiveID("actor id", id); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
