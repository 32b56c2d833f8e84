package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// TeleContext is a recording stub for tele.Context used in handler tests.
// Only the methods the handlers call are implemented; the embedded interface
// panics on anything else, which keeps the stub honest.
type TeleContext struct {
	tele.Context

	User *tele.User
	Msg  string
	CB   *tele.Callback

	Sent      []string
	Responses []*tele.CallbackResponse
	Deleted   bool
}

// NewTeleContext creates a stub context for a text message from the given user
func NewTeleContext(userID int64, text string) *TeleContext {
	return &TeleContext{
		User: &tele.User{ID: userID},
		Msg:  text,
	}
}

// NewCallbackContext creates a stub context for a callback with the given data
func NewCallbackContext(userID int64, data string) *TeleContext {
	return &TeleContext{
		User: &tele.User{ID: userID},
		CB:   &tele.Callback{Data: data},
	}
}

func (c *TeleContext) Sender() *tele.User { return c.User }

func (c *TeleContext) Text() string { return c.Msg }

func (c *TeleContext) Callback() *tele.Callback { return c.CB }

func (c *TeleContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, fmt.Sprint(what))
	return nil
}

func (c *TeleContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, &tele.CallbackResponse{})
		return nil
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

func (c *TeleContext) Delete() error {
	c.Deleted = true
	return nil
}

// LastSent returns the most recent message sent through the context
func (c *TeleContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}
