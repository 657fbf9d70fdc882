package inquiry

import (
	"fmt"

	"github.com/google/uuid"
)

// Composer turns validated forms into chat links for one recipient.
type Composer struct {
	Number string
	Brand  string

	// NewRef generates inquiry references; uuid.NewString when nil.
	NewRef func() string
}

// Result is a composed inquiry ready to hand off to WhatsApp.
type Result struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
	Link      string `json:"link"`
}

// Compose normalizes and validates f, then builds its message and link.
// Validation failures are returned as FieldErrors.
func (c *Composer) Compose(f Form) (Result, error) {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	ref := c.ref()
	msg := f.Message(c.Brand, ref)
	link, err := Link(c.Number, msg)
	if err != nil {
		return Result{}, fmt.Errorf("building chat link: %w", err)
	}
	return Result{Reference: ref, Message: msg, Link: link}, nil
}

func (c *Composer) ref() string {
	if c.NewRef != nil {
		return c.NewRef()
	}
	return uuid.NewString()
}
