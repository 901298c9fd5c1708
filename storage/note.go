package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MaxTitleLength   = 100
	MaxContentLength = 2000
)

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrTitleRequired  = errors.New("title is required")
	ErrTitleTooLong   = fmt.Errorf("title must be at most %d characters", MaxTitleLength)
	ErrContentTooLong = fmt.Errorf("content must be at most %d characters", MaxContentLength)
)

type Note struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Favorite  bool      `json:"favorite"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Buffer holds the editable fields of a note before they are committed.
type Buffer struct {
	Title    string `json:"title" validate:"notblank,max=100"`
	Content  string `json:"content" validate:"max=2000"`
	Favorite bool   `json:"favorite"`
}

func (n Note) Buffer() Buffer {
	return Buffer{
		Title:    n.Title,
		Content:  n.Content,
		Favorite: n.Favorite,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate reports every rule the buffer breaks. The returned error matches
// ErrTitleRequired, ErrTitleTooLong and ErrContentTooLong with errors.Is.
func (b Buffer) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs []error
	for _, fe := range fieldErrs {
		switch {
		case fe.Field() == "Title" && fe.Tag() == "notblank":
			errs = append(errs, ErrTitleRequired)
		case fe.Field() == "Title" && fe.Tag() == "max":
			errs = append(errs, ErrTitleTooLong)
		case fe.Field() == "Content" && fe.Tag() == "max":
			errs = append(errs, ErrContentTooLong)
		default:
			errs = append(errs, fmt.Errorf("%s: failed %q", fe.Field(), fe.Tag()))
		}
	}
	return errors.Join(errs...)
}
