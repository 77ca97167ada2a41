package ioshell

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate wraps go-playground/validator with the error formatting this
// module's ErrInvalidInput needs: one combined message naming every
// failing field, wrapped so errors.Is(err, ErrInvalidInput) still holds.
var validate = validator.New()

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}
