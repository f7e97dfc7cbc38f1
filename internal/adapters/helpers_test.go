package adapters

import (
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func errMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return builder.Msg
	}
	return err.Error()
}
