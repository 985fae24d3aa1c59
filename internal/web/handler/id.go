package handler

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrBadID is returned when an identity can not be parsed.
var ErrBadID = errors.New("id is not a number")

// FlexID is a record identity that accepts both JSON numbers and quoted
// numeric strings. The web client sends ids as strings, other callers as
// numbers.
type FlexID uint64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return ErrBadID
	}

	*f = FlexID(v)

	return nil
}

// ParamID parses the named route parameter as a record identity.
func ParamID(c *fiber.Ctx, name string) (uint64, error) {
	return strconv.ParseUint(c.Params(name), 10, 64)
}
