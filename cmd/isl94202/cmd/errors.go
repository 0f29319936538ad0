package cmd

import (
	"errors"

	"isl94202-go/drivers/isl94202"
	"isl94202-go/errcode"
)

// driverCode maps isl94202 sentinels onto stable codes.
func driverCode(err error) errcode.Code {
	switch {
	case err == nil:
		return errcode.OK
	case errors.Is(err, isl94202.ErrOutOfRange):
		return errcode.OutOfRange
	case errors.Is(err, isl94202.ErrInvalidField):
		return errcode.InvalidField
	default:
		return errcode.Error
	}
}

func wrap(op string, err error) error {
	return errcode.Wrap(driverCode(err), op, err)
}
