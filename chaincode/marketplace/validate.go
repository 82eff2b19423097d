package main

import "fmt"

func checkLen(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrStringTooLong, field, max)
	}
	return nil
}
