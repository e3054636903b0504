//go:build !linux && !darwin

package main

import "github.com/pkg/errors"

var errNoRawTerm = errors.New("terminal front end is not supported on this platform")

func enterRawTerm() error { return errNoRawTerm }

func exitRawTerm() error { return nil }
