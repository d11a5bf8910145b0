package io

import (
	"errors"

	"github.com/ezrec/analytical/translate"
)

var f = translate.From

var (
	// Library errors
	ErrLibraryName = errors.New(f("library name invalid"))
)
