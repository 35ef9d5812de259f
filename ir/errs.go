package ir

import (
	"errors"

	"github.com/signadot/fbx-format/go-fbx/token"
)

var (
	ErrTree      = errors.New("bad tree")
	ErrBadFormat = token.ErrFormat
)
