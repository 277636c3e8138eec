package iocontent

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/voidtraders/voidtrade/pkg/errcode"
)

func readFileError(path string, err error) error {
	msg := `Cannot read content file <em>%s</em>

<em>How to fix:</em>
  1. Check that the content directory is configured correctly
  2. Reinstall the game content files if they are missing`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}
