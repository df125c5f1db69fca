package librarylog

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *types.LoggingConfig) error {
	const op errors.Op = "librarylog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	if !isSafeRelDir(cfg.RelLogFileDir) {
		return errors.New(op).Msg(errMsgUnsafeLogDir + " RelLogFileDir=" + cfg.RelLogFileDir)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return nil
}

// isSafeRelDir rejects absolute paths and paths escaping the working dir.
func isSafeRelDir(dir string) bool {
	if dir == emptyString {
		return true
	}
	if filepath.IsAbs(dir) || strings.HasPrefix(dir, "/") {
		return false
	}
	clean := filepath.Clean(dir)
	return clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
