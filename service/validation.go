package service

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/logger"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validatorInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("loglevel", isLogLevel)
		_ = validate.RegisterValidation("reldir", isSafeRelDir)
	})

	return validate
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	const op errors.Op = "service.Config.Validate"
	if c == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	if err := validatorInstance().Struct(c); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return nil
}

func isLogLevel(fl validator.FieldLevel) bool {
	_, err := logger.ParseLevel(fl.Field().String())
	return err == nil
}

// isSafeRelDir accepts relative paths that stay inside the working dir.
func isSafeRelDir(fl validator.FieldLevel) bool {
	dir := fl.Field().String()
	if filepath.IsAbs(dir) || filepath.VolumeName(dir) != emptyString {
		return false
	}

	clean := filepath.Clean(dir)

	return clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
