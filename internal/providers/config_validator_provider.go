package providers

import (
	"agentcrm/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	for _, target := range []interface{}{&cv.conf.WebServer, &cv.conf.Persistence, &cv.conf.Logger} {
		v := validate.Struct(target)
		if !v.Validate() {
			return v.Errors.OneError()
		}
	}
	return nil
}
