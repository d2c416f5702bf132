package client

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// MaxNameLength bounds application and folder names.
const MaxNameLength = 255

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}

func validateName(name string) error {
	return invalid(validation.Validate(name,
		validation.Required,
		validation.RuneLength(1, MaxNameLength),
	))
}

func validateID(id int64) error {
	return invalid(validation.Validate(id, validation.Required, validation.Min(int64(1))))
}

func validateStatus(status models.ApplicationStatus) error {
	allowed := make([]interface{}, len(models.ApplicationStatuses))
	for i, s := range models.ApplicationStatuses {
		allowed[i] = s
	}
	return invalid(validation.Validate(status, validation.Required, validation.In(allowed...)))
}

func validateUpload(req models.UploadRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.Files, validation.Required),
		validation.Field(&req.CompanyName, validation.RuneLength(0, MaxNameLength)),
	))
}
