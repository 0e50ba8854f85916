package settings

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/graphloom/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks field constraints: node types present, sizes not
// negative, leaf node defaults sized, override keys not blank.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(errors.ErrCodeInvalidSettings, "%s", describe(verrs[0]))
		}
		return errors.Wrap(errors.ErrCodeInvalidSettings, err, "invalid settings")
	}
	if s.NodeDefaults.Width == nil || s.NodeDefaults.Height == nil {
		return errors.New(errors.ErrCodeInvalidSettings, "node_defaults must define width and height")
	}
	for k := range s.TypeOverrides {
		if strings.TrimSpace(k) == "" {
			return errors.New(errors.ErrCodeInvalidSettings, "type_overrides keys must not be blank")
		}
	}
	for k := range s.EdgeTypeOverrides {
		if strings.TrimSpace(k) == "" {
			return errors.New(errors.ErrCodeInvalidSettings, "edge_type_overrides keys must not be blank")
		}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be >= " + fe.Param()
	default:
		return field + " failed " + fe.Tag() + " validation"
	}
}
