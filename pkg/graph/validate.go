package graph

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/ident"
)

// Name limits enforced by [Validate].
const (
	NodeNameMinLength = 1
	NodeNameMaxLength = 20
	PortNameMinLength = 1
	PortNameMaxLength = 15
	EdgeNameMinLength = 1
	EdgeNameMaxLength = 40
)

// =============================================================================
// Validator Instance
// =============================================================================

var validate *validator.Validate

// problems maps each custom tag to a checker returning "" for valid values
// and the user-facing message otherwise.
var problems = map[string]func(string) string{
	"nodename": nodeNameProblem,
	"endpoint": endpointProblem,
	"edgename": edgeNameProblem,
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	for tag, check := range problems {
		_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String()) == ""
		})
	}
}

func lengthProblem(value, field string, lo, hi int) string {
	if n := utf8.RuneCountInString(value); n < lo || n > hi {
		return fmt.Sprintf("%s must be between %d and %d characters.", field, lo, hi)
	}
	return ""
}

func nodeNameProblem(name string) string {
	if strings.Contains(name, ":") {
		return "Node name cannot contain ':' because edge endpoints use 'node:port' syntax."
	}
	return lengthProblem(name, "Node name", NodeNameMinLength, NodeNameMaxLength)
}

func edgeNameProblem(name string) string {
	return lengthProblem(name, "Edge name", EdgeNameMinLength, EdgeNameMaxLength)
}

func endpointProblem(endpoint string) string {
	node, port, hasPort := ident.SplitEndpoint(endpoint)
	if p := lengthProblem(node, "Node name", NodeNameMinLength, NodeNameMaxLength); p != "" {
		return p
	}
	if !hasPort {
		return ""
	}
	if strings.Contains(port, ":") {
		return "Port name cannot contain ':' because edge endpoints use 'node:port' syntax."
	}
	return lengthProblem(port, "Port name", PortNameMinLength, PortNameMaxLength)
}

// =============================================================================
// Validate
// =============================================================================

// Validate checks names, endpoints and nesting depth. All violations are
// reported together, one per line, each prefixed with its path such as
// "nodes[1].edges[0].from".
func Validate(g *Graph) error {
	if depth := g.Stats().Depth; depth > MaxDepth {
		return errors.New(errors.ErrCodeInvalidInput,
			"graph nesting depth %d exceeds the maximum of %d", depth, MaxDepth)
	}

	err := validate.Struct(g)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid graph")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(errors.ErrCodeInvalidInput, "%s", strings.Join(msgs, "\n"))
}

func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}
	if check, ok := problems[fe.Tag()]; ok {
		if s, isString := fe.Value().(string); isString {
			if msg := check(s); msg != "" {
				return path + ": " + msg
			}
		}
	}
	return fmt.Sprintf("%s: failed %s validation", path, fe.Tag())
}
