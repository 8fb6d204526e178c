package stories

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/eventui/internal/nav"
	eventerrors "github.com/alexisbeaulieu97/eventui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+(?:\.\d+){0,2}$`)
	storyIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("story_id", func(fl validator.FieldLevel) bool {
			return storyIDPattern.MatchString(fl.Field().String())
		})
		if err := nav.RegisterValidations(v); err != nil {
			panic(err)
		}

		validateInst = v
	})
	return validateInst
}

// Validate performs schema and cross-field validation on doc.
func Validate(doc *Document) error {
	if doc == nil {
		return eventerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Stories))
	for i, story := range doc.Stories {
		if first, exists := seen[story.ID]; exists {
			return eventerrors.NewValidationError(fieldForStory(i, "id"),
				fmt.Sprintf("duplicate story id %q (first used by stories[%d])", story.ID, first), nil)
		}
		seen[story.ID] = i

		if err := validateStory(story, i); err != nil {
			return err
		}
	}
	return nil
}

// validateStory checks the fields each kind requires.
func validateStory(story Story, index int) error {
	switch story.Kind {
	case KindNavHeader:
		if story.ActiveTab != "" || story.Event != nil {
			return eventerrors.NewValidationError(fieldForStory(index, "kind"),
				"nav-header stories take axis, links and content only", nil)
		}
	case KindTabBar:
		if story.ActiveTab == "" && story.ExpectError == "" {
			return eventerrors.NewValidationError(fieldForStory(index, "active_tab"), "active_tab is required", nil)
		}
	case KindEventCard:
		if story.Event == nil {
			return eventerrors.NewValidationError(fieldForStory(index, "event"), "event is required", nil)
		}
	default:
		return eventerrors.NewValidationError(fieldForStory(index, "kind"), fmt.Sprintf("unknown story kind %q", story.Kind), nil)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlishFieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return eventerrors.NewValidationError(field, msg, err)
	}
	return eventerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns "Document.Stories[0].Axis.State" into
// "stories[0].axis.state".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForStory(index int, field string) string {
	return fmt.Sprintf("stories[%d].%s", index, field)
}
