package models

import (
	"fmt"

	"github.com/dmitrijs2005/accountbook/internal/common"
)

// Messages is a catalog of user-facing validation texts. MaxLength is a
// format string receiving the limit.
type Messages struct {
	Required    string
	MaxLength   string
	UnknownType string
}

var EnglishMessages = Messages{
	Required:    "required field",
	MaxLength:   "at most %d characters",
	UnknownType: "unsupported account type",
}

var RussianMessages = Messages{
	Required:    "Обязательное поле",
	MaxLength:   "Максимум %d символов",
	UnknownType: "Неизвестный тип учётной записи",
}

// MessagesFor returns the catalog for a locale code ("en", "ru").
func MessagesFor(locale string) (Messages, error) {
	switch locale {
	case "", "en":
		return EnglishMessages, nil
	case "ru":
		return RussianMessages, nil
	default:
		return Messages{}, fmt.Errorf("%w: %q", common.ErrUnknownLocale, locale)
	}
}

func (m Messages) maxLength(limit int) string {
	return fmt.Sprintf(m.MaxLength, limit)
}
