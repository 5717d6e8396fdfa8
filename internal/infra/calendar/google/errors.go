package google

import "errors"

var (
	// ErrUnavailable возвращается при любой ошибке общения с Google Calendar.
	// Недоступный календарь никогда не интерпретируется как пустой список событий
	ErrUnavailable = errors.New("calendar store: upstream unavailable")

	// ErrInvalidEvent возвращается, когда событие календаря невозможно разобрать
	ErrInvalidEvent = errors.New("calendar store: invalid event payload")
)
