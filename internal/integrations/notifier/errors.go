package notifier

import "errors"

var (
	// ErrConnection возвращается при ошибке подключения к брокеру
	ErrConnection = errors.New("notifier: broker connection error")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("notifier: failed to marshal event")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("notifier: failed to publish event")
)
