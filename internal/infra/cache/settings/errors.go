package settings

import "errors"

var (
	// ErrLoadSettings возвращается, если не удалось прочитать настройки из БД
	ErrLoadSettings = errors.New("settings.cache: failed to load settings")
)
