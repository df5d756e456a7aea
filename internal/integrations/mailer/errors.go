package mailer

import "errors"

var (
	// ErrInternal возвращается при ошибках подготовки или отправки запроса
	ErrInternal = errors.New("mailer: internal error")

	// ErrInvalidResponse возвращается при неожиданном ответе почтового шлюза
	ErrInvalidResponse = errors.New("mailer: invalid response from mail gateway")
)
