package service

import (
	"errors"
	"fmt"
)

// ErrValidation - общий предок всех ошибок валидации, errors.Is(err, ErrValidation)
var ErrValidation = errors.New("некорректные данные")

var (
	ErrEmailEmpty       = fmt.Errorf("%w: email не может быть пустым", ErrValidation)
	ErrEmailFormat      = fmt.Errorf("%w: неверный формат email", ErrValidation)
	ErrEmailExists      = fmt.Errorf("%w: email уже зарегистрирован", ErrValidation)
	ErrFirstNameEmpty   = fmt.Errorf("%w: имя не может быть пустым", ErrValidation)
	ErrFirstNameShort   = fmt.Errorf("%w: имя должно быть не короче 2 символов", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: пароли не совпадают", ErrValidation)
	ErrPasswordShort    = fmt.Errorf("%w: пароль должен быть не менее 8 символов", ErrValidation)

	ErrNoteEmpty    = fmt.Errorf("%w: заметка слишком короткая", ErrValidation)
	ErrNoteTooLong  = fmt.Errorf("%w: заметка слишком длинная", ErrValidation)
	ErrTitleEmpty   = fmt.Errorf("%w: отсутствует заголовок", ErrValidation)
	ErrTitleTooLong = fmt.Errorf("%w: заголовок длиннее 100 символов", ErrValidation)
	ErrContentEmpty = fmt.Errorf("%w: отсутствует содержимое", ErrValidation)
	ErrCommentEmpty = fmt.Errorf("%w: комментарий не может быть пустым", ErrValidation)
)

// ErrInvalidCredentials - единый ответ на неверный email и на неверный пароль
var ErrInvalidCredentials = errors.New("неверный email или пароль")

// ErrForbidden - запрошенная сущность принадлежит другому пользователю
var ErrForbidden = errors.New("доступ запрещен")
