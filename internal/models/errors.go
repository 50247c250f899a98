package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrCategoryNameNotUnique = errors.New("a category with this name already exists")
	ErrEmailNotUnique        = errors.New("email already registered")
	ErrUsernameNotUnique     = errors.New("username already taken")
	ErrAmountNegative        = errors.New("the amount must not be negative")
)
