package model

import "errors"

var ErrorRequestNotFound = errors.New("request not found")
