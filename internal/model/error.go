package model

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")          // 400
	ErrUnauthorized       = errors.New("unauthorized user")      // 401
	ErrInvalidCredentials = errors.New("invalid credentials")    // 401
	ErrForbidden          = errors.New("forbidden")              // 403
	ErrItemNotFound       = errors.New("item not found")         // 404
	ErrShapeNotFound      = errors.New("shape not found")        // 404
	ErrUserNotFound       = errors.New("user not found")         // 404
	ErrUserExists         = errors.New("user already exists")    // 409
	ErrClassification     = errors.New("classification failure") // 500
	ErrPersistence        = errors.New("persistence error")      // logged only
	ErrModelArtifact      = errors.New("incompatible model artifact")
)
