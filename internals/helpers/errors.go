package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Service-level errors are *fiber.Error so they can cross the request boundary unchanged.

func ErrValidation(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func ErrUnauthorized(message string) error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func ErrForbidden(message string) error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func ErrNotFound(message string) error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func ErrConflict(message string) error {
	return fiber.NewError(fiber.StatusConflict, message)
}

// ErrInternal logs the cause and hides it from the client.
func ErrInternal(message string, cause error) error {
	if cause != nil {
		log.Error().Err(cause).Msg(message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, message)
}

// StatusOf returns the HTTP status carried by err (500 when err is not a *fiber.Error).
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func IsValidation(err error) bool   { return err != nil && StatusOf(err) == fiber.StatusBadRequest }
func IsUnauthorized(err error) bool { return err != nil && StatusOf(err) == fiber.StatusUnauthorized }
func IsNotFound(err error) bool     { return err != nil && StatusOf(err) == fiber.StatusNotFound }
func IsConflict(err error) bool     { return err != nil && StatusOf(err) == fiber.StatusConflict }

// FromError mengubah error dari service menjadi response JSON konsisten.
// Jika bukan *fiber.Error, fallback ke 500 dengan pesan generik.
func FromError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler is the app-wide fiber error handler (middleware errors, 404 routes, panics).
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}
