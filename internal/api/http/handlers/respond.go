package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-office-service/internal/api/dto"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// writeEnvelope serializes the uniform controller envelope.
func writeEnvelope(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{
		Message: message,
		Success: status < fiber.StatusBadRequest,
		Status:  status,
		Data:    data,
	})
}

// parsePage reads the 1-based page query parameter, defaulting to 1.
func parsePage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// formString returns the posted value for key, or nil when the field was not
// part of the submission. Absent and empty are different things for merges.
func formString(c *fiber.Ctx, key string) *string {
	args := c.Request().PostArgs()
	if !args.Has(key) {
		return nil
	}
	val := string(args.Peek(key))
	return &val
}

// optionalID is formString with empty collapsed to nil, for reference fields.
func optionalID(c *fiber.Ctx, key string) *string {
	val := formString(c, key)
	if val == nil || strings.TrimSpace(*val) == "" {
		return nil
	}
	return val
}

// requireForm validates that each named field was posted non-blank.
func requireForm(c *fiber.Ctx, keys ...string) error {
	for _, key := range keys {
		if strings.TrimSpace(c.FormValue(key)) == "" {
			return apperrors.NewValidationError(key + " is required")
		}
	}
	return nil
}

// requireID validates the id field every update/delete intent carries.
func requireID(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.FormValue("id"))
	if id == "" {
		return "", apperrors.NewValidationError("id is required")
	}
	return id, nil
}
