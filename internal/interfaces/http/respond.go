package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

const (
	msgInternal    = "Internal server error"
	msgInvalidBody = "Invalid request body"
)

// errorKey indica la clave del cuerpo de error: la mayoría usa "error", algunos endpoints "message".
type errorKey int

const (
	keyError errorKey = iota
	keyMessage
)

// statusFor traduce un error de dominio a código HTTP. 0 = error interno.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict
	default:
		return 0
	}
}

// writeError responde el error con la clave pedida. Los errores internos se registran y no se filtran.
func writeError(c *fiber.Ctx, log *logger.Logger, err error, key errorKey) error {
	status := statusFor(err)
	msg := msgInternal
	if status == 0 {
		status = fiber.StatusInternalServerError
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno atendiendo la petición")
	} else if m, ok := domain.Message(err); ok {
		msg = m
	} else {
		msg = err.Error()
	}
	return writeMessage(c, status, msg, key)
}

func writeMessage(c *fiber.Ctx, status int, msg string, key errorKey) error {
	if key == keyMessage {
		return c.Status(status).JSON(dto.MessageResponse{Message: msg})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// parseBody decodifica el JSON del cuerpo con el decoder de Fiber. Un cuerpo vacío equivale a {}.
func parseBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, out)
}
