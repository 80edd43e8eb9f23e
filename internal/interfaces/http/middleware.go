package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/ports"
	"github.com/jhoicas/magazzino-api/pkg/logger"
)

// IdempotencyHeader cabecera con la clave de idempotencia del cliente.
const IdempotencyHeader = "Idempotency-Key"

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return err
	}
}

// httpObserver lo implementa metrics.Recorder.
type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics registra conteo y latencia por ruta registrada (no por path crudo, para acotar cardinalidad).
func Metrics(obs httpObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		obs.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

// Idempotency rechaza con 409 una clave ya usada por el mismo usuario en la misma ruta.
// Sin cabecera la petición pasa. Si el almacén falla se registra y la petición continúa.
// Debe usarse DESPUÉS de AuthMiddleware.
func Idempotency(store ports.IdempotencyStore, log *logger.Logger) fiber.Handler {
	log = log.Component("idempotency")
	return func(c *fiber.Ctx) error {
		if store == nil {
			return c.Next()
		}
		key := c.Get(IdempotencyHeader)
		if key == "" {
			return c.Next()
		}
		scoped := GetUserID(c) + ":" + c.Route().Path + ":" + key
		fresh, err := store.Claim(c.UserContext(), scoped)
		if err != nil {
			log.Warn().Err(err).Str("key", scoped).Msg("almacén de idempotencia no disponible")
			return c.Next()
		}
		if !fresh {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "DUPLICATE_REQUEST",
				Message: "la petición con esta " + IdempotencyHeader + " ya fue procesada",
			})
		}
		err = c.Next()
		// Sólo una respuesta exitosa consume la clave; los fallos quedan reintentables.
		if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
			if relErr := store.Release(c.UserContext(), scoped); relErr != nil {
				log.Warn().Err(relErr).Str("key", scoped).Msg("no se pudo liberar la clave de idempotencia")
			}
		}
		return err
	}
}
