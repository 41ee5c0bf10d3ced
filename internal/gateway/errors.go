package gateway

import (
	"github.com/gofiber/fiber/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var httpByCode = map[codes.Code]int{
	codes.InvalidArgument:    fiber.StatusBadRequest,
	codes.FailedPrecondition: fiber.StatusBadRequest,
	codes.OutOfRange:         fiber.StatusBadRequest,
	codes.Unauthenticated:    fiber.StatusUnauthorized,
	codes.PermissionDenied:   fiber.StatusForbidden,
	codes.NotFound:           fiber.StatusNotFound,
	codes.AlreadyExists:      fiber.StatusConflict,
	codes.Aborted:            fiber.StatusConflict,
	codes.ResourceExhausted:  fiber.StatusTooManyRequests,
	codes.Unimplemented:      fiber.StatusNotImplemented,
	codes.Unavailable:        fiber.StatusServiceUnavailable,
	codes.DeadlineExceeded:   fiber.StatusGatewayTimeout,
	codes.Canceled:           499,
}

// toHTTPError переводит gRPC-статус сервиса в ответ шлюза.
func toHTTPError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	code, ok := httpByCode[st.Code()]
	if !ok {
		code = fiber.StatusInternalServerError
	}
	return fiber.NewError(code, st.Message())
}
