package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	"github.com/Leganyst/agenda-platform/internal/log"
)

const pgUniqueViolation = "23505"

func parseUserID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invalid user_id")
	}
	return id, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s", field)
	}
	return id, nil
}

func parseDateField(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	d, err := agenda.ParseDate(raw)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s: %v", field, err)
	}
	return d, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// storageError переводит ошибку репозитория в gRPC-статус; неожиданные
// ошибки логируются.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Errorf(codes.NotFound, "%s: not found", op)
	case isDuplicate(err):
		return status.Errorf(codes.AlreadyExists, "%s: already exists", op)
	default:
		log.Error(op+" failed", err)
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return status.Error(codes.InvalidArgument, strings.Join(msgs, "; "))
}

// domainError: ошибки пакета agenda всегда означают проблему входных данных.
func domainError(err error) error {
	switch {
	case errors.Is(err, agenda.ErrUnsupportedFormat):
		return status.Error(codes.InvalidArgument, "Formato não suportado. Use arquivos .csv, .ics ou .ical")
	case errors.Is(err, agenda.ErrNoEvents):
		return status.Error(codes.InvalidArgument, "Nenhum evento válido encontrado no arquivo")
	case errors.Is(err, agenda.ErrInvalidDate),
		errors.Is(err, agenda.ErrInvalidRange),
		errors.Is(err, agenda.ErrInvalidStrategy),
		errors.Is(err, agenda.ErrInvalidRule),
		errors.Is(err, agenda.ErrInvalidWarningMode):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		log.Error("unexpected domain error", err)
		return status.Error(codes.Internal, err.Error())
	}
}
