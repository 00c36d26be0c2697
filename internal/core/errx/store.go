package errx

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// WrapRedis maps Redis errors onto AppError. redis.Nil becomes ErrNotFound.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return New(ErrNotFound, http.StatusNotFound, NotFoundMessage)
	}
	return New(err, http.StatusBadGateway, StoreErrorMessage)
}

// WrapSQL maps database errors onto AppError. sql.ErrNoRows becomes ErrNotFound.
func WrapSQL(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return New(ErrNotFound, http.StatusNotFound, NotFoundMessage)
	}
	return New(err, http.StatusInternalServerError, StoreErrorMessage)
}
