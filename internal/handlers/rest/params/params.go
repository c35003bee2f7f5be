// Package params разбирает path и query параметры запросов.
package params

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

var ErrInvalidParam = errors.New("invalid request parameter")

func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidParam, name)
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return val, nil
}

func PathString(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// QueryString возвращает nil, если параметр не передан или пустой.
func QueryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := QueryString(r, name)
	if raw == nil {
		return nil, nil
	}
	val, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, *raw)
	}
	return &val, nil
}

func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := QueryString(r, name)
	if raw == nil {
		return nil, nil
	}
	val, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, *raw)
	}
	return &val, nil
}
