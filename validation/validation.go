// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var global = New()

// New returns a validator that reports fields by their JSON names
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// integer: a base-10 int64, optionally signed
	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil
	})
	return v
}

// Validate checks a struct against its validate tags and returns the first
// failure as a client-facing message ("sport_id is required").
func Validate(ctx context.Context, s any) error {
	return describe(global.StructCtx(ctx, s))
}

func describe(err error) error {
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return err
	}

	fe := vErrors[0]
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "integer", "number", "numeric":
		return fmt.Errorf("%s must be an integer", field)
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}

// fieldName turns "CreateEventRequest.participants[1]" into "participants[1]"
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
