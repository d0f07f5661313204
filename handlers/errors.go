package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"attendance_backend/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// errMalformedBody marks a body that is not exactly one well-formed JSON value.
var errMalformedBody = errors.New("malformed JSON body")

// registerJSONFieldNames makes validator report fields by their json name.
func registerJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindingErrorDetails turns a ShouldBindJSON error into response entries.
func bindingErrorDetails(err error) []models.ErrorDetail {
	var (
		verrs     validator.ValidationErrors
		typeErr   *models.TypeError
		jsonType  *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		details := make([]models.ErrorDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldErrorDetail(fe))
		}
		return details
	case errors.As(err, &typeErr):
		return []models.ErrorDetail{{
			Type: typeErr.Type,
			Loc:  []string{"body", typeErr.Field},
			Msg:  typeErr.Msg,
		}}
	case errors.As(err, &jsonType):
		if jsonType.Field == "" {
			return []models.ErrorDetail{{
				Type: "model_attributes_type",
				Loc:  []string{"body"},
				Msg:  "Input should be a valid dictionary or object to extract fields from",
			}}
		}
		return []models.ErrorDetail{{
			Type: jsonKindType(jsonType.Type.Kind()),
			Loc:  append([]string{"body"}, strings.Split(jsonType.Field, ".")...),
			Msg:  "Input should be a valid " + jsonKindName(jsonType.Type.Kind()),
		}}
	case errors.Is(err, io.EOF):
		return []models.ErrorDetail{{
			Type: "missing",
			Loc:  []string{"body"},
			Msg:  "Field required",
		}}
	case errors.Is(err, errMalformedBody), errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []models.ErrorDetail{{
			Type: "json_invalid",
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
		}}
	default:
		return []models.ErrorDetail{{
			Type: "value_error",
			Loc:  []string{"body"},
			Msg:  "Invalid request body",
		}}
	}
}

func fieldErrorDetail(fe validator.FieldError) models.ErrorDetail {
	loc := []string{"body", fe.Field()}
	if fe.Tag() == "required" {
		return models.ErrorDetail{Type: "missing", Loc: loc, Msg: "Field required"}
	}
	return models.ErrorDetail{Type: fe.Tag(), Loc: loc, Msg: "Value failed the " + fe.Tag() + " check"}
}

func jsonKindType(k reflect.Kind) string {
	return jsonKindName(k) + "_type"
}

func jsonKindName(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Bool:
		return "bool"
	case reflect.Float32, reflect.Float64:
		return "float"
	default:
		return "value"
	}
}
