package models

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

type MarkAttendanceRequest struct {
	StudentID *StudentID `json:"student_id" binding:"required"`
	Method    *string    `json:"method" binding:"required"`
}

type MarkAttendanceResponse struct {
	Status string `json:"status"`
}

// StudentID is an integer of any size, kept as canonical base-10 digits so
// values beyond int64 are echoed unchanged. It also accepts integral JSON
// numbers (42.0) and strings holding a base-10 integer ("42").
type StudentID string

func (id *StudentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return intTypeError()
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return intTypeError()
		}
		n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
		if !ok {
			return &TypeError{
				Field: "student_id",
				Type:  "int_parsing",
				Msg:   "Input should be a valid integer, unable to parse string as an integer",
			}
		}
		*id = StudentID(n.String())
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if n, ok := new(big.Int).SetString(string(data), 10); ok {
			*id = StudentID(n.String())
			return nil
		}
		// Fractions and exponents are read as float64, the precision a JSON
		// number has in most clients.
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil || math.IsInf(f, 0) {
			return &TypeError{
				Field: "student_id",
				Type:  "int_parsing",
				Msg:   "Input should be a valid integer, unable to parse number as an integer",
			}
		}
		if f != math.Trunc(f) {
			return &TypeError{
				Field: "student_id",
				Type:  "int_from_float",
				Msg:   "Input should be a valid integer, got a number with a fractional part",
			}
		}
		n, _ := big.NewFloat(f).Int(nil)
		*id = StudentID(n.String())
		return nil
	default:
		return intTypeError()
	}
}

func intTypeError() error {
	return &TypeError{
		Field: "student_id",
		Type:  "int_type",
		Msg:   "Input should be a valid integer",
	}
}

// TypeError reports a body field whose JSON value has the wrong shape.
type TypeError struct {
	Field string
	Type  string
	Msg   string
}

func (e *TypeError) Error() string {
	return e.Field + ": " + e.Msg
}
