package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes a JSON integer that some servers send as a string.
// null and empty strings decode to 0.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return fmt.Errorf("cannot decode %q as integer: %w", data, err)
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}

func (n FlexInt) Int() int {
	return int(n)
}

// FlexFloat is the float counterpart of FlexInt.
type FlexFloat float64

func (n *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("cannot decode %q as number: %w", data, err)
	}
	*n = FlexFloat(v)
	return nil
}

// FlexBool accepts true/false as well as 0/1 integers.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	switch string(data) {
	case "true", "1":
		*b = true
	case "false", "0", "null", "":
		*b = false
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("cannot decode %q as bool: %w", data, err)
		}
		*b = v != 0
	}
	return nil
}
