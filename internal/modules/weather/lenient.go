package weather

import (
	"encoding/json"
	"strconv"
	"strings"
)

// lenientFloat accepts a JSON number or a numeric string.
type lenientFloat struct {
	v  float64
	ok bool
}

func (f *lenientFloat) UnmarshalJSON(b []byte) error {
	*f = lenientFloat{}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		f.v, f.ok = v, true
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			f.v, f.ok = n, true
		}
	}
	return nil
}

// lenientString accepts only a JSON string.
type lenientString struct {
	v  string
	ok bool
}

func (s *lenientString) UnmarshalJSON(b []byte) error {
	*s = lenientString{}
	var v string
	if err := json.Unmarshal(b, &v); err == nil {
		s.v, s.ok = v, true
	}
	return nil
}

// A sub-object of the wrong shape decodes as empty.

func (m *mainBlock) UnmarshalJSON(b []byte) error {
	type plain mainBlock
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*m = mainBlock{}
		return nil
	}
	*m = mainBlock(p)
	return nil
}

func (w *windBlock) UnmarshalJSON(b []byte) error {
	type plain windBlock
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*w = windBlock{}
		return nil
	}
	*w = windBlock(p)
	return nil
}

func (c *conditionBlock) UnmarshalJSON(b []byte) error {
	type plain conditionBlock
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*c = conditionBlock{}
		return nil
	}
	*c = conditionBlock(p)
	return nil
}

type conditionList []conditionBlock

func (l *conditionList) UnmarshalJSON(b []byte) error {
	var items []conditionBlock
	if err := json.Unmarshal(b, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}
