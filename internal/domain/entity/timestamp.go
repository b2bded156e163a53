package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Timestamp normaliza las fechas polimórficas que llegan del data store:
// time.Time, cadenas ISO-8601, epoch en milisegundos y el formato heredado
// {seconds, nanoseconds}. Se normaliza una sola vez en la ingesta; un valor
// que no se puede interpretar queda inválido (nunca error ni panic).
type Timestamp struct {
	t     time.Time
	valid bool
}

// Formatos aceptados para fechas en texto, en orden de prueba.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewTimestamp envuelve un time.Time; el valor cero se considera inválido.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{t: t, valid: true}
}

// TimestampFromSeconds construye la fecha desde el formato {seconds, nanoseconds}.
func TimestampFromSeconds(seconds, nanos int64) Timestamp {
	return NewTimestamp(time.Unix(seconds, nanos).UTC())
}

// TimestampFromMillis construye la fecha desde epoch en milisegundos.
func TimestampFromMillis(ms int64) Timestamp {
	return NewTimestamp(time.UnixMilli(ms).UTC())
}

// ParseTimestamp interpreta una fecha en texto. Cadenas numéricas se leen como epoch en ms.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t)
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return TimestampFromMillis(ms)
	}
	return Timestamp{}
}

// NormalizeTimestamp acepta cualquier representación conocida de fecha.
func NormalizeTimestamp(v any) Timestamp {
	switch x := v.(type) {
	case nil:
		return Timestamp{}
	case Timestamp:
		return x
	case *Timestamp:
		if x == nil {
			return Timestamp{}
		}
		return *x
	case time.Time:
		return NewTimestamp(x)
	case *time.Time:
		if x == nil {
			return Timestamp{}
		}
		return NewTimestamp(*x)
	case string:
		return ParseTimestamp(x)
	case int64:
		return TimestampFromMillis(x)
	case int:
		return TimestampFromMillis(int64(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Timestamp{}
		}
		return TimestampFromMillis(int64(x))
	case json.Number:
		return ParseTimestamp(x.String())
	case map[string]any:
		return fromSecondsMap(x)
	default:
		return Timestamp{}
	}
}

// fromSecondsMap interpreta {seconds, nanoseconds} o {_seconds, _nanoseconds}.
func fromSecondsMap(m map[string]any) Timestamp {
	sec, ok := numberField(m, "seconds", "_seconds")
	if !ok {
		return Timestamp{}
	}
	nanos, _ := numberField(m, "nanoseconds", "_nanoseconds")
	return TimestampFromSeconds(sec, nanos)
}

func numberField(m map[string]any, keys ...string) (int64, bool) {
	for _, k := range keys {
		switch n := m[k].(type) {
		case float64:
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return 0, false
			}
			return int64(n), true
		case int64:
			return n, true
		case int:
			return int64(n), true
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return i, true
			}
			if f, err := n.Float64(); err == nil {
				return int64(f), true
			}
		case string:
			if i, err := strconv.ParseInt(n, 10, 64); err == nil {
				return i, true
			}
		}
	}
	return 0, false
}

// Valid indica si la fecha pudo normalizarse.
func (ts Timestamp) Valid() bool { return ts.valid }

// Time devuelve la fecha normalizada y si es válida.
func (ts Timestamp) Time() (time.Time, bool) { return ts.t, ts.valid }

// Within indica si la fecha es válida y cae en [start, end] inclusive.
func (ts Timestamp) Within(start, end time.Time) bool {
	if !ts.valid {
		return false
	}
	return !ts.t.Before(start) && !ts.t.After(end)
}

// MarshalJSON serializa como RFC3339Nano o null si es inválida.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON nunca falla por una fecha mal formada: la deja inválida.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		*ts = Timestamp{}
		return nil
	}
	*ts = NormalizeTimestamp(raw)
	return nil
}
