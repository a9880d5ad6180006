package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the `db` tags of a struct. Fields tagged
// with the `readonly` option (e.g. `db:"id,readonly"`) are left to the database.
func InsertModel(table string, model any, returning ...string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Returning(returning...).
		ToSQL()
}

// Columns lists the db column names of a struct in field order, readonly ones included.
func Columns(model any) []string {
	typ := reflect.TypeOf(model)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}

	out := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, _, ok := parseDBTag(typ.Field(i))
		if !ok {
			continue
		}
		out = append(out, col)
	}
	return out
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, readonly, ok := parseDBTag(typ.Field(i))
		if !ok || readonly {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no writable db columns")
	}
	return cols, vals, nil
}

func parseDBTag(field reflect.StructField) (string, bool, bool) {
	if field.PkgPath != "" {
		return "", false, false
	}
	tag := strings.TrimSpace(field.Tag.Get("db"))
	if tag == "" || tag == "-" {
		return "", false, false
	}

	parts := strings.Split(tag, ",")
	col := strings.TrimSpace(parts[0])
	if col == "" || col == "-" {
		return "", false, false
	}

	readonly := false
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "readonly" {
			readonly = true
		}
	}
	return col, readonly, true
}
