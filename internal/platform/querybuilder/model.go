package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds a single-row insert from a struct's db tags. Embedded
// structs are flattened, matching how sqlx scans them.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// ModelColumns returns the flattened db-tagged column names of a struct, for
// multi-row inserts that share one column list.
func ModelColumns(model any) ([]string, error) {
	cols, _, err := columnsAndValuesFromModel(model)
	return cols, err
}

// ModelValues returns the flattened db-tagged values of a struct in the same
// order ModelColumns reports them.
func ModelValues(model any) ([]any, error) {
	_, vals, err := columnsAndValuesFromModel(model)
	return vals, err
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

	cols, vals := collectFields(value)
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func collectFields(value reflect.Value) ([]string, []any) {
	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := strings.TrimSpace(field.Tag.Get("db"))
		if field.Anonymous && tag == "" {
			fieldValue := value.Field(i)
			for fieldValue.Kind() == reflect.Pointer && !fieldValue.IsNil() {
				fieldValue = fieldValue.Elem()
			}
			if fieldValue.Kind() == reflect.Struct {
				nestedCols, nestedVals := collectFields(fieldValue)
				cols = append(cols, nestedCols...)
				vals = append(vals, nestedVals...)
			}
			continue
		}

		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}
	return cols, vals
}
