package utils

import (
	"reflect"
)

// ColumnList returns the "db" tags of T's fields, in declaration order, for
// building SELECT clauses that stay in sync with the row struct. Embedded
// structs are flattened.
func ColumnList[T any]() []string {
	var value T
	return columnsOfType(reflect.TypeOf(value))
}

func columnsOfType(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			columns = append(columns, columnsOfType(field.Type)...)
			continue
		}
		if tag, ok := field.Tag.Lookup("db"); ok && tag != "-" {
			columns = append(columns, tag)
		}
	}
	return columns
}
