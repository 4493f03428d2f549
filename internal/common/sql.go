package common

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// GetFieldValues flattens an entity struct into the positional args of its
// INSERT statement, in field declaration order.
func GetFieldValues(i interface{}) ([]interface{}, error) {
	entity := reflect.ValueOf(i)
	if entity.Kind() != reflect.Struct {
		return nil, errors.New("invalid entity for get field values")
	}

	values := make([]interface{}, entity.NumField())
	for i := 0; i < entity.NumField(); i++ {
		values[i] = entity.Field(i).Interface()
	}
	return values, nil
}

// ReplaceSQL rewrites ? placeholders to $n for postgres.
func ReplaceSQL(old, searchPattern string) string {
	tmpCount := strings.Count(old, searchPattern)
	for m := 1; m <= tmpCount; m++ {
		old = strings.Replace(old, searchPattern, "$"+strconv.Itoa(m), 1)
	}
	return old
}
