package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.Local)

	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"String field", Field{Type: StringType, Str: "hello"}, "hello"},
		{"Int64 field", Field{Type: Int64Type, Int64: 1234567890}, "1234567890"},
		{"Bool field (true)", Field{Type: BoolType, Int64: 1}, "true"},
		{"Bool field (false)", Field{Type: BoolType, Int64: 0}, "false"},
		{"Float64 field", Field{Type: Float64Type, Float64: 3.14}, "3.14"},
		{"Duration field", Field{Type: DurationType, Int64: int64(5 * time.Second)}, "5s"},
		{"Time field", Field{Type: TimeType, Int64: ts.UnixNano()}, "2024-03-09 14:05:06.789"},
		{"Error field", Field{Type: ErrorType, Str: errors.New("boom").Error()}, "boom"},
		{"Any field", Field{Type: AnyType, Any: []int{1, 2}}, "[1 2]"},
		{"Unknown type", Field{Type: FieldType(200)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
