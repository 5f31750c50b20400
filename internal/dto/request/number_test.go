package request

import (
	"encoding/json"
	"testing"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  Number
		whole bool
	}{
		{"absent", `{}`, Number{}, false},
		{"null", `{"n":null}`, Number{}, false},
		{"empty string", `{"n":""}`, Number{}, false},
		{"integer", `{"n":3}`, Num(3), true},
		{"fraction", `{"n":2.5}`, Num(2.5), false},
		{"numeric string", `{"n":" 1200 "}`, Num(1200), true},
		{"word", `{"n":"three"}`, Number{Present: true}, false},
		{"boolean", `{"n":true}`, Number{Present: true}, false},
		{"object", `{"n":{"v":1}}`, Number{Present: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				N Number `json:"n"`
			}
			if err := json.Unmarshal([]byte(tt.body), &body); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.N != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, body.N)
			}
			if _, ok := body.N.Int(); ok != tt.whole {
				t.Fatalf("expected Int() ok=%v", tt.whole)
			}
		})
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"array", `{"l":["Guide","Meals"]}`, []string{"Guide", "Meals"}},
		{"comma string", `{"l":"Guide, Meals ,,Permits"}`, []string{"Guide", "Meals", "Permits"}},
		{"empty string", `{"l":""}`, []string{}},
		{"wrong type", `{"l":12}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				L StringList `json:"l"`
			}
			if err := json.Unmarshal([]byte(tt.body), &body); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(body.L) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, body.L)
			}
			for i := range tt.want {
				if body.L[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, body.L)
				}
			}
		})
	}
}
