package mariadb

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/zoobzio/bindq"
)

func TestCompile(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	sql, args, err := bindq.New("select * from orders").
		Equals("ref", bindq.UUID(id)).
		In("qty", bindq.Nums([]float64{1.5, 2})).
		Boolean("shipped", true).
		Limit(3).
		Offset(6).
		Compile(New())
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	want := "select * from orders where ref = ? and qty in (CAST(? AS DECIMAL(65,30)), CAST(? AS DECIMAL(65,30)))" +
		" and shipped is true limit 3 offset 6"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}

	wantArgs := []any{id.String(), 1.5, float64(2)}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestName(t *testing.T) {
	if New().Name() != "mariadb" {
		t.Errorf("Name() = %q", New().Name())
	}
}
