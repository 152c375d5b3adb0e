package bindq_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/zoobzio/bindq"
)

func TestIn(t *testing.T) {
	stmt := render(t, bindq.New("select * from t").In("id", bindq.Nums([]int{1, 2, 3})))

	want := "select * from t where id in ({id}::numeric, {id2}::numeric, {id3}::numeric)"
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
	if got := stmt.Names(); !reflect.DeepEqual(got, []string{"id", "id2", "id3"}) {
		t.Errorf("Names() = %v", got)
	}
	for i, b := range stmt.Binds {
		if _, ok := b.(bindq.Numeric); !ok {
			t.Errorf("bind %d is %T, want Numeric", i, b)
		}
		if b.Value() != int64(i+1) {
			t.Errorf("bind %d value = %v, want %d", i, b.Value(), i+1)
		}
	}
}

func TestIn_PlaceholderCountMatchesValues(t *testing.T) {
	for n := 1; n <= 12; n++ {
		values := make([]string, n)
		for i := range values {
			values[i] = "v"
		}
		q := bindq.New("s").Equals("code", bindq.Str("c")).In("code", bindq.Strs(values))
		stmt := render(t, q)

		if got := strings.Count(stmt.SQL, "{"); got != n+1 {
			t.Errorf("n=%d: %d placeholders in %q", n, got, stmt.SQL)
		}
		if len(stmt.Binds) != n+1 {
			t.Errorf("n=%d: %d binds", n, len(stmt.Binds))
		}
		seen := make(map[string]bool)
		for _, name := range stmt.Names() {
			if seen[name] {
				t.Errorf("n=%d: duplicate name %q", n, name)
			}
			seen[name] = true
		}
	}
}

func TestIn_Empty(t *testing.T) {
	stmt := render(t, bindq.New("select * from t").In("id", []bindq.Value{}))

	if stmt.SQL != "select * from t where false" {
		t.Errorf("SQL = %q", stmt.SQL)
	}
	if len(stmt.Binds) != 0 {
		t.Errorf("expected no binds, got %v", stmt.Names())
	}
}

func TestOptionalIn(t *testing.T) {
	tests := []struct {
		name   string
		values []bindq.Value
		want   string
		binds  int
	}{
		{"Absent", nil, "s", 0},
		{"Present but empty", bindq.Strs([]string{}), "s where false", 0},
		{"Present", bindq.Strs([]string{"a", "b"}), "s where code in ({code}, {code2})", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := render(t, bindq.New("s").OptionalIn("code", tt.values))
			if stmt.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", stmt.SQL, tt.want)
			}
			if len(stmt.Binds) != tt.binds {
				t.Errorf("binds = %d, want %d", len(stmt.Binds), tt.binds)
			}
		})
	}
}

func TestIn_QualifiedUUIDsWithFunctions(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	stmt := render(t, bindq.New("s").In("o.ref", bindq.UUIDs(ids), bindq.ColumnFuncs(bindq.Custom("coalesce_ref"))))

	want := "s where coalesce_ref(o.ref) in ({ref}::uuid, {ref2}::uuid)"
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
}

func TestIn_JSONPath(t *testing.T) {
	stmt := render(t, bindq.New("s").In("data->>'status'", bindq.Strs([]string{"new", "paid"})))

	want := "s where data->>'status' in ({data_status}, {data_status2})"
	if stmt.SQL != want {
		t.Errorf("SQL = %q, want %q", stmt.SQL, want)
	}
}

func TestIn_AfterSameColumn(t *testing.T) {
	stmt := render(t, bindq.New("s").
		NotEquals("id", bindq.Num(0)).
		In("id", bindq.Nums([]int{1, 2})))

	names := stmt.Names()
	if names[0] != "id" {
		t.Errorf("first name changed to %q", names[0])
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name %q in %v", n, names)
		}
		seen[n] = true
	}
}

func TestAndOr(t *testing.T) {
	tests := []struct {
		name string
		q    bindq.Query
		want string
	}{
		{"And single", bindq.New("s").And("a = 1"), "s where a = 1"},
		{"And many", bindq.New("s").And("a = 1", "b = 2"), "s where a = 1 and b = 2"},
		{"And none", bindq.New("s").And(), "s"},
		{"OptionalAnd present", bindq.New("s").OptionalAnd(ptr("a = 1")), "s where a = 1"},
		{"Or none", bindq.New("s").Or(), "s"},
		{"Or single", bindq.New("s").Or("a = 1"), "s where a = 1"},
		{"Or many", bindq.New("s").Or("a = 1", "b = 2"), "s where (a = 1 or b = 2)"},
		{"Or with and", bindq.New("s").And("c = 3").Or("a = 1", "b = 2"), "s where c = 3 and (a = 1 or b = 2)"},
		{"OptionalOr skips absent", bindq.New("s").OptionalOr(ptr("a = 1"), nil, ptr("b = 2")), "s where (a = 1 or b = 2)"},
		{"OptionalOr single present", bindq.New("s").OptionalOr(nil, ptr("a = 1")), "s where a = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := render(t, tt.q)
			if stmt.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", stmt.SQL, tt.want)
			}
		})
	}
}

func TestBooleanHelpers(t *testing.T) {
	tests := []struct {
		name string
		q    bindq.Query
		want string
	}{
		{"Boolean true", bindq.New("s").Boolean("active", true), "s where active is true"},
		{"Boolean false", bindq.New("s").Boolean("active", false), "s where active is false"},
		{"OptionalBoolean", bindq.New("s").OptionalBoolean("active", ptr(true)), "s where active is true"},
		{"NullBoolean true", bindq.New("s").NullBoolean("deleted_at", true), "s where deleted_at is not null"},
		{"NullBoolean false", bindq.New("s").NullBoolean("deleted_at", false), "s where deleted_at is null"},
		{"OptionalNullBoolean", bindq.New("s").OptionalNullBoolean("deleted_at", ptr(false)), "s where deleted_at is null"},
		{"IsNull", bindq.New("s").IsNull("a"), "s where a is null"},
		{"IsNotNull", bindq.New("s").IsNotNull("a"), "s where a is not null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := render(t, tt.q)
			if stmt.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", stmt.SQL, tt.want)
			}
			if len(stmt.Binds) != 0 {
				t.Errorf("expected no binds, got %v", stmt.Names())
			}
		})
	}
}
