package sqlite

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/zoobzio/bindq"
	_ "modernc.org/sqlite"
)

var (
	refA = uuid.MustParse("00000000-0000-4000-8000-00000000000a")
	refB = uuid.MustParse("00000000-0000-4000-8000-00000000000b")
	refC = uuid.MustParse("00000000-0000-4000-8000-00000000000c")
	refD = uuid.MustParse("00000000-0000-4000-8000-00000000000d")
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	stmts := []string{
		`create table orders (
			id integer primary key,
			ref text not null,
			status text not null,
			region text,
			total numeric not null,
			shipped boolean not null,
			data text,
			deleted_at text
		)`,
		`insert into orders values (1, ?, 'open', 'eu', 10, 0, '{"status":"new"}', null)`,
		`insert into orders values (2, ?, 'open ', 'us', 25.5, 1, '{"status":"paid"}', null)`,
		`insert into orders values (3, ?, 'closed', 'eu', 5, 1, '{"status":"paid"}', '2024-01-01')`,
		`insert into orders values (4, ?, 'Open', null, 100, 0, '{"status":"new"}', null)`,
	}
	refs := []any{nil, refA.String(), refB.String(), refC.String(), refD.String()}
	for i, s := range stmts {
		var args []any
		if refs[i] != nil {
			args = append(args, refs[i])
		}
		if _, err := db.Exec(s, args...); err != nil {
			t.Fatalf("Failed to execute %q: %v", s, err)
		}
	}
	return db
}

func queryIDs(t *testing.T, db *sql.DB, q bindq.Query) []int64 {
	t.Helper()

	rows, err := bindq.QueryContext(context.Background(), db, New(), q)
	if err != nil {
		t.Fatalf("QueryContext() error: %v", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows error: %v", err)
	}
	return ids
}

func TestPlaceholder(t *testing.T) {
	sql, args, err := bindq.New("select id from orders").
		GreaterThan("total", bindq.Num(1)).
		Equals("ref", bindq.UUID(refA)).
		Text("status", "open").
		Compile(New())
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	want := "select id from orders where total > CAST(? AS NUMERIC) and ref = ? and status = trim(?)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if wantArgs := []any{int64(1), refA.String(), "open"}; !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestExecute(t *testing.T) {
	db := openTestDB(t)
	base := bindq.New("select id from orders").OrderBy("id")

	tests := []struct {
		name string
		q    bindq.Query
		want []int64
	}{
		{"No filters", base, []int64{1, 2, 3, 4}},
		{"Absent filters", base.OptionalEquals("region", nil).OptionalIn("id", nil), []int64{1, 2, 3, 4}},
		{"Equals text", base.Equals("region", bindq.Str("eu")), []int64{1, 3}},
		{"Text trims value only", base.Text("status", " open "), []int64{1}},
		{
			"Text with column funcs",
			base.Text("status", " OPEN ", bindq.ColumnFuncs(bindq.Lower, bindq.Trim), bindq.ValueFuncs(bindq.Trim, bindq.Lower)),
			[]int64{1, 2, 4},
		},
		{"Greater than numeric", base.GreaterThan("total", bindq.Num(10)), []int64{2, 4}},
		{"Range on same column", base.GreaterThanOrEquals("total", bindq.Num(10)).LessThan("total", bindq.Num(50.5)), []int64{1, 2}},
		{"Not equals", base.NotEquals("id", bindq.Num(2)), []int64{1, 3, 4}},
		{"In", base.In("id", bindq.Nums([]int{1, 3})), []int64{1, 3}},
		{"In empty", base.In("id", bindq.Nums([]int{})), []int64{}},
		{"UUID", base.Equals("ref", bindq.UUID(refB)), []int64{2}},
		{"UUID in", base.In("ref", bindq.UUIDs([]uuid.UUID{refC, refD})), []int64{3, 4}},
		{"Boolean", base.Boolean("shipped", true), []int64{2, 3}},
		{"Null boolean", base.NullBoolean("deleted_at", false), []int64{1, 2, 4}},
		{"Is null", base.IsNull("region"), []int64{4}},
		{"Or", base.Or("region = 'us'", "region is null"), []int64{2, 4}},
		{"JSON path", base.Equals("data->>'status'", bindq.Str("new")), []int64{1, 4}},
		{"Explicit bind", base.Bind("floor", bindq.Num(20)).And("total > {floor}::numeric"), []int64{2, 4}},
		{"Pagination", bindq.New("select id from orders").OrderBy("id desc").Limit(2).Offset(1), []int64{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queryIDs(t, db, tt.q)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExecute_DuplicateBind(t *testing.T) {
	db := openTestDB(t)
	q := bindq.New("select id from orders").Bind("x", bindq.Num(1)).Bind("x", bindq.Num(2))

	if _, err := bindq.QueryContext(context.Background(), db, New(), q); err == nil {
		t.Error("expected error")
	}
}
