package sqlutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStringConverters(t *testing.T) {
	if got := ToSqlString(nil); got.Valid {
		t.Fatal("nil pointer should produce invalid NullString")
	}

	s := "arena"
	ns := ToSqlString(&s)
	if !ns.Valid || ns.String != "arena" {
		t.Fatalf("unexpected NullString: %+v", ns)
	}

	if got := FromSqlString(ns, "fallback"); got != "arena" {
		t.Fatalf("expected arena, got %s", got)
	}
	if got := FromSqlString(ToSqlString(nil), "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}

	if got := FromSqlStringPtr(ns); got == nil || *got != "arena" {
		t.Fatalf("expected arena pointer, got %v", got)
	}
	if got := FromSqlStringPtr(ToSqlString(nil)); got != nil {
		t.Fatal("invalid NullString should produce nil pointer")
	}
}

func TestInt32Converters(t *testing.T) {
	n := 42
	ni := ToSqlInt32(&n)
	if !ni.Valid || ni.Int32 != 42 {
		t.Fatalf("unexpected NullInt32: %+v", ni)
	}
	if got := FromSqlInt32(ni); got == nil || *got != 42 {
		t.Fatalf("expected 42 pointer, got %v", got)
	}
	if got := FromSqlInt32(ToSqlInt32(nil)); got != nil {
		t.Fatal("invalid NullInt32 should produce nil pointer")
	}
}

func TestTimeConverters(t *testing.T) {
	now := time.Now()
	nt := ToSqlTime(&now)
	if !nt.Valid || !nt.Time.Equal(now) {
		t.Fatalf("unexpected NullTime: %+v", nt)
	}
	if got := FromSqlTime(nt); got == nil || !got.Equal(now) {
		t.Fatalf("expected %v pointer, got %v", now, got)
	}
	if got := FromSqlTime(ToSqlTime(nil)); got != nil {
		t.Fatal("invalid NullTime should produce nil pointer")
	}
}

func TestUUIDConverters(t *testing.T) {
	id := uuid.New()
	nu := ToNullUUID(&id)
	if !nu.Valid || nu.UUID != id {
		t.Fatalf("unexpected NullUUID: %+v", nu)
	}
	if got := FromNullUUID(nu); got == nil || *got != id {
		t.Fatalf("expected %s pointer, got %v", id, got)
	}
	if got := FromNullUUID(ToNullUUID(nil)); got != nil {
		t.Fatal("invalid NullUUID should produce nil pointer")
	}
}
