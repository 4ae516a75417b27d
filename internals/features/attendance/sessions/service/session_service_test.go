package service

import (
	"testing"

	"github.com/google/uuid"

	"gymku_backend/internals/features/attendance/sessions/model"
	helperAuth "gymku_backend/internals/helpers/auth"
	"gymku_backend/internals/testdb"
)

func TestOpenSessionExclusivePerClass(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "gym-a")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}
	instructorID := uuid.New()
	cls := testdb.SeedClass(t, db, academy.AcademyId, "Muay Thai", &instructorID, "")

	svc := New(db)

	first, err := svc.Open(scope, cls.ClassId, cls.ClassName, instructorID)
	if err != nil {
		t.Fatalf("open pertama: %v", err)
	}
	if first.ClassSessionStatus != model.SessionStatusActive {
		t.Errorf("status = %s, want active", first.ClassSessionStatus)
	}

	// open kedua saat masih aktif harus ditolak, siapapun aktornya
	if _, err := svc.Open(scope, cls.ClassId, cls.ClassName, uuid.New()); err != ErrSessionAlreadyActive {
		t.Errorf("open kedua: err = %v, want ErrSessionAlreadyActive", err)
	}

	// kelas lain tidak terpengaruh
	other := testdb.SeedClass(t, db, academy.AcademyId, "Yoga", &instructorID, "")
	if _, err := svc.Open(scope, other.ClassId, other.ClassName, instructorID); err != nil {
		t.Errorf("open kelas lain: %v", err)
	}
}

func TestReopenAfterClose(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "gym-b")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}
	instructorID := uuid.New()
	cls := testdb.SeedClass(t, db, academy.AcademyId, "BJJ", &instructorID, "")

	svc := New(db)

	sess, err := svc.Open(scope, cls.ClassId, cls.ClassName, instructorID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	closed, err := svc.Close(scope, sess.ClassSessionId, instructorID)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.ClassSessionStatus != model.SessionStatusCompleted {
		t.Errorf("status = %s, want completed", closed.ClassSessionStatus)
	}
	if closed.ClassSessionClosedAt == nil {
		t.Error("closed_at harus terisi")
	}

	// setelah completed, kelas yang sama boleh buka sesi baru
	next, err := svc.Open(scope, cls.ClassId, cls.ClassName, instructorID)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if next.ClassSessionId == sess.ClassSessionId {
		t.Error("reopen harus membuat sesi baru, bukan menghidupkan yang lama")
	}
}

func TestCloseTwiceAndNotFound(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "gym-c")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}
	instructorID := uuid.New()
	cls := testdb.SeedClass(t, db, academy.AcademyId, "Boxing", &instructorID, "")

	svc := New(db)

	sess, err := svc.Open(scope, cls.ClassId, cls.ClassName, instructorID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Close(scope, sess.ClassSessionId, instructorID); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := svc.Close(scope, sess.ClassSessionId, instructorID); err != ErrSessionAlreadyClosed {
		t.Errorf("close kedua: err = %v, want ErrSessionAlreadyClosed", err)
	}
	if _, err := svc.Close(scope, uuid.New(), instructorID); err != ErrSessionNotFound {
		t.Errorf("close id asing: err = %v, want ErrSessionNotFound", err)
	}
}

func TestActiveForClassAndListActive(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "gym-d")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}
	instructorA := uuid.New()
	instructorB := uuid.New()
	clsA := testdb.SeedClass(t, db, academy.AcademyId, "Senam", &instructorA, "")
	clsB := testdb.SeedClass(t, db, academy.AcademyId, "Zumba", &instructorB, "")

	svc := New(db)

	got, err := svc.ActiveForClass(scope, clsA.ClassId)
	if err != nil {
		t.Fatalf("active (kosong): %v", err)
	}
	if got != nil {
		t.Fatal("belum ada sesi: ActiveForClass harus nil")
	}

	sessA, err := svc.Open(scope, clsA.ClassId, clsA.ClassName, instructorA)
	if err != nil {
		t.Fatalf("open A: %v", err)
	}
	if _, err := svc.Open(scope, clsB.ClassId, clsB.ClassName, instructorB); err != nil {
		t.Fatalf("open B: %v", err)
	}

	got, err = svc.ActiveForClass(scope, clsA.ClassId)
	if err != nil {
		t.Fatalf("active A: %v", err)
	}
	if got == nil || got.ClassSessionId != sessA.ClassSessionId {
		t.Errorf("ActiveForClass = %+v, want sesi A", got)
	}

	all, err := svc.ListActive(scope, uuid.Nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("list all = %d sesi, want 2", len(all))
	}

	mine, err := svc.ListActive(scope, instructorA)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 || mine[0].ClassSessionOpenedBy != instructorA {
		t.Errorf("list mine = %d sesi, want hanya milik instructor A", len(mine))
	}
}

func TestIncrementLiveCountRequiresActiveSession(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "gym-e")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}
	instructorID := uuid.New()
	cls := testdb.SeedClass(t, db, academy.AcademyId, "Pilates", &instructorID, "")

	svc := New(db)

	// tanpa sesi aktif: no-op, bukan error
	bumped, err := svc.IncrementLiveCount(nil, scope, cls.ClassId)
	if err != nil {
		t.Fatalf("increment tanpa sesi: %v", err)
	}
	if bumped {
		t.Error("tanpa sesi aktif: bumped harus false")
	}

	sess, err := svc.Open(scope, cls.ClassId, cls.ClassName, instructorID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 5; i++ {
		bumped, err = svc.IncrementLiveCount(nil, scope, cls.ClassId)
		if err != nil || !bumped {
			t.Fatalf("increment %d: bumped=%v err=%v", i, bumped, err)
		}
	}

	got, err := svc.GetByID(scope, sess.ClassSessionId)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ClassSessionLiveCount != 5 {
		t.Errorf("live count = %d, want 5", got.ClassSessionLiveCount)
	}

	// setelah close, counter beku
	if _, err := svc.Close(scope, sess.ClassSessionId, instructorID); err != nil {
		t.Fatalf("close: %v", err)
	}
	bumped, err = svc.IncrementLiveCount(nil, scope, cls.ClassId)
	if err != nil {
		t.Fatalf("increment setelah close: %v", err)
	}
	if bumped {
		t.Error("setelah close: bumped harus false")
	}
}

func TestSessionTenantIsolation(t *testing.T) {
	db := testdb.Open(t)
	academyA := testdb.SeedAcademy(t, db, "gym-f")
	academyB := testdb.SeedAcademy(t, db, "gym-g")
	scopeA := helperAuth.TenantScope{AcademyID: academyA.AcademyId}
	scopeB := helperAuth.TenantScope{AcademyID: academyB.AcademyId}
	instructorID := uuid.New()
	cls := testdb.SeedClass(t, db, academyA.AcademyId, "Karate", &instructorID, "")

	svc := New(db)
	sess, err := svc.Open(scopeA, cls.ClassId, cls.ClassName, instructorID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := svc.GetByID(scopeB, sess.ClassSessionId); err != ErrSessionNotFound {
		t.Errorf("get lintas tenant: err = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Close(scopeB, sess.ClassSessionId, instructorID); err != ErrSessionNotFound {
		t.Errorf("close lintas tenant: err = %v, want ErrSessionNotFound", err)
	}

	rows, err := svc.ListActive(scopeB, uuid.Nil)
	if err != nil {
		t.Fatalf("list scope B: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("scope B melihat %d sesi tenant A", len(rows))
	}
}
