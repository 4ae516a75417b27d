package service

import (
	"testing"

	"github.com/google/uuid"

	helperAuth "gymku_backend/internals/helpers/auth"
	"gymku_backend/internals/testdb"
)

func TestClassesForInstructorIdOrContactFallback(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "studio-a")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}

	instructorID := uuid.New()
	otherID := uuid.New()

	byID := testdb.SeedClass(t, db, academy.AcademyId, "Muay Thai", &instructorID, "")
	// data lama: id belum di-backfill, hanya kontak
	byContact := testdb.SeedClass(t, db, academy.AcademyId, "Silat", nil, "Coach@Mail.Test")
	testdb.SeedClass(t, db, academy.AcademyId, "Zumba", &otherID, "")

	svc := New(db)

	tests := []struct {
		name    string
		contact string
		want    []uuid.UUID
	}{
		{"by id saja", "", []uuid.UUID{byID.ClassId}},
		{"id + fallback kontak case-insensitive", "coach@mail.test", []uuid.UUID{byID.ClassId, byContact.ClassId}},
		{"kontak asing tidak menambah", "nobody@mail.test", []uuid.UUID{byID.ClassId}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.ClassesForInstructor(scope, instructorID, tt.contact)
			if err != nil {
				t.Fatalf("classes: %v", err)
			}
			got := make(map[uuid.UUID]bool, len(rows))
			for _, r := range rows {
				got[r.ClassId] = true
			}
			if len(rows) != len(tt.want) {
				t.Fatalf("got %d kelas, want %d", len(rows), len(tt.want))
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("kelas %v tidak ikut terambil", id)
				}
			}
		})
	}
}

func TestEligibleStudentsFilter(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "studio-b")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}

	budi := testdb.SeedStudent(t, db, academy.AcademyId, "Budi Santoso", "budi@mail.test")
	testdb.SeedStudent(t, db, academy.AcademyId, "Citra Lestari", "citra@mail.test")

	// siswa non-aktif tidak pernah eligible
	inactive := testdb.SeedStudent(t, db, academy.AcademyId, "Budi Nonaktif", "")
	if err := db.Model(&inactive).Update("student_active", false).Error; err != nil {
		t.Fatalf("nonaktifkan siswa: %v", err)
	}

	svc := New(db)

	all, total, err := svc.EligibleStudents(scope, "", 0, 0)
	if err != nil {
		t.Fatalf("eligible: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Errorf("eligible tanpa filter = %d/%d, want 2/2", len(all), total)
	}

	// substring case-insensitive pada nama
	got, total, err := svc.EligibleStudents(scope, "bUdI", 0, 0)
	if err != nil {
		t.Fatalf("eligible search: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].StudentId != budi.StudentId {
		t.Errorf("search nama: got %d/%d, want hanya Budi Santoso", len(got), total)
	}

	// substring pada kontak
	got, total, err = svc.EligibleStudents(scope, "citra@", 0, 0)
	if err != nil {
		t.Fatalf("eligible search kontak: %v", err)
	}
	if total != 1 || len(got) != 1 {
		t.Errorf("search kontak: got %d/%d, want 1/1", len(got), total)
	}
}

func TestEligibleStudentsPaging(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "studio-c")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}
	testdb.SeedStudents(t, db, academy.AcademyId, 7)

	svc := New(db)

	page, total, err := svc.EligibleStudents(scope, "", 3, 0)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != 7 || len(page) != 3 {
		t.Errorf("page 1 = %d/%d, want 3 dari total 7", len(page), total)
	}

	last, _, err := svc.EligibleStudents(scope, "", 3, 6)
	if err != nil {
		t.Fatalf("page terakhir: %v", err)
	}
	if len(last) != 1 {
		t.Errorf("page terakhir = %d, want 1", len(last))
	}
}

func TestRosterTenantIsolation(t *testing.T) {
	db := testdb.Open(t)
	academyA := testdb.SeedAcademy(t, db, "studio-d")
	academyB := testdb.SeedAcademy(t, db, "studio-e")
	scopeB := helperAuth.TenantScope{AcademyID: academyB.AcademyId}

	instructorID := uuid.New()
	testdb.SeedClass(t, db, academyA.AcademyId, "Muay Thai", &instructorID, "")
	stA := testdb.SeedStudent(t, db, academyA.AcademyId, "Dewi", "")

	svc := New(db)

	rows, err := svc.ClassesForInstructor(scopeB, instructorID, "")
	if err != nil {
		t.Fatalf("classes scope B: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("scope B melihat %d kelas tenant A", len(rows))
	}

	students, total, err := svc.EligibleStudents(scopeB, "", 0, 0)
	if err != nil {
		t.Fatalf("eligible scope B: %v", err)
	}
	if total != 0 || len(students) != 0 {
		t.Errorf("scope B melihat %d siswa tenant A", len(students))
	}

	named, err := svc.StudentsByIDs(scopeB, []uuid.UUID{stA.StudentId})
	if err != nil {
		t.Fatalf("students by ids scope B: %v", err)
	}
	if len(named) != 0 {
		t.Error("StudentsByIDs bocor lintas tenant")
	}
}

func TestStudentsByIDsEmptyInput(t *testing.T) {
	db := testdb.Open(t)
	academy := testdb.SeedAcademy(t, db, "studio-f")
	scope := helperAuth.TenantScope{AcademyID: academy.AcademyId}

	svc := New(db)
	out, err := svc.StudentsByIDs(scope, nil)
	if err != nil {
		t.Fatalf("students by ids kosong: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("input kosong harus map kosong, got %d", len(out))
	}
}
